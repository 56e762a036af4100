package dto

import (
	"hotelier/internal/domains/user/model"
	gDto "hotelier/shared/dto"
)

type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	StaffID  string `json:"staff_id"`
	FullName string `json:"full_name"`
	Active   bool   `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.Active = model.Active

	if model.StaffID != nil {
		r.StaffID = *model.StaffID
	}

	if model.FullName != nil {
		r.FullName = *model.FullName
	}

	r.Metadata.FromModel(model.Metadata)
}

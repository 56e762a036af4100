package dto

import (
	"time"

	"hotelier/internal/domains/guest/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	FirstName   string `json:"first_name"    validate:"required,max=100"`
	LastName    string `json:"last_name"     validate:"required,max=100"`
	Email       string `json:"email"         validate:"required,email,max=100"`
	Phone       string `json:"phone"         validate:"omitempty,max=20"`
	Nationality string `json:"nationality"   validate:"omitempty,max=100"`
	IDNumber    string `json:"id_number"     validate:"omitempty,max=50"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Address     string `json:"address"       validate:"omitempty"`
}

func (c *CreateGuestRequest) ToModel(user string) (model.Guest, error) {
	var dateOfBirth *time.Time

	if c.DateOfBirth != "" {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, c.DateOfBirth)
		if err != nil {
			return model.Guest{}, err
		}

		dateOfBirth = &parsed
	}

	return model.Guest{
		ID:          uuid.NewString(),
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		Nationality: c.Nationality,
		IDNumber:    c.IDNumber,
		DateOfBirth: dateOfBirth,
		Address:     c.Address,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateGuestRequest struct {
	FirstName   string `db:"first_name"  json:"first_name"    validate:"omitempty,max=100"`
	LastName    string `db:"last_name"   json:"last_name"     validate:"omitempty,max=100"`
	Email       string `db:"email"       json:"email"         validate:"omitempty,email,max=100"`
	Phone       string `db:"phone"       json:"phone"         validate:"omitempty,max=20"`
	Nationality string `db:"nationality" json:"nationality"   validate:"omitempty,max=100"`
	IDNumber    string `db:"id_number"   json:"id_number"     validate:"omitempty,max=50"`
	Address     string `db:"address"     json:"address"       validate:"omitempty"`
}

type GuestResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
	IDNumber    string `json:"id_number"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Address     string `json:"address"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Nationality = model.Nationality
	r.IDNumber = model.IDNumber
	r.Address = model.Address

	if model.DateOfBirth != nil {
		r.DateOfBirth = model.DateOfBirth.Format(constant.DateOnlyFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

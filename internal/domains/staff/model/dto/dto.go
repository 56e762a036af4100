package dto

import (
	"time"

	"hotelier/internal/domains/staff/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"omitempty,email"`
	Phone     string `json:"phone"      validate:"omitempty"`
	Role      string `json:"role"       validate:"required,oneof=admin manager receptionist housekeeping maintenance security"`
}

func (c *CreateStaffRequest) ToModel(user string) model.StaffMember {
	return model.StaffMember{
		ID:        uuid.NewString(),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Role:      c.Role,
		IsActive:  true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStaffRequest struct {
	FirstName string `db:"first_name" json:"first_name" validate:"omitempty"`
	LastName  string `db:"last_name"  json:"last_name"  validate:"omitempty"`
	Email     string `db:"email"      json:"email"      validate:"omitempty,email"`
	Phone     string `db:"phone"      json:"phone"      validate:"omitempty"`
	Role      string `db:"role"       json:"role"       validate:"omitempty,oneof=admin manager receptionist housekeeping maintenance security"`
	IsActive  *bool  `db:"is_active"  json:"is_active"  validate:"omitempty"`
}

type CreateScheduleRequest struct {
	ShiftDate    string `json:"shift_date"    validate:"required,datetime=2006-01-02"`
	StartTime    string `json:"start_time"    validate:"required,datetime=15:04"`
	EndTime      string `json:"end_time"      validate:"required,datetime=15:04"`
	BreakMinutes int    `json:"break_minutes" validate:"omitempty,gte=0"`
}

func (c *CreateScheduleRequest) ToModel(user, staffID string, shiftDate time.Time) model.Schedule {
	return model.Schedule{
		ID:           uuid.NewString(),
		StaffID:      staffID,
		ShiftDate:    shiftDate,
		StartTime:    c.StartTime,
		EndTime:      c.EndTime,
		BreakMinutes: c.BreakMinutes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type StaffResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.StaffMember) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Role = model.Role
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.StaffMember, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}

type ScheduleResponse struct {
	ID             string `json:"id"`
	StaffID        string `json:"staff_id"`
	StaffFirstName string `json:"staff_first_name"`
	StaffLastName  string `json:"staff_last_name"`
	ShiftDate      string `json:"shift_date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	BreakMinutes   int    `json:"break_minutes"`
	gDto.Metadata
}

func (r *ScheduleResponse) FromModel(model model.Schedule) {
	r.ID = model.ID
	r.StaffID = model.StaffID
	r.StaffFirstName = model.StaffFirstName
	r.StaffLastName = model.StaffLastName
	r.ShiftDate = model.ShiftDate.Format(constant.DateOnlyFormat)
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.BreakMinutes = model.BreakMinutes
	r.Metadata.FromModel(model.Metadata)
}

type GetSchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

func (r *GetSchedulesResponse) FromModels(models []model.Schedule) {
	r.Schedules = make([]ScheduleResponse, len(models))
	for i, mod := range models {
		r.Schedules[i].FromModel(mod)
	}
}

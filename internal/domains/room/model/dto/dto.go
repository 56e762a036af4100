package dto

import (
	"hotelier/internal/domains/room/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber  string   `json:"room_number" validate:"required,max=20"`
	RoomType    string   `json:"room_type"   validate:"required,oneof=single double suite deluxe presidential"`
	Floor       int      `json:"floor"       validate:"omitempty,gte=0"`
	Capacity    int      `json:"capacity"    validate:"required,gte=1"`
	BasePrice   float64  `json:"base_price"  validate:"required,gt=0"`
	Status      string   `json:"status"      validate:"omitempty,oneof=available occupied maintenance cleaning out_of_order"`
	Description string   `json:"description" validate:"omitempty"`
	Amenities   []string `json:"amenities"   validate:"omitempty,dive,max=50"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		ID:          uuid.NewString(),
		RoomNumber:  c.RoomNumber,
		RoomType:    c.RoomType,
		Floor:       c.Floor,
		Capacity:    c.Capacity,
		BasePrice:   c.BasePrice,
		Status:      status,
		Description: c.Description,
		Amenities:   c.Amenities,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber  string   `db:"room_number" json:"room_number" validate:"omitempty,max=20"`
	RoomType    string   `db:"room_type"   json:"room_type"   validate:"omitempty,oneof=single double suite deluxe presidential"`
	Floor       int      `db:"floor"       json:"floor"       validate:"omitempty,gte=0"`
	Capacity    int      `db:"capacity"    json:"capacity"    validate:"omitempty,gte=1"`
	BasePrice   float64  `db:"base_price"  json:"base_price"  validate:"omitempty,gt=0"`
	Description string   `db:"description" json:"description" validate:"omitempty"`
	Amenities   []string `json:"amenities"  validate:"omitempty,dive,max=50"`
}

type ChangeRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available occupied maintenance cleaning out_of_order"`
}

type RoomResponse struct {
	ID          string   `json:"id"`
	RoomNumber  string   `json:"room_number"`
	RoomType    string   `json:"room_type"`
	Floor       int      `json:"floor"`
	Capacity    int      `json:"capacity"`
	BasePrice   float64  `json:"base_price"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.Floor = model.Floor
	r.Capacity = model.Capacity
	r.BasePrice = model.BasePrice
	r.Status = model.Status
	r.Description = model.Description
	r.Amenities = model.Amenities
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

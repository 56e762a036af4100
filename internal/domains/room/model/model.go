package model

import (
	"hotelier/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldRoomNumber  = "room_number"
	FieldRoomType    = "room_type"
	FieldFloor       = "floor"
	FieldCapacity    = "capacity"
	FieldBasePrice   = "base_price"
	FieldStatus      = "status"
	FieldDescription = "description"
	FieldAmenities   = "amenities"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
	StatusCleaning    = "cleaning"
	StatusOutOfOrder  = "out_of_order"
)

const (
	TypeSingle       = "single"
	TypeDouble       = "double"
	TypeSuite        = "suite"
	TypeDeluxe       = "deluxe"
	TypePresidential = "presidential"
)

// Statuses lists every room status, in tally order.
func Statuses() []string {
	return []string{StatusAvailable, StatusOccupied, StatusMaintenance, StatusCleaning, StatusOutOfOrder}
}

// Types lists every room type.
func Types() []string {
	return []string{TypeSingle, TypeDouble, TypeSuite, TypeDeluxe, TypePresidential}
}

type Room struct {
	ID          string         `db:"id"`
	RoomNumber  string         `db:"room_number"`
	RoomType    string         `db:"room_type"`
	Floor       int            `db:"floor"`
	Capacity    int            `db:"capacity"`
	BasePrice   float64        `db:"base_price"`
	Status      string         `db:"status"`
	Description string         `db:"description"`
	Amenities   pq.StringArray `db:"amenities"`
	model.Metadata
}

// SearchFields lists the values free-text search matches against.
func (r Room) SearchFields() []string {
	return []string{r.RoomNumber, r.RoomType, r.Description}
}

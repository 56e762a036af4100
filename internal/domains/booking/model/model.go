package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldGuestID         = "guest_id"
	FieldRoomID          = "room_id"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldAdults          = "adults"
	FieldChildren        = "children"
	FieldTotalAmount     = "total_amount"
	FieldStatus          = "status"
	FieldSpecialRequests = "special_requests"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

// Statuses lists every booking status, in tally order.
func Statuses() []string {
	return []string{StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled}
}

type Booking struct {
	ID              string    `db:"id"`
	GuestID         string    `db:"guest_id"`
	RoomID          string    `db:"room_id"`
	CheckInDate     time.Time `db:"check_in_date"`
	CheckOutDate    time.Time `db:"check_out_date"`
	Adults          int       `db:"adults"`
	Children        int       `db:"children"`
	TotalAmount     float64   `db:"total_amount"`
	Status          string    `db:"status"`
	SpecialRequests string    `db:"special_requests"`

	GuestFirstName string `db:"guest_first_name" table:"guests" column:"first_name"`
	GuestLastName  string `db:"guest_last_name"  table:"guests" column:"last_name"`
	GuestEmail     string `db:"guest_email"      table:"guests" column:"email"`
	RoomNumber     string `db:"room_number"      table:"rooms"  column:"room_number"`
	RoomType       string `db:"room_type"        table:"rooms"  column:"room_type"`

	model.Metadata
}

// GetJoinQuery is picked up by the generic repository to hydrate the joined
// guest and room columns on every select.
func (Booking) GetJoinQuery() string {
	return "LEFT JOIN guests ON guests.id = bookings.guest_id LEFT JOIN rooms ON rooms.id = bookings.room_id"
}

// SearchFields lists the values free-text search matches against.
func (b Booking) SearchFields() []string {
	return []string{b.GuestFirstName, b.GuestLastName, b.GuestEmail, b.RoomNumber}
}

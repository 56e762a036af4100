package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID          = "id"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldNationality = "nationality"
	FieldIDNumber    = "id_number"
	FieldAddress     = "address"
)

type Guest struct {
	ID          string     `db:"id"`
	FirstName   string     `db:"first_name"`
	LastName    string     `db:"last_name"`
	Email       string     `db:"email"`
	Phone       string     `db:"phone"`
	Nationality string     `db:"nationality"`
	IDNumber    string     `db:"id_number"`
	DateOfBirth *time.Time `db:"date_of_birth"`
	Address     string     `db:"address"`
	model.Metadata
}

// SearchFields lists the values free-text search matches against.
func (g Guest) SearchFields() []string {
	return []string{g.FirstName, g.LastName, g.Email, g.Phone, g.Nationality}
}

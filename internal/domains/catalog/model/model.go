package model

import "hotelier/shared/model"

const (
	TableName  = "services"
	EntityName = "service"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldIsActive    = "is_active"
)

type Service struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	IsActive    bool    `db:"is_active"`
	model.Metadata
}

// SearchFields lists the values free-text search matches against.
func (s Service) SearchFields() []string {
	return []string{s.Name, s.Description}
}

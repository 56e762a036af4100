package model

import "hotelier/shared/model"

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldRole      = "role"
	FieldIsActive  = "is_active"
)

const (
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RoleReceptionist = "receptionist"
	RoleHousekeeping = "housekeeping"
	RoleMaintenance  = "maintenance"
	RoleSecurity     = "security"
)

// Roles lists every staff role, in tally order.
func Roles() []string {
	return []string{RoleAdmin, RoleManager, RoleReceptionist, RoleHousekeeping, RoleMaintenance, RoleSecurity}
}

type StaffMember struct {
	ID        string `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	Role      string `db:"role"`
	IsActive  bool   `db:"is_active"`
	model.Metadata
}

// SearchFields lists the values free-text search matches against.
func (s StaffMember) SearchFields() []string {
	return []string{s.FirstName, s.LastName, s.Phone}
}

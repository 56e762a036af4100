package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	ScheduleTableName  = "schedules"
	ScheduleEntityName = "schedule"

	FieldScheduleID   = "id"
	FieldStaffID      = "staff_id"
	FieldShiftDate    = "shift_date"
	FieldStartTime    = "start_time"
	FieldEndTime      = "end_time"
	FieldBreakMinutes = "break_minutes"
)

type Schedule struct {
	ID           string    `db:"id"`
	StaffID      string    `db:"staff_id"`
	ShiftDate    time.Time `db:"shift_date"`
	StartTime    string    `db:"start_time"`
	EndTime      string    `db:"end_time"`
	BreakMinutes int       `db:"break_minutes"`

	StaffFirstName string `db:"staff_first_name" table:"staff" column:"first_name"`
	StaffLastName  string `db:"staff_last_name"  table:"staff" column:"last_name"`

	model.Metadata
}

// GetJoinQuery is picked up by the generic repository to hydrate the staff
// name columns on every select.
func (Schedule) GetJoinQuery() string {
	return "LEFT JOIN staff ON staff.id = schedules.staff_id"
}

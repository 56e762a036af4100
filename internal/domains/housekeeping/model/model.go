package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "housekeeping_tasks"
	EntityName = "housekeeping_task"

	FieldID         = "id"
	FieldRoomID     = "room_id"
	FieldAssignedTo = "assigned_to"
	FieldTaskType   = "task_type"
	FieldPriority   = "priority"
	FieldStatus     = "status"
	FieldDueDate    = "due_date"
	FieldNotes      = "notes"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Statuses lists every task status, in tally order.
func Statuses() []string {
	return []string{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}
}

// Priorities lists every task priority, in tally order.
func Priorities() []string {
	return []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

type HousekeepingTask struct {
	ID         string     `db:"id"`
	RoomID     string     `db:"room_id"`
	AssignedTo *string    `db:"assigned_to"`
	TaskType   string     `db:"task_type"`
	Priority   string     `db:"priority"`
	Status     string     `db:"status"`
	DueDate    *time.Time `db:"due_date"`
	Notes      string     `db:"notes"`

	RoomNumber        string  `db:"room_number"         table:"rooms" column:"room_number"`
	AssigneeFirstName *string `db:"assignee_first_name" table:"staff" column:"first_name"`
	AssigneeLastName  *string `db:"assignee_last_name"  table:"staff" column:"last_name"`

	model.Metadata
}

// GetJoinQuery is picked up by the generic repository to hydrate the room and
// assignee columns on every select.
func (HousekeepingTask) GetJoinQuery() string {
	return "LEFT JOIN rooms ON rooms.id = housekeeping_tasks.room_id LEFT JOIN staff ON staff.id = housekeeping_tasks.assigned_to"
}

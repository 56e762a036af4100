package dto

import (
	"time"

	"hotelier/internal/domains/housekeeping/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	RoomID     string `json:"room_id"     validate:"required"`
	AssignedTo string `json:"assigned_to" validate:"omitempty"`
	TaskType   string `json:"task_type"   validate:"required"`
	Priority   string `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	DueDate    string `json:"due_date"    validate:"omitempty,datetime=2006-01-02"`
	Notes      string `json:"notes"       validate:"omitempty"`
}

func (c *CreateTaskRequest) ToModel(user string) (model.HousekeepingTask, error) {
	task := model.HousekeepingTask{
		ID:       uuid.NewString(),
		RoomID:   c.RoomID,
		TaskType: c.TaskType,
		Priority: c.Priority,
		Status:   model.StatusPending,
		Notes:    c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}

	if c.AssignedTo != "" {
		task.AssignedTo = &c.AssignedTo
	}

	if c.DueDate != "" {
		dueDate, err := timezone.Parse(constant.DateOnlyFormat, c.DueDate)
		if err != nil {
			return task, err // nolint:wrapcheck
		}

		task.DueDate = &dueDate
	}

	return task, nil
}

type UpdateTaskRequest struct {
	TaskType string `db:"task_type" json:"task_type" validate:"omitempty"`
	Priority string `db:"priority"  json:"priority"  validate:"omitempty,oneof=low medium high urgent"`
	DueDate  string `json:"due_date"  validate:"omitempty,datetime=2006-01-02"`
	Notes    string `db:"notes"     json:"notes"     validate:"omitempty"`
}

type ChangeTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
}

type AssignTaskRequest struct {
	StaffID string `json:"staff_id" validate:"required"`
}

type TaskResponse struct {
	ID                string `json:"id"`
	RoomID            string `json:"room_id"`
	RoomNumber        string `json:"room_number"`
	AssignedTo        string `json:"assigned_to"`
	AssigneeFirstName string `json:"assignee_first_name"`
	AssigneeLastName  string `json:"assignee_last_name"`
	TaskType          string `json:"task_type"`
	Priority          string `json:"priority"`
	Status            string `json:"status"`
	DueDate           string `json:"due_date"`
	Notes             string `json:"notes"`
	gDto.Metadata
}

func (r *TaskResponse) FromModel(task model.HousekeepingTask) {
	r.ID = task.ID
	r.RoomID = task.RoomID
	r.RoomNumber = task.RoomNumber
	r.TaskType = task.TaskType
	r.Priority = task.Priority
	r.Status = task.Status
	r.Notes = task.Notes

	if task.AssignedTo != nil {
		r.AssignedTo = *task.AssignedTo
	}

	if task.AssigneeFirstName != nil {
		r.AssigneeFirstName = *task.AssigneeFirstName
	}

	if task.AssigneeLastName != nil {
		r.AssigneeLastName = *task.AssigneeLastName
	}

	if task.DueDate != nil {
		r.DueDate = task.DueDate.Format(constant.DateOnlyFormat)
	}

	r.Metadata.FromModel(task.Metadata)
}

type GetTasksResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetTasksResponse) FromModels(models []model.HousekeepingTask, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tasks = make([]TaskResponse, len(models))
	for i, mod := range models {
		r.Tasks[i].FromModel(mod)
	}
}

// ParseDueDate is used by the service when an update carries a new due date.
func ParseDueDate(value string) (time.Time, error) {
	return timezone.Parse(constant.DateOnlyFormat, value) // nolint:wrapcheck
}

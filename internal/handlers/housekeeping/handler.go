package housekeeping

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/housekeeping/model"
	"hotelier/internal/domains/housekeeping/model/dto"
	"hotelier/internal/domains/housekeeping/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Housekeeping
	otel    otel.Otel
}

func New(service service.Housekeeping, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/housekeeping", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTask)
		routerGroup.Get("/", handler.GetTasks)
		routerGroup.Get("/{id}", handler.GetTaskByID)
		routerGroup.Patch("/{id}", handler.UpdateTask)
		routerGroup.Patch("/{id}/status", handler.ChangeTaskStatus)
		routerGroup.Patch("/{id}/assign", handler.AssignTask)
	})
}

// CreateTask opens a housekeeping task for a room.
// @Summary Create a housekeeping task
// @Description Create a housekeeping task, optionally assigned on creation.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task details"
// @Success 201 {object} response.Data[dto.TaskResponse] "Task created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping [post]
// @Security BearerAuth
func (handler *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTask")
	defer scope.End()

	var req dto.CreateTaskRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	task, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create housekeeping task")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Housekeeping task created successfully")

	response.WithJSON(w, http.StatusCreated, task)
}

// GetTasks lists housekeeping tasks with status, priority and room filters.
// @Summary Get all housekeeping tasks
// @Description Retrieve all housekeeping tasks with optional filtering and pagination.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status, all for no constraint"
// @Param priority query string false "Filter by priority, all for no constraint"
// @Param room_id query string false "Filter by room"
// @Success 200 {object} response.Data[dto.GetTasksResponse] "List of tasks"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping [get]
// @Security BearerAuth
func (handler *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTasks")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)
	priority := r.URL.Query().Get(model.FieldPriority)
	roomID := r.URL.Query().Get(model.FieldRoomID)

	tasks, err := handler.service.Search(ctx, queryParams, status, priority, roomID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get housekeeping tasks")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Housekeeping tasks retrieved successfully")

	response.WithJSON(w, http.StatusOK, tasks)
}

// GetTaskByID retrieves a housekeeping task by its ID.
// @Summary Get a housekeeping task by ID
// @Description Retrieve a housekeeping task by its unique identifier.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Data[dto.TaskResponse] "Task details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTaskByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	task, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get housekeeping task by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Housekeeping task retrieved successfully")

	response.WithJSON(w, http.StatusOK, task)
}

// UpdateTask updates an existing housekeeping task by its ID.
// @Summary Update a housekeeping task by ID
// @Description Update the details of an existing housekeeping task.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} response.Data[dto.TaskResponse] "Task updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTask")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateTaskRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	task, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update housekeeping task")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Housekeeping task updated successfully")

	response.WithJSON(w, http.StatusOK, task)
}

// ChangeTaskStatus moves a task through its lifecycle.
// @Summary Change housekeeping task status
// @Description Change the status of a housekeeping task.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.ChangeTaskStatusRequest true "New status"
// @Success 200 {object} response.Data[dto.TaskResponse] "Task status changed successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) ChangeTaskStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangeTaskStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.ChangeTaskStatusRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	task, err := handler.service.ChangeStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change housekeeping task status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Housekeeping task status changed successfully")

	response.WithJSON(w, http.StatusOK, task)
}

// AssignTask hands a task to a staff member.
// @Summary Assign a housekeeping task
// @Description Assign a housekeeping task to a staff member.
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.AssignTaskRequest true "Assignee"
// @Success 200 {object} response.Data[dto.TaskResponse] "Task assigned successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping/{id}/assign [patch]
// @Security BearerAuth
func (handler *Handler) AssignTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignTask")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.AssignTaskRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	task, err := handler.service.Assign(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign housekeeping task")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Housekeeping task assigned successfully")

	response.WithJSON(w, http.StatusOK, task)
}

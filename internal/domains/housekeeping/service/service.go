package service

import (
	"context"
	"fmt"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/internal/domains/housekeeping/model"
	"hotelier/internal/domains/housekeeping/model/dto"
	"hotelier/internal/domains/housekeeping/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepo "hotelier/internal/domains/room/repository"
	staffModel "hotelier/internal/domains/staff/model"
	staffRepo "hotelier/internal/domains/staff/repository"
	"hotelier/internal/events"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/search"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTask    = "housekeeping:get"
	cacheGetAllTask = "housekeeping:gets"
)

type Housekeeping interface {
	Create(ctx context.Context, req dto.CreateTaskRequest) (dto.TaskResponse, error)
	Search(ctx context.Context, params gDto.QueryParams, status, priority, roomID string) (dto.GetTasksResponse, error)
	Get(ctx context.Context, id string) (dto.TaskResponse, error)
	Update(ctx context.Context, req dto.UpdateTaskRequest, id string) (dto.TaskResponse, error)
	ChangeStatus(ctx context.Context, req dto.ChangeTaskStatusRequest, id string) (dto.TaskResponse, error)
	Assign(ctx context.Context, req dto.AssignTaskRequest, id string) (dto.TaskResponse, error)
}

type serviceImpl struct {
	repo      repository.Housekeeping
	roomRepo  roomRepo.Room
	staffRepo staffRepo.Staff
	cfg       *config.Config
	cache     cache.RedisCache
	events    events.Publisher
	otel      otel.Otel
}

func New(
	repo repository.Housekeeping,
	roomRepository roomRepo.Room,
	staffRepository staffRepo.Staff,
	cfg *config.Config,
	cache cache.RedisCache,
	events events.Publisher,
	otel otel.Otel,
) Housekeeping {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepository,
		staffRepo: staffRepository,
		cfg:       cfg,
		cache:     cache,
		events:    events,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaskRequest) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateHousekeepingTask")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	if req.AssignedTo != constant.Empty {
		if err = s.ensureAssignable(ctx, req.AssignedTo); err != nil {
			return res, err
		}
	}

	task, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequestFromString("invalid due date") // nolint:wrapcheck
	}

	stored, err := s.repo.InsertReturning(ctx, task)
	if err != nil {
		log.Error().Err(err).Msg("failed to create housekeeping task")

		return res, fmt.Errorf("failed to create housekeeping task: %w", err)
	}

	canonical, err := s.reload(ctx, stored.ID)
	if err != nil {
		return res, err
	}

	res.FromModel(canonical)

	s.invalidateAll(ctx)
	s.events.Publish(ctx, events.ActionCreated, model.EntityName, stored.ID)

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, params gDto.QueryParams, status, priority, roomID string) (res dto.GetTasksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchHousekeepingTasks")
	defer scope.End()
	defer scope.TraceIfError(err)

	tasks, err := s.fetchAll(ctx)
	if err != nil {
		return res, err
	}

	filtered := search.Apply(tasks,
		search.Term(status, func(t model.HousekeepingTask) string { return t.Status }),
		search.Term(priority, func(t model.HousekeepingTask) string { return t.Priority }),
		search.Term(roomID, func(t model.HousekeepingTask) string { return t.RoomID }),
	)
	page := shared.Paginate(filtered, params.Page, params.Limit)

	res.FromModels(page, len(filtered), params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHousekeepingTask")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTask, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for housekeeping task")

		return res, nil
	}

	task, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping task")

		return res, fmt.Errorf("failed to get housekeeping task: %w", err)
	}

	if task.ID == constant.Empty {
		return res, failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	res.FromModel(task)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save housekeeping task to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTaskRequest, id string) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateHousekeepingTask")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateTaskRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if housekeeping task exists")

		return res, fmt.Errorf("failed to check if housekeeping task exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.DueDate != constant.Empty {
		dueDate, err := dto.ParseDueDate(req.DueDate)
		if err != nil {
			return res, failure.BadRequestFromString("invalid due date") // nolint:wrapcheck
		}

		updatedFields[model.FieldDueDate] = dueDate
	}

	if _, err = s.repo.UpdateReturning(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update housekeeping task")

		return res, fmt.Errorf("failed to update housekeeping task: %w", err)
	}

	canonical, err := s.reload(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(canonical)

	s.invalidate(ctx, id)
	s.events.Publish(ctx, events.ActionUpdated, model.EntityName, id)

	return res, nil
}

func (s *serviceImpl) ChangeStatus(ctx context.Context, req dto.ChangeTaskStatusRequest, id string) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangeHousekeepingTaskStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if housekeeping task exists")

		return res, fmt.Errorf("failed to check if housekeeping task exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(struct {
		Status string `db:"status"`
	}{Status: req.Status}, user)

	if _, err = s.repo.UpdateReturning(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to change housekeeping task status")

		return res, fmt.Errorf("failed to change housekeeping task status: %w", err)
	}

	canonical, err := s.reload(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(canonical)

	s.invalidate(ctx, id)
	s.events.Publish(ctx, events.ActionStatusChanged, model.EntityName, id)

	return res, nil
}

func (s *serviceImpl) Assign(ctx context.Context, req dto.AssignTaskRequest, id string) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignHousekeepingTask")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if housekeeping task exists")

		return res, fmt.Errorf("failed to check if housekeeping task exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	if err = s.ensureAssignable(ctx, req.StaffID); err != nil {
		return res, err
	}

	updatedFields := shared.TransformFields(struct {
		AssignedTo string `db:"assigned_to"`
	}{AssignedTo: req.StaffID}, user)

	if _, err = s.repo.UpdateReturning(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to assign housekeeping task")

		return res, fmt.Errorf("failed to assign housekeeping task: %w", err)
	}

	canonical, err := s.reload(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(canonical)

	s.invalidate(ctx, id)
	s.events.Publish(ctx, events.ActionAssigned, model.EntityName, id)

	return res, nil
}

func (s *serviceImpl) ensureAssignable(ctx context.Context, staffID string) error {
	exist, err := s.staffRepo.Exist(ctx, shared.FilterByID(staffID, staffModel.FieldID, staffModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if staff member exists")

		return fmt.Errorf("failed to check if staff member exists: %w", err)
	}

	if !exist {
		return failure.BadRequestFromString("assignee does not exist") // nolint:wrapcheck
	}

	return nil
}

// reload re-reads through the join so responses carry the room number and
// assignee name.
func (s *serviceImpl) reload(ctx context.Context, id string) (model.HousekeepingTask, error) {
	task, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to reload housekeeping task")

		return task, fmt.Errorf("failed to reload housekeeping task: %w", err)
	}

	return task, nil
}

func (s *serviceImpl) invalidateAll(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTask)
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTask, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete housekeeping task from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTask)
	}()
}

func (s *serviceImpl) fetchAll(ctx context.Context) (tasks []model.HousekeepingTask, err error) {
	err = s.cache.Get(ctx, cacheGetAllTask, &tasks)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllTask).Msg("cache hit for housekeeping tasks")

		return tasks, nil
	}

	tasks, err = s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping tasks")

		return nil, fmt.Errorf("failed to get housekeeping tasks: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllTask, tasks, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save housekeeping tasks to cache")
		}
	}()

	return tasks, nil
}

package service

import (
	"context"
	"fmt"
	"strconv"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/internal/domains/staff/model"
	"hotelier/internal/domains/staff/model/dto"
	"hotelier/internal/domains/staff/repository"
	"hotelier/internal/events"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/search"
	"hotelier/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetStaff    = "staff:get"
	cacheGetAllStaff = "staff:gets"
)

type Staff interface {
	Create(ctx context.Context, req dto.CreateStaffRequest) (dto.StaffResponse, error)
	Search(ctx context.Context, params gDto.QueryParams, query, role, active string) (dto.GetStaffResponse, error)
	Get(ctx context.Context, id string) (dto.StaffResponse, error)
	Update(ctx context.Context, req dto.UpdateStaffRequest, id string) (dto.StaffResponse, error)
	CreateSchedule(ctx context.Context, req dto.CreateScheduleRequest, staffID string) (dto.ScheduleResponse, error)
	ListSchedules(ctx context.Context, staffID string) (dto.GetSchedulesResponse, error)
}

type serviceImpl struct {
	repo         repository.Staff
	scheduleRepo repository.Schedule
	cfg          *config.Config
	cache        cache.RedisCache
	events       events.Publisher
	otel         otel.Otel
}

func New(
	repo repository.Staff,
	scheduleRepo repository.Schedule,
	cfg *config.Config,
	cache cache.RedisCache,
	events events.Publisher,
	otel otel.Otel,
) Staff {
	return &serviceImpl{
		repo:         repo,
		scheduleRepo: scheduleRepo,
		cfg:          cfg,
		cache:        cache,
		events:       events,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStaffRequest) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateStaff")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	stored, err := s.repo.InsertReturning(ctx, req.ToModel(user))
	if err != nil {
		log.Error().Err(err).Msg("failed to create staff member")

		return res, fmt.Errorf("failed to create staff member: %w", err)
	}

	res.FromModel(stored)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllStaff)
	}()

	s.events.Publish(ctx, events.ActionCreated, model.EntityName, stored.ID)

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, params gDto.QueryParams, query, role, active string) (res dto.GetStaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchStaff")
	defer scope.End()
	defer scope.TraceIfError(err)

	members, err := s.fetchAll(ctx)
	if err != nil {
		return res, err
	}

	filtered := search.Apply(members,
		search.Text(query, model.StaffMember.SearchFields),
		search.Term(role, func(m model.StaffMember) string { return m.Role }),
		search.Term(active, func(m model.StaffMember) string { return strconv.FormatBool(m.IsActive) }),
	)
	page := shared.Paginate(filtered, params.Page, params.Limit)

	res.FromModels(page, len(filtered), params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStaff")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetStaff, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff member")

		return res, nil
	}

	member, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff member")

		return res, fmt.Errorf("failed to get staff member: %w", err)
	}

	if member.ID == constant.Empty {
		return res, failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	res.FromModel(member)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff member to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStaffRequest, id string) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStaff")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateStaffRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if staff member exists")

		return res, fmt.Errorf("failed to check if staff member exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	stored, err := s.repo.UpdateReturning(ctx, shared.TransformFields(req, user), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update staff member")

		return res, fmt.Errorf("failed to update staff member: %w", err)
	}

	res.FromModel(stored)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetStaff, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete staff member from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllStaff)
	}()

	s.events.Publish(ctx, events.ActionUpdated, model.EntityName, id)

	return res, nil
}

func (s *serviceImpl) CreateSchedule(ctx context.Context, req dto.CreateScheduleRequest, staffID string) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(staffID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if staff member exists")

		return res, fmt.Errorf("failed to check if staff member exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	shiftDate, err := timezone.Parse(constant.DateOnlyFormat, req.ShiftDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid shift date") // nolint:wrapcheck
	}

	stored, err := s.scheduleRepo.InsertReturning(ctx, req.ToModel(user, staffID, shiftDate))
	if err != nil {
		log.Error().Err(err).Msg("failed to create schedule")

		return res, fmt.Errorf("failed to create schedule: %w", err)
	}

	res.FromModel(stored)

	s.events.Publish(ctx, events.ActionCreated, model.ScheduleEntityName, stored.ID)

	return res, nil
}

// ListSchedules returns upcoming shifts, soonest first. An empty staffID
// lists shifts across the whole roster.
func (s *serviceImpl) ListSchedules(ctx context.Context, staffID string) (res dto.GetSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListSchedules")
	defer scope.End()
	defer scope.TraceIfError(err)

	filters := []any{
		gDto.Filter{
			Field:    model.FieldShiftDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    timezone.Now().Format(constant.DateOnlyFormat),
			Table:    model.ScheduleTableName,
		},
	}

	if staffID != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldStaffID,
			Operator: gDto.FilterOperatorEq,
			Value:    staffID,
			Table:    model.ScheduleTableName,
		})
	}

	schedules, err := s.scheduleRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.FieldShiftDate,
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{Filters: filters})
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedules")

		return res, fmt.Errorf("failed to get schedules: %w", err)
	}

	res.FromModels(schedules)

	return res, nil
}

func (s *serviceImpl) fetchAll(ctx context.Context) (members []model.StaffMember, err error) {
	err = s.cache.Get(ctx, cacheGetAllStaff, &members)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllStaff).Msg("cache hit for staff")

		return members, nil
	}

	members, err = s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllStaff, members, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff to cache")
		}
	}()

	return members, nil
}

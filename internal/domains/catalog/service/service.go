package service

import (
	"context"
	"fmt"
	"strconv"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/internal/domains/catalog/model"
	"hotelier/internal/domains/catalog/model/dto"
	"hotelier/internal/domains/catalog/repository"
	"hotelier/internal/events"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/search"

	"github.com/rs/zerolog/log"
)

const cacheGetAllService = "service:gets"

type Catalog interface {
	Create(ctx context.Context, req dto.CreateServiceRequest) (dto.ServiceResponse, error)
	Search(ctx context.Context, params gDto.QueryParams, query, active string) (dto.GetServicesResponse, error)
	Update(ctx context.Context, req dto.UpdateServiceRequest, id string) (dto.ServiceResponse, error)
}

type serviceImpl struct {
	repo   repository.Service
	cfg    *config.Config
	cache  cache.RedisCache
	events events.Publisher
	otel   otel.Otel
}

func New(repo repository.Service, cfg *config.Config, cache cache.RedisCache, events events.Publisher, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		events: events,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceRequest) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateService")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	stored, err := s.repo.InsertReturning(ctx, req.ToModel(user))
	if err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return res, fmt.Errorf("failed to create service: %w", err)
	}

	res.FromModel(stored)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllService)
	}()

	s.events.Publish(ctx, events.ActionCreated, model.EntityName, stored.ID)

	return res, nil
}

// Search lists catalog services. The active filter defaults to "all"; pass
// "true" to see only bookable services.
func (s *serviceImpl) Search(ctx context.Context, params gDto.QueryParams, query, active string) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchServices")
	defer scope.End()
	defer scope.TraceIfError(err)

	services, err := s.fetchAll(ctx)
	if err != nil {
		return res, err
	}

	filtered := search.Apply(services,
		search.Text(query, model.Service.SearchFields),
		search.Term(active, func(sv model.Service) string { return strconv.FormatBool(sv.IsActive) }),
	)
	page := shared.Paginate(filtered, params.Page, params.Limit)

	res.FromModels(page, len(filtered), params.Limit)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateServiceRequest, id string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateService")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateServiceRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service exists")

		return res, fmt.Errorf("failed to check if service exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("service not found") // nolint:wrapcheck
	}

	stored, err := s.repo.UpdateReturning(ctx, shared.TransformFields(req, user), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update service")

		return res, fmt.Errorf("failed to update service: %w", err)
	}

	res.FromModel(stored)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllService)
	}()

	s.events.Publish(ctx, events.ActionUpdated, model.EntityName, id)

	return res, nil
}

func (s *serviceImpl) fetchAll(ctx context.Context) (services []model.Service, err error) {
	err = s.cache.Get(ctx, cacheGetAllService, &services)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllService).Msg("cache hit for services")

		return services, nil
	}

	services, err = s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return nil, fmt.Errorf("failed to get services: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllService, services, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save services to cache")
		}
	}()

	return services, nil
}

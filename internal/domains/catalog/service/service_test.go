package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	catalogMocks "hotelier/internal/domains/catalog/mocks"
	"hotelier/internal/domains/catalog/model"
	"hotelier/internal/domains/catalog/model/dto"
	"hotelier/internal/domains/catalog/service"
	eventMocks "hotelier/internal/events/mocks"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
)

type fixtures struct {
	repo   *catalogMocks.MockService
	cache  *cacheMocks.MockRedisCache
	events *eventMocks.MockPublisher
	svc    service.Catalog
}

func setup(t *testing.T) fixtures {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixtures{
		repo:   catalogMocks.NewMockService(ctrl),
		cache:  cacheMocks.NewMockRedisCache(ctrl),
		events: eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, cfg, f.cache, f.events, mocks.NewOtel())

	return f
}

func newService(id, name string, price float64, active bool) model.Service {
	return model.Service{
		ID:       id,
		Name:     name,
		Price:    price,
		IsActive: active,
	}
}

func TestCatalogService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateServiceRequest
		setupMock func(f fixtures)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateServiceRequest{
				Name:  "Breakfast",
				Price: 15,
			},
			setupMock: func(f fixtures) {
				f.repo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(newService("service-id", "Breakfast", 15, true), nil)

				f.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				f.events.EXPECT().
					Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateServiceRequest{
				Name:  "Breakfast",
				Price: 15,
			},
			setupMock: func(f fixtures) {
				f.repo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(model.Service{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := f.svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "service-id", res.ID)
				assert.True(t, res.IsActive)
			}
		})
	}
}

func TestCatalogService_Search(t *testing.T) {
	services := []model.Service{
		newService("id-1", "Breakfast", 15, true),
		newService("id-2", "Airport Shuttle", 40, true),
		newService("id-3", "Minibar", 10, false),
	}

	expectFetch := func(f fixtures) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(services, nil)

		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
	}

	tests := []struct {
		name      string
		query     string
		active    string
		wantTotal int
	}{
		{
			name:      "no filters returns everything",
			wantTotal: 3,
		},
		{
			name:      "active flag hides retired services",
			active:    "true",
			wantTotal: 2,
		},
		{
			name:      "free text matches the name",
			query:     "shuttle",
			wantTotal: 1,
		},
		{
			name:      "all sentinel disables the active filter",
			active:    "all",
			wantTotal: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			expectFetch(f)

			params := gDto.QueryParams{Limit: 10, Page: 1}
			result, err := f.svc.Search(context.Background(), params, tt.query, tt.active)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.TotalData)
		})
	}
}

func TestCatalogService_Update(t *testing.T) {
	inactive := false

	tests := []struct {
		name      string
		req       dto.UpdateServiceRequest
		setupMock func(f fixtures)
		wantErr   bool
	}{
		{
			name: "retiring a service goes through",
			req: dto.UpdateServiceRequest{
				IsActive: &inactive,
			},
			setupMock: func(f fixtures) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					UpdateReturning(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(newService("service-id", "Minibar", 10, false), nil)

				f.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				f.events.EXPECT().
					Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "empty update request",
			req:  dto.UpdateServiceRequest{},
			setupMock: func(f fixtures) {
				// Rejected before any repository call.
			},
			wantErr: true,
		},
		{
			name: "service not found",
			req: dto.UpdateServiceRequest{
				Price: 12,
			},
			setupMock: func(f fixtures) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := f.svc.Update(ctx, tt.req, "service-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.False(t, res.IsActive)
			}
		})
	}
}

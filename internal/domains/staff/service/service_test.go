package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	staffMocks "hotelier/internal/domains/staff/mocks"
	"hotelier/internal/domains/staff/model"
	"hotelier/internal/domains/staff/model/dto"
	"hotelier/internal/domains/staff/service"
	eventMocks "hotelier/internal/events/mocks"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

type fixtures struct {
	repo     *staffMocks.MockStaff
	schedule *staffMocks.MockSchedule
	cache    *cacheMocks.MockRedisCache
	events   *eventMocks.MockPublisher
	svc      service.Staff
}

func setup(t *testing.T) fixtures {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixtures{
		repo:     staffMocks.NewMockStaff(ctrl),
		schedule: staffMocks.NewMockSchedule(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		events:   eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.schedule, cfg, f.cache, f.events, mocks.NewOtel())

	return f
}

func newStaffMember(id, firstName, role string, active bool) model.StaffMember {
	return model.StaffMember{
		ID:        id,
		FirstName: firstName,
		LastName:  "Tester",
		Email:     firstName + "@example.com",
		Role:      role,
		IsActive:  active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestStaffService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateStaffRequest
		setupMock func(f fixtures)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateStaffRequest{
				FirstName: "Alice",
				LastName:  "Tester",
				Email:     "alice@example.com",
				Role:      constant.RoleReceptionist,
			},
			setupMock: func(f fixtures) {
				f.repo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(newStaffMember("staff-id", "Alice", constant.RoleReceptionist, true), nil)

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
			req: dto.CreateStaffRequest{
				FirstName: "Alice",
				LastName:  "Tester",
				Email:     "alice@example.com",
				Role:      constant.RoleReceptionist,
			},
			setupMock: func(f fixtures) {
				f.repo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(model.StaffMember{}, errors.New("database error"))
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
				assert.Equal(t, "staff-id", res.ID)
			}
		})
	}
}

func TestStaffService_Search(t *testing.T) {
	members := []model.StaffMember{
		newStaffMember("id-1", "Alice", constant.RoleReceptionist, true),
		newStaffMember("id-2", "Bob", constant.RoleHousekeeping, true),
		newStaffMember("id-3", "Carol", constant.RoleReceptionist, false),
	}

	expectFetch := func(f fixtures) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(members, nil)

		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
	}

	tests := []struct {
		name      string
		query     string
		role      string
		active    string
		wantTotal int
	}{
		{
			name:      "no filters returns everything",
			wantTotal: 3,
		},
		{
			name:      "role narrows the roster",
			role:      constant.RoleReceptionist,
			wantTotal: 2,
		},
		{
			name:      "active flag filters deactivated members",
			active:    "true",
			wantTotal: 2,
		},
		{
			name:      "role and active combine",
			role:      constant.RoleReceptionist,
			active:    "false",
			wantTotal: 1,
		},
		{
			name:      "free text matches names",
			query:     "carol",
			wantTotal: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			expectFetch(f)

			params := gDto.QueryParams{Limit: 10, Page: 1}
			result, err := f.svc.Search(context.Background(), params, tt.query, tt.role, tt.active)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.TotalData)
		})
	}
}

func TestStaffService_Update(t *testing.T) {
	active := false

	tests := []struct {
		name      string
		req       dto.UpdateStaffRequest
		setupMock func(f fixtures)
		wantErr   bool
	}{
		{
			name: "deactivation goes through",
			req: dto.UpdateStaffRequest{
				IsActive: &active,
			},
			setupMock: func(f fixtures) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					UpdateReturning(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(newStaffMember("staff-id", "Alice", constant.RoleReceptionist, false), nil)

				f.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

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
			req:  dto.UpdateStaffRequest{},
			setupMock: func(f fixtures) {
				// Rejected before any repository call.
			},
			wantErr: true,
		},
		{
			name: "staff member not found",
			req: dto.UpdateStaffRequest{
				Phone: "+62123456789",
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
			res, err := f.svc.Update(ctx, tt.req, "staff-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.False(t, res.IsActive)
			}
		})
	}
}

func TestStaffService_CreateSchedule(t *testing.T) {
	validReq := dto.CreateScheduleRequest{
		ShiftDate: "2025-06-01",
		StartTime: "08:00",
		EndTime:   "16:00",
	}

	tests := []struct {
		name      string
		req       dto.CreateScheduleRequest
		setupMock func(f fixtures)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func(f fixtures) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.schedule.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(model.Schedule{ID: "schedule-id", StaffID: "staff-id"}, nil)

				f.events.EXPECT().
					Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "staff member not found",
			req:  validReq,
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
			res, err := f.svc.CreateSchedule(ctx, tt.req, "staff-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "schedule-id", res.ID)
			}
		})
	}
}

func TestStaffService_ListSchedules(t *testing.T) {
	tests := []struct {
		name      string
		staffID   string
		setupMock func(f fixtures)
		wantErr   bool
		wantCount int
	}{
		{
			name:    "upcoming shifts for one member",
			staffID: "staff-id",
			setupMock: func(f fixtures) {
				f.schedule.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Schedule{
						{ID: "schedule-1", StaffID: "staff-id"},
						{ID: "schedule-2", StaffID: "staff-id"},
					}, nil)
			},
			wantCount: 2,
		},
		{
			name: "whole roster when no staff id",
			setupMock: func(f fixtures) {
				f.schedule.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Schedule{
						{ID: "schedule-1", StaffID: "staff-a"},
						{ID: "schedule-2", StaffID: "staff-b"},
						{ID: "schedule-3", StaffID: "staff-c"},
					}, nil)
			},
			wantCount: 3,
		},
		{
			name: "repository error",
			setupMock: func(f fixtures) {
				f.schedule.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			tt.setupMock(f)

			res, err := f.svc.ListSchedules(context.Background(), tt.staffID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, res.Schedules, tt.wantCount)
			}
		})
	}
}

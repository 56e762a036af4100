package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/service"
	guestMocks "hotelier/internal/domains/guest/mocks"
	roomMocks "hotelier/internal/domains/room/mocks"
	roomModel "hotelier/internal/domains/room/model"
	eventMocks "hotelier/internal/events/mocks"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

type fixtures struct {
	repo    *bookingMocks.MockBooking
	payment *bookingMocks.MockPayment
	guest   *guestMocks.MockGuest
	room    *roomMocks.MockRoom
	cache   *cacheMocks.MockRedisCache
	events  *eventMocks.MockPublisher
	svc     service.Booking
}

func setup(t *testing.T) fixtures {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixtures{
		repo:    bookingMocks.NewMockBooking(ctrl),
		payment: bookingMocks.NewMockPayment(ctrl),
		guest:   guestMocks.NewMockGuest(ctrl),
		room:    roomMocks.NewMockRoom(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
		events:  eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.payment, f.guest, f.room, cfg, f.cache, f.events, mocks.NewOtel())

	return f
}

func newBooking(id, status string) model.Booking {
	return model.Booking{
		ID:           id,
		GuestID:      "guest-id",
		RoomID:       "room-id",
		CheckInDate:  time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
		Adults:       2,
		TotalAmount:  240,
		Status:       status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	validReq := dto.CreateBookingRequest{
		GuestID:      "guest-id",
		RoomID:       "room-id",
		CheckInDate:  "2025-06-01",
		CheckOutDate: "2025-06-03",
		Adults:       2,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(f fixtures)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func(f fixtures) {
				f.guest.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: "room-id", BasePrice: 120}, nil)

				f.repo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(newBooking("booking-id", model.StatusPending), nil)

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("booking-id", model.StatusPending), nil)

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
			name: "check-out before check-in",
			req: dto.CreateBookingRequest{
				GuestID:      "guest-id",
				RoomID:       "room-id",
				CheckInDate:  "2025-06-03",
				CheckOutDate: "2025-06-01",
				Adults:       2,
			},
			setupMock: func(f fixtures) {
				// Rejected before any repository call.
			},
			wantErr: true,
		},
		{
			name: "same-day stay is rejected",
			req: dto.CreateBookingRequest{
				GuestID:      "guest-id",
				RoomID:       "room-id",
				CheckInDate:  "2025-06-01",
				CheckOutDate: "2025-06-01",
				Adults:       2,
			},
			setupMock: func(f fixtures) {},
			wantErr:   true,
		},
		{
			name: "unknown guest",
			req:  validReq,
			setupMock: func(f fixtures) {
				f.guest.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "unknown room",
			req:  validReq,
			setupMock: func(f fixtures) {
				f.guest.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr: true,
		},
		{
			name: "zero base price yields a rejected total",
			req:  validReq,
			setupMock: func(f fixtures) {
				f.guest.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: "room-id", BasePrice: 0}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func(f fixtures) {
				f.guest.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: "room-id", BasePrice: 120}, nil)

				f.repo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
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
				assert.Equal(t, "booking-id", res.ID)
			}
		})
	}
}

func TestBookingService_Search(t *testing.T) {
	bookings := []model.Booking{
		newBooking("id-1", model.StatusPending),
		newBooking("id-2", model.StatusConfirmed),
		newBooking("id-3", model.StatusConfirmed),
	}

	tests := []struct {
		name      string
		status    string
		setupMock func(f fixtures)
		wantErr   bool
		wantTotal int
	}{
		{
			name:   "status narrows the collection",
			status: model.StatusConfirmed,
			setupMock: func(f fixtures) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookings, nil)

				f.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				f.payment.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Payment{}, nil)
			},
			wantErr:   false,
			wantTotal: 2,
		},
		{
			name: "repository error",
			setupMock: func(f fixtures) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
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

			params := gDto.QueryParams{Limit: 10, Page: 1}
			result, err := f.svc.Search(context.Background(), params, "", tt.status)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}

func TestBookingService_RecordPayment(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.RecordPaymentRequest
		setupMock func(f fixtures)
		wantErr   bool
		wantPaid  bool
	}{
		{
			name: "partial payment leaves a balance",
			req:  dto.RecordPaymentRequest{Amount: 100, Method: "cash"},
			setupMock: func(f fixtures) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("booking-id", model.StatusConfirmed), nil)

				f.payment.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(model.Payment{ID: "payment-id", BookingID: "booking-id", Amount: 100}, nil)

				f.payment.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Payment{
						{ID: "payment-id", BookingID: "booking-id", Amount: 100},
					}, nil)

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
			wantErr:  false,
			wantPaid: false,
		},
		{
			name: "payment covering the total settles the booking",
			req:  dto.RecordPaymentRequest{Amount: 240, Method: "cash"},
			setupMock: func(f fixtures) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("booking-id", model.StatusConfirmed), nil)

				f.payment.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(model.Payment{ID: "payment-id", BookingID: "booking-id", Amount: 240}, nil)

				f.payment.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Payment{
						{ID: "payment-id", BookingID: "booking-id", Amount: 240},
					}, nil)

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
			wantErr:  false,
			wantPaid: true,
		},
		{
			name: "non-positive amount is rejected",
			req:  dto.RecordPaymentRequest{Amount: 0, Method: "cash"},
			setupMock: func(f fixtures) {
				// Rejected before any repository call.
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			req:  dto.RecordPaymentRequest{Amount: 100, Method: "cash"},
			setupMock: func(f fixtures) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := f.svc.RecordPayment(ctx, tt.req, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantPaid, res.PaidInFull)
			}
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func(f fixtures)
		wantErr   bool
	}{
		{
			name: "new dates must keep their order",
			req: dto.UpdateBookingRequest{
				CheckOutDate: "2025-05-30",
			},
			setupMock: func(f fixtures) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("booking-id", model.StatusPending), nil)
			},
			wantErr: true,
		},
		{
			name: "empty update request",
			req:  dto.UpdateBookingRequest{},
			setupMock: func(f fixtures) {
				// Rejected before any repository call.
			},
			wantErr: true,
		},
		{
			name: "date change reprices the stay",
			req: dto.UpdateBookingRequest{
				CheckOutDate: "2025-06-05",
			},
			setupMock: func(f fixtures) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("booking-id", model.StatusPending), nil)

				f.room.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: "room-id", BasePrice: 120}, nil)

				f.repo.EXPECT().
					UpdateReturning(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) (model.Booking, error) {
						// Four nights at the room's base rate of 120.
						assert.InDelta(t, 480.0, req[model.FieldTotalAmount], 0.001)

						return newBooking("booking-id", model.StatusPending), nil
					})

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newBooking("booking-id", model.StatusPending), nil)

				f.payment.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Payment{}, nil)

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
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			_, err := f.svc.Update(ctx, tt.req, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

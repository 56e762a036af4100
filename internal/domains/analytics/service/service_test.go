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
	s3Mocks "hotelier/infras/s3/mocks"
	"hotelier/internal/domains/analytics/service"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	bookingModel "hotelier/internal/domains/booking/model"
	guestMocks "hotelier/internal/domains/guest/mocks"
	hkMocks "hotelier/internal/domains/housekeeping/mocks"
	hkModel "hotelier/internal/domains/housekeeping/model"
	roomMocks "hotelier/internal/domains/room/mocks"
	roomModel "hotelier/internal/domains/room/model"
	staffMocks "hotelier/internal/domains/staff/mocks"
	staffModel "hotelier/internal/domains/staff/model"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/timezone"
)

type fixtures struct {
	guests   *guestMocks.MockGuest
	rooms    *roomMocks.MockRoom
	bookings *bookingMocks.MockBooking
	payments *bookingMocks.MockPayment
	staff    *staffMocks.MockStaff
	tasks    *hkMocks.MockHousekeeping
	cache    *cacheMocks.MockRedisCache
	s3       *s3Mocks.MockS3
	svc      service.Analytics
}

func setup(t *testing.T) fixtures {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixtures{
		guests:   guestMocks.NewMockGuest(ctrl),
		rooms:    roomMocks.NewMockRoom(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		payments: bookingMocks.NewMockPayment(ctrl),
		staff:    staffMocks.NewMockStaff(ctrl),
		tasks:    hkMocks.NewMockHousekeeping(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "hotelier-reports"

	f.svc = service.New(f.guests, f.rooms, f.bookings, f.payments, f.staff, f.tasks, cfg, f.cache, f.s3, mocks.NewOtel())

	return f
}

func sampleRooms() []roomModel.Room {
	return []roomModel.Room{
		{ID: "room-1", Status: roomModel.StatusAvailable},
		{ID: "room-2", Status: roomModel.StatusOccupied},
		{ID: "room-3", Status: roomModel.StatusOccupied},
		{ID: "room-4", Status: roomModel.StatusMaintenance},
	}
}

func sampleBookings() []bookingModel.Booking {
	return []bookingModel.Booking{
		{
			ID:           "booking-1",
			Status:       bookingModel.StatusCheckedOut,
			CheckInDate:  time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
		},
		{ID: "booking-2", Status: bookingModel.StatusConfirmed},
	}
}

func samplePayments() []bookingModel.Payment {
	return []bookingModel.Payment{
		{ID: "payment-1", Amount: 100.5, PaidAt: time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "payment-2", Amount: 200, PaidAt: timezone.Now()},
	}
}

func TestAnalyticsService_Dashboard(t *testing.T) {
	t.Run("cache miss aggregates every collection", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.guests.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(5, nil)

		f.rooms.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(sampleRooms(), nil)

		f.bookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(sampleBookings(), nil)

		f.payments.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(samplePayments(), nil)

		f.staff.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]staffModel.StaffMember{
				{ID: "staff-1", Role: staffModel.RoleReceptionist},
				{ID: "staff-2", Role: staffModel.RoleHousekeeping},
			}, nil)

		f.tasks.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]hkModel.HousekeepingTask{
				{ID: "task-1", Status: hkModel.StatusPending},
			}, nil)

		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.Dashboard(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 5, res.TotalGuests)
		assert.Equal(t, 4, res.TotalRooms)
		assert.Equal(t, 2, res.TotalBookings)
		assert.InDelta(t, 50.0, res.OccupancyRate, 0.001)
		assert.InDelta(t, 2.0, res.AverageStayNights, 0.001)
		assert.InDelta(t, 300.5, res.RevenueTotal, 0.001)
		assert.InDelta(t, 200.0, res.RevenueThisMonth, 0.001)
		assert.Equal(t, 2, res.RoomStatusCounts[roomModel.StatusOccupied])
		assert.Equal(t, 1, res.BookingStatusCounts[bookingModel.StatusConfirmed])
		assert.Equal(t, 1, res.StaffRoleCounts[staffModel.RoleReceptionist])
		assert.Equal(t, 1, res.TaskStatusCounts[hkModel.StatusPending])
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.guests.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := f.svc.Dashboard(context.Background())

		assert.Error(t, err)
	})
}

func TestAnalyticsService_AdminPanel(t *testing.T) {
	t.Run("payments group by month", func(t *testing.T) {
		f := setup(t)

		f.payments.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Payment{
				{ID: "payment-1", Amount: 100, PaidAt: time.Date(2025, time.February, 5, 12, 0, 0, 0, time.UTC)},
				{ID: "payment-2", Amount: 50, PaidAt: time.Date(2025, time.February, 20, 12, 0, 0, 0, time.UTC)},
				{ID: "payment-3", Amount: 75, PaidAt: time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)},
			}, nil)

		res, err := f.svc.AdminPanel(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res.MonthlyRevenue, 2)
		assert.InDelta(t, 150.0, res.MonthlyRevenue[0].Revenue, 0.001)
		assert.Equal(t, 2, res.MonthlyRevenue[0].Payments)
		assert.InDelta(t, 75.0, res.MonthlyRevenue[1].Revenue, 0.001)
		assert.InDelta(t, 225.0, res.RevenueTotal, 0.001)
		assert.Equal(t, 3, res.PaymentCount)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		f := setup(t)

		f.payments.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := f.svc.AdminPanel(context.Background())

		assert.Error(t, err)
	})
}

func TestAnalyticsService_ExportRevenue(t *testing.T) {
	t.Run("uploads the report and returns the url", func(t *testing.T) {
		f := setup(t)

		f.payments.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(samplePayments(), nil)

		f.s3.EXPECT().
			UploadFileBytes(gomock.Any(), "hotelier-reports", "reports", gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/reports/revenue.csv", nil)

		res, err := f.svc.ExportRevenue(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/reports/revenue.csv", res.URL)
	})

	t.Run("upload error surfaces", func(t *testing.T) {
		f := setup(t)

		f.payments.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(samplePayments(), nil)

		f.s3.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("upload failed"))

		_, err := f.svc.ExportRevenue(context.Background())

		assert.Error(t, err)
	})
}

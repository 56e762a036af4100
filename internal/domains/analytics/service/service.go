package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/infras/s3"
	"hotelier/internal/domains/analytics/model/dto"
	bookingModel "hotelier/internal/domains/booking/model"
	bookingRepo "hotelier/internal/domains/booking/repository"
	guestRepo "hotelier/internal/domains/guest/repository"
	hkModel "hotelier/internal/domains/housekeeping/model"
	hkRepo "hotelier/internal/domains/housekeeping/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepo "hotelier/internal/domains/room/repository"
	staffModel "hotelier/internal/domains/staff/model"
	staffRepo "hotelier/internal/domains/staff/repository"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/stats"
	"hotelier/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheDashboard = "analytics:dashboard"

	monthKeyFormat   = "2006-01"
	monthLabelFormat = "Jan 2006"
)

type Analytics interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
	AdminPanel(ctx context.Context) (dto.AdminPanelResponse, error)
	ExportRevenue(ctx context.Context) (dto.ExportRevenueResponse, error)
}

type serviceImpl struct {
	guestRepo   guestRepo.Guest
	roomRepo    roomRepo.Room
	bookingRepo bookingRepo.Booking
	paymentRepo bookingRepo.Payment
	staffRepo   staffRepo.Staff
	taskRepo    hkRepo.Housekeeping
	cfg         *config.Config
	cache       cache.RedisCache
	s3          s3.S3
	otel        otel.Otel
}

func New(
	guestRepository guestRepo.Guest,
	roomRepository roomRepo.Room,
	bookingRepository bookingRepo.Booking,
	paymentRepository bookingRepo.Payment,
	staffRepository staffRepo.Staff,
	taskRepository hkRepo.Housekeeping,
	cfg *config.Config,
	cache cache.RedisCache,
	s3 s3.S3,
	otel otel.Otel,
) Analytics {
	return &serviceImpl{
		guestRepo:   guestRepository,
		roomRepo:    roomRepository,
		bookingRepo: bookingRepository,
		paymentRepo: paymentRepository,
		staffRepo:   staffRepository,
		taskRepo:    taskRepository,
		cfg:         cfg,
		cache:       cache,
		s3:          s3,
		otel:        otel,
	}
}

func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheDashboard, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheDashboard).Msg("cache hit for dashboard")

		return res, nil
	}

	totalGuests, err := s.guestRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	rooms, err := s.roomRepo.GetAll(ctx, defaultParams(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, defaultParams(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	payments, err := s.paymentRepo.GetAll(ctx, defaultParams(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	members, err := s.staffRepo.GetAll(ctx, defaultParams(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	tasks, err := s.taskRepo.GetAll(ctx, defaultParams(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping tasks")

		return res, fmt.Errorf("failed to get housekeeping tasks: %w", err)
	}

	roomStatusCounts := stats.Tally(rooms, roomModel.Statuses(), func(r roomModel.Room) string { return r.Status })

	var stayNights []float64

	for _, booking := range bookings {
		if booking.Status == bookingModel.StatusCheckedOut {
			stayNights = append(stayNights, float64(stats.NightsBetween(booking.CheckInDate, booking.CheckOutDate)))
		}
	}

	now := timezone.Now()

	res = dto.DashboardResponse{
		TotalGuests:       totalGuests,
		TotalRooms:        len(rooms),
		TotalBookings:     len(bookings),
		OccupancyRate:     stats.Rate(roomStatusCounts[roomModel.StatusOccupied], len(rooms)),
		AverageStayNights: stats.Mean(stayNights),
		RevenueTotal: stats.Sum(payments, func(p bookingModel.Payment) float64 {
			return p.Amount
		}),
		RevenueThisMonth: stats.SumWhere(payments, func(p bookingModel.Payment) bool {
			return timezone.SameMonth(p.PaidAt, now)
		}, func(p bookingModel.Payment) float64 {
			return p.Amount
		}),
		RoomStatusCounts: roomStatusCounts,
		BookingStatusCounts: stats.Tally(bookings, bookingModel.Statuses(), func(b bookingModel.Booking) string {
			return b.Status
		}),
		StaffRoleCounts: stats.Tally(members, staffModel.Roles(), func(m staffModel.StaffMember) string {
			return m.Role
		}),
		TaskStatusCounts: stats.Tally(tasks, hkModel.Statuses(), func(t hkModel.HousekeepingTask) string {
			return t.Status
		}),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheDashboard, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) AdminPanel(ctx context.Context) (res dto.AdminPanelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminPanel")
	defer scope.End()
	defer scope.TraceIfError(err)

	series, total, count, err := s.monthlySeries(ctx)
	if err != nil {
		return res, err
	}

	res.MonthlyRevenue = series
	res.RevenueTotal = total
	res.PaymentCount = count

	return res, nil
}

// ExportRevenue renders the monthly revenue series as CSV and uploads it to
// object storage, returning the public URL.
func (s *serviceImpl) ExportRevenue(ctx context.Context) (res dto.ExportRevenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportRevenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	series, _, _, err := s.monthlySeries(ctx)
	if err != nil {
		return res, err
	}

	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	if err = writer.Write([]string{"month", "revenue", "payments"}); err != nil {
		return res, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range series {
		record := []string{
			row.Month,
			strconv.FormatFloat(row.Revenue, 'f', 2, 64),
			strconv.Itoa(row.Payments),
		}

		if err = writer.Write(record); err != nil {
			return res, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()

	if err = writer.Error(); err != nil {
		return res, fmt.Errorf("failed to flush csv: %w", err)
	}

	fileName := fmt.Sprintf("revenue-%s.csv", timezone.Now().Format(constant.DateOnlyFormat))

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, "reports", fileName, constant.ContentTypeCSV, buf.Bytes())
	if err != nil {
		log.Error().Err(err).Msg("failed to upload revenue report")

		return res, fmt.Errorf("failed to upload revenue report: %w", err)
	}

	res.URL = url

	return res, nil
}

func (s *serviceImpl) monthlySeries(ctx context.Context) (series []dto.MonthlyRevenue, total float64, count int, err error) {
	payments, err := s.paymentRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  bookingModel.FieldPaidAt,
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return nil, 0, 0, fmt.Errorf("failed to get payments: %w", err)
	}

	byMonth := map[string]*dto.MonthlyRevenue{}

	for _, payment := range payments {
		key := timezone.ToAppTime(payment.PaidAt).Format(monthKeyFormat)

		entry, ok := byMonth[key]
		if !ok {
			entry = &dto.MonthlyRevenue{Month: timezone.ToAppTime(payment.PaidAt).Format(monthLabelFormat)}
			byMonth[key] = entry
		}

		entry.Revenue += payment.Amount
		entry.Payments++
		total += payment.Amount
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	series = make([]dto.MonthlyRevenue, len(keys))
	for i, key := range keys {
		series[i] = *byMonth[key]
	}

	return series, total, len(payments), nil
}

func defaultParams() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}
}

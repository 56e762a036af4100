package service

import (
	"context"
	"fmt"
	"time"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/repository"
	guestModel "hotelier/internal/domains/guest/model"
	guestRepo "hotelier/internal/domains/guest/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepo "hotelier/internal/domains/room/repository"
	"hotelier/internal/events"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/search"
	"hotelier/shared/stats"
	"hotelier/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Search(ctx context.Context, params gDto.QueryParams, query, status string) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	ChangeStatus(ctx context.Context, req dto.ChangeBookingStatusRequest, id string) (dto.BookingResponse, error)
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, id string) (dto.BookingResponse, error)
	ListPayments(ctx context.Context, id string) (dto.GetPaymentsResponse, error)
}

type serviceImpl struct {
	repo        repository.Booking
	paymentRepo repository.Payment
	guestRepo   guestRepo.Guest
	roomRepo    roomRepo.Room
	cfg         *config.Config
	cache       cache.RedisCache
	events      events.Publisher
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	paymentRepo repository.Payment,
	guestRepository guestRepo.Guest,
	roomRepository roomRepo.Room,
	cfg *config.Config,
	cache cache.RedisCache,
	events events.Publisher,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:        repo,
		paymentRepo: paymentRepo,
		guestRepo:   guestRepository,
		roomRepo:    roomRepository,
		cfg:         cfg,
		cache:       cache,
		events:      events,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := parseStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return res, err
	}

	guestExists, err := s.guestRepo.Exist(ctx, shared.FilterByID(req.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return res, fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !guestExists {
		return res, failure.BadRequestFromString("guest does not exist") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	booking := req.ToModel(user, checkIn, checkOut, room.BasePrice)
	if booking.TotalAmount <= 0 {
		return res, failure.BadRequestFromString("computed total amount must be positive") // nolint:wrapcheck
	}

	stored, err := s.repo.InsertReturning(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	// Re-read through the join so the response carries guest and room fields.
	canonical, err := s.repo.Get(ctx, shared.FilterByID(stored.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to reload booking")

		return res, fmt.Errorf("failed to reload booking: %w", err)
	}

	res.FromModel(canonical, nil)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()

	s.events.Publish(ctx, events.ActionCreated, model.EntityName, stored.ID)

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, params gDto.QueryParams, query, status string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.fetchAll(ctx)
	if err != nil {
		return res, err
	}

	filtered := search.Apply(bookings,
		search.Text(query, model.Booking.SearchFields),
		search.Term(status, func(b model.Booking) string { return b.Status }),
	)
	page := shared.Paginate(filtered, params.Page, params.Limit)

	paymentsByBooking, err := s.paymentsFor(ctx, page)
	if err != nil {
		return res, err
	}

	res.FromModels(page, paymentsByBooking, len(filtered), params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	payments, err := s.paymentsOf(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking, payments)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	checkIn := current.CheckInDate
	checkOut := current.CheckOutDate

	if req.CheckInDate != "" {
		if checkIn, err = timezone.Parse(constant.DateOnlyFormat, req.CheckInDate); err != nil {
			return res, failure.BadRequestFromString("invalid check-in date") // nolint:wrapcheck
		}

		updatedFields[model.FieldCheckInDate] = checkIn
	}

	if req.CheckOutDate != "" {
		if checkOut, err = timezone.Parse(constant.DateOnlyFormat, req.CheckOutDate); err != nil {
			return res, failure.BadRequestFromString("invalid check-out date") // nolint:wrapcheck
		}

		updatedFields[model.FieldCheckOutDate] = checkOut
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	// A date change reprices the stay from the room's base rate; the stored
	// total is never carried over.
	if req.CheckInDate != "" || req.CheckOutDate != "" {
		room, err := s.roomRepo.Get(ctx, shared.FilterByID(current.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get room")

			return res, fmt.Errorf("failed to get room: %w", err)
		}

		if room.ID == constant.Empty {
			return res, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
		}

		updatedFields[model.FieldTotalAmount] = float64(stats.NightsBetween(checkIn, checkOut)) * room.BasePrice
	}

	if _, err = s.repo.UpdateReturning(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	canonical, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload booking")

		return res, fmt.Errorf("failed to reload booking: %w", err)
	}

	payments, err := s.paymentsOf(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(canonical, payments)

	s.invalidate(ctx, id)
	s.events.Publish(ctx, events.ActionUpdated, model.EntityName, id)

	return res, nil
}

func (s *serviceImpl) ChangeStatus(ctx context.Context, req dto.ChangeBookingStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangeBookingStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return res, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(struct {
		Status string `db:"status"`
	}{Status: req.Status}, user)

	if _, err = s.repo.UpdateReturning(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to change booking status")

		return res, fmt.Errorf("failed to change booking status: %w", err)
	}

	canonical, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload booking")

		return res, fmt.Errorf("failed to reload booking: %w", err)
	}

	payments, err := s.paymentsOf(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(canonical, payments)

	s.invalidate(ctx, id)
	s.events.Publish(ctx, events.ActionStatusChanged, model.EntityName, id)

	return res, nil
}

// RecordPayment appends a payment to the booking. Over-payment is accepted;
// the balance simply goes negative and the booking reports paid in full.
func (s *serviceImpl) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Amount <= 0 {
		return res, failure.BadRequestFromString("payment amount must be positive") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if _, err = s.paymentRepo.InsertReturning(ctx, req.ToModel(user, id)); err != nil {
		log.Error().Err(err).Msg("failed to record payment")

		return res, fmt.Errorf("failed to record payment: %w", err)
	}

	payments, err := s.paymentsOf(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking, payments)

	s.invalidate(ctx, id)
	s.events.Publish(ctx, events.ActionPaymentTaken, model.EntityName, id)

	return res, nil
}

func (s *serviceImpl) ListPayments(ctx context.Context, id string) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPayments")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return res, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	payments, err := s.paymentsOf(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModels(payments)

	return res, nil
}

func parseStayDates(checkInStr, checkOutStr string) (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, checkInStr)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid check-in date") // nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, checkOutStr)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid check-out date") // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

func (s *serviceImpl) paymentsOf(ctx context.Context, bookingID string) ([]model.Payment, error) {
	payments, err := s.paymentRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.FieldPaidAt,
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.PaymentTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	return payments, nil
}

func (s *serviceImpl) paymentsFor(ctx context.Context, bookings []model.Booking) (map[string][]model.Payment, error) {
	grouped := map[string][]model.Payment{}

	if len(bookings) == 0 {
		return grouped, nil
	}

	ids := make([]string, len(bookings))
	for i, booking := range bookings {
		ids[i] = booking.ID
	}

	payments, err := s.paymentRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.FieldPaidAt,
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorIn,
				Value:    ids,
				Table:    model.PaymentTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	for _, payment := range payments {
		grouped[payment.BookingID] = append(grouped[payment.BookingID], payment)
	}

	return grouped, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()
}

func (s *serviceImpl) fetchAll(ctx context.Context) (bookings []model.Booking, err error) {
	err = s.cache.Get(ctx, cacheGetAllBooking, &bookings)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllBooking).Msg("cache hit for bookings")

		return bookings, nil
	}

	bookings, err = s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllBooking, bookings, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return bookings, nil
}

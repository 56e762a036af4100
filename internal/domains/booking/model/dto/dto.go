package dto

import (
	"time"

	"hotelier/internal/domains/booking/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/stats"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	GuestID         string `json:"guest_id"         validate:"required"`
	RoomID          string `json:"room_id"          validate:"required"`
	CheckInDate     string `json:"check_in_date"    validate:"required,datetime=2006-01-02"`
	CheckOutDate    string `json:"check_out_date"   validate:"required,datetime=2006-01-02"`
	Adults          int    `json:"adults"           validate:"required,gte=1"`
	Children        int    `json:"children"         validate:"omitempty,gte=0"`
	Status          string `json:"status"           validate:"omitempty,oneof=pending confirmed checked_in checked_out cancelled"`
	SpecialRequests string `json:"special_requests" validate:"omitempty"`
}

// ToModel builds the booking with the total priced from the room's base
// nightly rate. Date ordering and total positivity are the caller's
// preconditions.
func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time, basePrice float64) model.Booking {
	status := model.StatusPending
	if c.Status != "" {
		status = c.Status
	}

	nights := stats.NightsBetween(checkIn, checkOut)

	return model.Booking{
		ID:              uuid.NewString(),
		GuestID:         c.GuestID,
		RoomID:          c.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Adults:          c.Adults,
		Children:        c.Children,
		TotalAmount:     float64(nights) * basePrice,
		Status:          status,
		SpecialRequests: c.SpecialRequests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	CheckInDate     string `json:"check_in_date"    validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate    string `json:"check_out_date"   validate:"omitempty,datetime=2006-01-02"`
	Adults          int    `db:"adults"           json:"adults"           validate:"omitempty,gte=1"`
	Children        int    `db:"children"         json:"children"         validate:"omitempty,gte=0"`
	SpecialRequests string `db:"special_requests" json:"special_requests" validate:"omitempty"`
}

type ChangeBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed checked_in checked_out cancelled"`
}

type RecordPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method string  `json:"method" validate:"required,oneof=cash credit_card debit_card bank_transfer check"`
}

func (c *RecordPaymentRequest) ToModel(user, bookingID string) model.Payment {
	return model.Payment{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Amount:    c.Amount,
		Method:    c.Method,
		Status:    model.PaymentStatusPaid,
		PaidAt:    timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PaymentResponse struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Status    string  `json:"status"`
	PaidAt    string  `json:"paid_at"`
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.Method = model.Method
	r.Status = model.Status
	r.PaidAt = timezone.Format(model.PaidAt, constant.DateFormat)
}

type BookingResponse struct {
	ID              string            `json:"id"`
	GuestID         string            `json:"guest_id"`
	RoomID          string            `json:"room_id"`
	GuestFirstName  string            `json:"guest_first_name"`
	GuestLastName   string            `json:"guest_last_name"`
	GuestEmail      string            `json:"guest_email"`
	RoomNumber      string            `json:"room_number"`
	RoomType        string            `json:"room_type"`
	CheckInDate     string            `json:"check_in_date"`
	CheckOutDate    string            `json:"check_out_date"`
	Adults          int               `json:"adults"`
	Children        int               `json:"children"`
	TotalAmount     float64           `json:"total_amount"`
	Status          string            `json:"status"`
	SpecialRequests string            `json:"special_requests"`
	Payments        []PaymentResponse `json:"payments"`
	Balance         float64           `json:"balance"`
	PaidInFull      bool              `json:"paid_in_full"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking, payments []model.Payment) {
	r.ID = booking.ID
	r.GuestID = booking.GuestID
	r.RoomID = booking.RoomID
	r.GuestFirstName = booking.GuestFirstName
	r.GuestLastName = booking.GuestLastName
	r.GuestEmail = booking.GuestEmail
	r.RoomNumber = booking.RoomNumber
	r.RoomType = booking.RoomType
	r.CheckInDate = booking.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = booking.CheckOutDate.Format(constant.DateOnlyFormat)
	r.Adults = booking.Adults
	r.Children = booking.Children
	r.TotalAmount = booking.TotalAmount
	r.Status = booking.Status
	r.SpecialRequests = booking.SpecialRequests

	amounts := make([]float64, len(payments))
	r.Payments = make([]PaymentResponse, len(payments))

	for i, payment := range payments {
		amounts[i] = payment.Amount
		r.Payments[i].FromModel(payment)
	}

	r.Balance = stats.Balance(booking.TotalAmount, amounts)
	r.PaidInFull = stats.SettledBy(booking.TotalAmount, amounts)
	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, paymentsByBooking map[string][]model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod, paymentsByBooking[mod.ID])
	}
}

type GetPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment) {
	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}

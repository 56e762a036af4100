package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	PaymentTableName  = "payments"
	PaymentEntityName = "payment"

	FieldPaymentID = "id"
	FieldBookingID = "booking_id"
	FieldAmount    = "amount"
	FieldMethod    = "method"
	FieldPaidAt    = "paid_at"
)

const (
	PaymentMethodCash         = "cash"
	PaymentMethodCreditCard   = "credit_card"
	PaymentMethodDebitCard    = "debit_card"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCheck        = "check"

	PaymentStatusPaid = "paid"
)

type Payment struct {
	ID        string    `db:"id"`
	BookingID string    `db:"booking_id"`
	Amount    float64   `db:"amount"`
	Method    string    `db:"method"`
	Status    string    `db:"status"`
	PaidAt    time.Time `db:"paid_at"`
	model.Metadata
}

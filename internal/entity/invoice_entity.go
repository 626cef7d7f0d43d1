package entity

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
	InvoiceStatusVoid  InvoiceStatus = "void"
)

type Invoice struct {
	Id          uuid.UUID
	AgencyId    uuid.UUID
	ClientId    uuid.UUID
	ItineraryId *uuid.UUID
	Amount      float64
	Currency    string
	Status      InvoiceStatus
	PaymentLink string
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

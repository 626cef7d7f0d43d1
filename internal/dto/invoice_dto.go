package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateInvoiceRequest struct {
	ClientId    uuid.UUID  `json:"client_id" validate:"required"`
	ItineraryId *uuid.UUID `json:"itinerary_id"`
	Amount      float64    `json:"amount" validate:"required,gt=0"`
	Currency    string     `json:"currency"`
}

type UpdateInvoiceStatusRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required"`
}

type InvoiceResponse struct {
	Id          uuid.UUID  `json:"id"`
	ClientId    uuid.UUID  `json:"client_id"`
	ItineraryId *uuid.UUID `json:"itinerary_id,omitempty"`
	Amount      float64    `json:"amount"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status"`
	PaymentLink string     `json:"payment_link,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type PaymentLinkResponse struct {
	InvoiceId   uuid.UUID `json:"invoice_id"`
	PaymentLink string    `json:"payment_link"`
}

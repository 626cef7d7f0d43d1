package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeItineraryCreated = "ITINERARY_CREATED"
	TypeInvoiceCreated   = "INVOICE_CREATED"
	TypeLeadConverted    = "LEAD_CONVERTED"
)

func NewItineraryCreated(agencyID, itineraryID uuid.UUID, destination string, source string) Event {
	return BaseEvent{
		Type: TypeItineraryCreated,
		Data: map[string]interface{}{
			"agency_id":    agencyID.String(),
			"itinerary_id": itineraryID.String(),
			"destination":  destination,
			"source":       source,
		},
		OccurredAt: time.Now(),
	}
}

func NewInvoiceCreated(agencyID, invoiceID uuid.UUID, amount float64, currency string) Event {
	return BaseEvent{
		Type: TypeInvoiceCreated,
		Data: map[string]interface{}{
			"agency_id":  agencyID.String(),
			"invoice_id": invoiceID.String(),
			"amount":     amount,
			"currency":   currency,
		},
		OccurredAt: time.Now(),
	}
}

func NewLeadConverted(agencyID, leadID, clientID uuid.UUID) Event {
	return BaseEvent{
		Type: TypeLeadConverted,
		Data: map[string]interface{}{
			"agency_id": agencyID.String(),
			"lead_id":   leadID.String(),
			"client_id": clientID.String(),
		},
		OccurredAt: time.Now(),
	}
}

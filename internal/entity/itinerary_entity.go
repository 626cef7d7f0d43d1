package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ItineraryStatus string

// Status transitions are driven by explicit UI actions, not by the pipeline;
// every AI-created itinerary starts at draft.
const (
	ItineraryStatusDraft     ItineraryStatus = "draft"
	ItineraryStatusSent      ItineraryStatus = "sent"
	ItineraryStatusApproved  ItineraryStatus = "approved"
	ItineraryStatusBooked    ItineraryStatus = "booked"
	ItineraryStatusCancelled ItineraryStatus = "cancelled"
)

type Itinerary struct {
	Id                 uuid.UUID
	AgencyId           uuid.UUID
	ClientId           uuid.UUID
	Destination        string
	Duration           int // days
	Budget             string
	AiGeneratedContent string
	AiGeneratedJson    json.RawMessage
	Status             ItineraryStatus
	CreatedBy          uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

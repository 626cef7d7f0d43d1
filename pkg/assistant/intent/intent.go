package intent

import "strings"

// Kind is the closed set of automations the assistant can route to.
// The pipeline switches exhaustively on this type; adding a new kind means
// touching both this file and the pipeline's switch.
type Kind string

const (
	KindItinerary Kind = "itinerary"
	KindInvoice   Kind = "invoice"
	KindBooking   Kind = "booking"
	KindProposal  Kind = "proposal"
	KindGeneral   Kind = "general"
)

// ParseKind normalizes a model-emitted string into a Kind.
// Anything unrecognized degrades to general chat, never to an error.
func ParseKind(s string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindItinerary:
		return KindItinerary
	case KindInvoice:
		return KindInvoice
	case KindBooking:
		return KindBooking
	case KindProposal:
		return KindProposal
	default:
		return KindGeneral
	}
}

// Intent is the classifier's structured guess at what the user wants.
// Fields are heuristic extractions; the pipeline re-validates everything
// before any write.
type Intent struct {
	Kind        Kind
	ClientName  string
	Destination string
	Duration    string
	TravelDates string
}

// Default is the fail-safe intent: general chat, nothing extracted.
func Default() *Intent {
	return &Intent{Kind: KindGeneral}
}

package pipeline

import (
	"regexp"
	"strconv"

	"triponic-be/pkg/assistant/planner"

	"github.com/google/uuid"
)

// Action names the record an automation branch created. Clarifications and
// freeform chat carry no action; only record-creating turns set one.
const (
	ActionItineraryCreated = "itinerary_created"
	ActionInvoiceCreated   = "invoice_created"
)

// Result is the outcome of a single assistant turn. Clarification requests
// are successful results: the pipeline did its job by asking for the missing
// detail.
type Result struct {
	Success     bool                    `json:"success"`
	Action      string                  `json:"action,omitempty"`
	Response    string                  `json:"response"`
	ItineraryId *uuid.UUID              `json:"itinerary_id,omitempty"`
	InvoiceId   *uuid.UUID              `json:"invoice_id,omitempty"`
	Plan        *planner.StructuredPlan `json:"plan,omitempty"`
}

const defaultInvoiceAmount = 1000.00

var amountRe = regexp.MustCompile(`\d+`)

// DeriveAmount pulls an invoice amount out of a free-text budget such as
// "$1000-2000 per person". The first contiguous digit run wins; budgets with
// no digits fall back to the default.
func DeriveAmount(budget string) float64 {
	match := amountRe.FindString(budget)
	if match == "" {
		return defaultInvoiceAmount
	}
	n, err := strconv.Atoi(match)
	if err != nil || n <= 0 {
		return defaultInvoiceAmount
	}
	return float64(n)
}

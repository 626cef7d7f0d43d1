package planner

// StructuredPlan is the day-by-day itinerary payload produced by generation.
// The daily slice should have Duration entries, but a malformed completion
// degrades to a single-day fallback instead (see DecodePlan).
type StructuredPlan struct {
	Title              string            `json:"title"`
	Summary            string            `json:"summary"`
	Destination        string            `json:"destination"`
	Duration           int               `json:"duration"`
	Daily              []DayPlan         `json:"daily"`
	TravelTips         []string          `json:"travel_tips"`
	EstimatedTotalCost string            `json:"estimated_total_cost"`
}

type DayPlan struct {
	Day        int               `json:"day"`
	Morning    string            `json:"morning"`
	Afternoon  string            `json:"afternoon"`
	Evening    string            `json:"evening"`
	Activities []string          `json:"activities"`
	Meals      map[string]string `json:"meals"`
	Notes      string            `json:"notes"`
}

// DecodeStatus tags how a model completion was turned into a plan.
type DecodeStatus int

const (
	// DecodeOK: the full trimmed completion parsed as JSON.
	DecodeOK DecodeStatus = iota
	// DecodeDegraded: only an embedded {...} block parsed.
	DecodeDegraded
	// DecodeMalformed: nothing parsed; the caller builds the fallback plan.
	DecodeMalformed
)

func (s DecodeStatus) String() string {
	switch s {
	case DecodeOK:
		return "ok"
	case DecodeDegraded:
		return "degraded"
	default:
		return "malformed"
	}
}

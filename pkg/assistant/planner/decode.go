package planner

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Matches the first '{' through the last '}' across lines, mirroring how
// models wrap JSON in prose or markdown fences.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// DecodePlan turns a raw model completion into a StructuredPlan.
// Tiers, in order:
//  1. strict parse of the full trimmed completion
//  2. strict parse of the first embedded {...} block
//  3. nothing parseable: returns (nil, DecodeMalformed)
//
// DecodePlan never fails with an error; the Malformed case is a normal
// outcome the generator converts into a single-day fallback plan.
func DecodePlan(raw string) (*StructuredPlan, DecodeStatus) {
	trimmed := strings.TrimSpace(raw)

	var plan StructuredPlan
	if err := json.Unmarshal([]byte(trimmed), &plan); err == nil {
		return &plan, DecodeOK
	}

	if block := jsonBlockRe.FindString(trimmed); block != "" {
		plan = StructuredPlan{}
		if err := json.Unmarshal([]byte(block), &plan); err == nil {
			return &plan, DecodeDegraded
		}
	}

	return nil, DecodeMalformed
}

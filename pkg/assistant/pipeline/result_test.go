package pipeline

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestResultActionOmittedWhenEmpty(t *testing.T) {
	raw, err := json.Marshal(&Result{Success: true, Response: "Which client is this for?"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(raw), `"action"`) {
		t.Errorf("payload = %s, clarification and chat results must carry no action key", raw)
	}

	raw, err = json.Marshal(&Result{Success: true, Action: ActionInvoiceCreated, Response: "done"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(raw), `"action":"invoice_created"`) {
		t.Errorf("payload = %s, record-creating results must carry the action", raw)
	}
}

func TestDeriveAmount(t *testing.T) {
	tests := []struct {
		budget string
		want   float64
	}{
		{"$1000-2000", 1000},
		{"$1500-2000 per person", 1500},
		{"around 3000 USD", 3000},
		{"moderate", defaultInvoiceAmount},
		{"", defaultInvoiceAmount},
		{"$0", defaultInvoiceAmount},
	}

	for _, tt := range tests {
		t.Run(tt.budget, func(t *testing.T) {
			got := DeriveAmount(tt.budget)
			if got != tt.want {
				t.Errorf("DeriveAmount(%q) = %v, want %v", tt.budget, got, tt.want)
			}
		})
	}
}

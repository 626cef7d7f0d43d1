package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"triponic-be/internal/entity"
	"triponic-be/pkg/assistant"
	"triponic-be/pkg/assistant/intent"
	"triponic-be/pkg/assistant/planner"

	"github.com/google/uuid"
)

func newTestPipeline(store *fakeStore, model *scriptedLLM, sink ConversationSink) *Pipeline {
	return NewPipeline(
		intent.NewClassifier(model),
		planner.NewGenerator(model),
		model,
		&fakeFactory{store: store},
		sink,
		noopLogger{},
	)
}

func testTenant() Tenant {
	return Tenant{AgencyId: uuid.New(), UserId: uuid.New()}
}

func TestHandleTurnEmptyMessage(t *testing.T) {
	p := newTestPipeline(&fakeStore{}, &scriptedLLM{}, nil)

	_, err := p.HandleTurn(context.Background(), testTenant(), Turn{Message: "   "})
	if !errors.Is(err, assistant.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestHandleTurnClassifierDown(t *testing.T) {
	model := &scriptedLLM{genErr: errors.New("connection refused")}
	p := newTestPipeline(&fakeStore{}, model, nil)

	_, err := p.HandleTurn(context.Background(), testTenant(), Turn{Message: "hello"})

	var genErr *assistant.GenerationUnavailableError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %T, want *assistant.GenerationUnavailableError", err)
	}
	if genErr.Step != "classify" {
		t.Errorf("Step = %q, want %q", genErr.Step, "classify")
	}
}

func TestHandleTurnItineraryCreated(t *testing.T) {
	tenant := testTenant()
	store := &fakeStore{
		clients: []*entity.Client{{
			Id:          uuid.New(),
			AgencyId:    tenant.AgencyId,
			FullName:    "John Smith",
			Interests:   []string{"beaches", "food"},
			BudgetRange: "$1000-2000",
			CreatedAt:   time.Now(),
		}},
	}
	model := &scriptedLLM{generates: []string{
		`{"intent":"itinerary","client_name":"John Smith","destination":"Bali","duration":"5 days","travel_dates":null}`,
		`{"title":"Bali Getaway","summary":"Five days of beaches and food.","destination":"Bali","duration":5,"daily":[{"day":1},{"day":2},{"day":3},{"day":4},{"day":5}]}`,
	}}
	p := newTestPipeline(store, model, nil)

	res, err := p.HandleTurn(context.Background(), tenant, Turn{Message: "Create a 5-day Bali itinerary for John Smith"})
	if err != nil {
		t.Fatalf("HandleTurn() error = %v", err)
	}
	if !res.Success || res.Action != ActionItineraryCreated {
		t.Fatalf("result = %+v, want successful %s", res, ActionItineraryCreated)
	}
	if res.ItineraryId == nil {
		t.Fatal("ItineraryId is nil")
	}
	if res.Plan == nil || res.Plan.Duration != 5 {
		t.Fatalf("Plan = %+v, want 5-day plan", res.Plan)
	}

	if len(store.createdItineraries) != 1 {
		t.Fatalf("created itineraries = %d, want 1", len(store.createdItineraries))
	}
	it := store.createdItineraries[0]
	if it.AgencyId != tenant.AgencyId {
		t.Errorf("AgencyId = %s, want tenant %s", it.AgencyId, tenant.AgencyId)
	}
	if it.Status != entity.ItineraryStatusDraft {
		t.Errorf("Status = %s, want draft", it.Status)
	}
	if it.Budget != "$1000-2000" {
		t.Errorf("Budget = %q, want client's budget range", it.Budget)
	}
	if it.CreatedBy != tenant.UserId {
		t.Errorf("CreatedBy = %s, want tenant user %s", it.CreatedBy, tenant.UserId)
	}
	if store.begun != 1 || store.committed != 1 {
		t.Errorf("tx begun/committed = %d/%d, want 1/1", store.begun, store.committed)
	}
}

func TestHandleTurnItineraryUnknownClient(t *testing.T) {
	store := &fakeStore{}
	model := &scriptedLLM{generates: []string{
		`{"intent":"itinerary","client_name":"Nobody","destination":"Bali","duration":"5 days","travel_dates":null}`,
	}}
	p := newTestPipeline(store, model, nil)

	res, err := p.HandleTurn(context.Background(), testTenant(), Turn{Message: "Plan a trip for Nobody"})
	if err != nil {
		t.Fatalf("HandleTurn() error = %v", err)
	}
	if !res.Success || res.Action != "" {
		t.Fatalf("result = %+v, want actionless clarification", res)
	}
	if !strings.Contains(res.Response, `"Nobody"`) {
		t.Errorf("Response = %q, want the searched name in it", res.Response)
	}
	if len(store.createdItineraries) != 0 || store.begun != 0 {
		t.Error("clarification must not write anything")
	}
}

func TestHandleTurnItineraryWithoutClientNameIsChat(t *testing.T) {
	sink := &recordingSink{}
	model := &scriptedLLM{
		generates: []string{`{"intent":"itinerary","client_name":null,"destination":"Bali","duration":"5 days","travel_dates":null}`},
		chatOut:   "Happy to help. Which client is travelling?",
	}
	store := &fakeStore{}
	p := newTestPipeline(store, model, sink)

	res, err := p.HandleTurn(context.Background(), testTenant(), Turn{Message: "Plan a Bali trip"})
	if err != nil {
		t.Fatalf("HandleTurn() error = %v", err)
	}
	if !res.Success || res.Action != "" {
		t.Fatalf("result = %+v, want freeform chat without an action", res)
	}
	if res.Response != model.chatOut {
		t.Errorf("Response = %q, want model reply", res.Response)
	}
	if len(store.createdItineraries) != 0 || store.begun != 0 {
		t.Error("chat fallthrough must not write anything")
	}
	if len(sink.records) != 1 {
		t.Errorf("sink records = %d, want 1 for the chat branch", len(sink.records))
	}
}

func TestHandleTurnItineraryMissingDetails(t *testing.T) {
	tenant := testTenant()
	client := &entity.Client{
		Id:        uuid.New(),
		AgencyId:  tenant.AgencyId,
		FullName:  "Maria Garcia",
		CreatedAt: time.Now(),
	}

	tests := []struct {
		name     string
		classify string
	}{
		{
			"missing destination",
			`{"intent":"itinerary","client_name":"Maria","destination":null,"duration":"5 days","travel_dates":null}`,
		},
		{
			"missing duration",
			`{"intent":"itinerary","client_name":"Maria","destination":"Tokyo","duration":null,"travel_dates":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{clients: []*entity.Client{client}}
			p := newTestPipeline(store, &scriptedLLM{generates: []string{tt.classify}}, nil)

			res, err := p.HandleTurn(context.Background(), tenant, Turn{Message: "Plan a trip for Maria"})
			if err != nil {
				t.Fatalf("HandleTurn() error = %v", err)
			}
			if !res.Success || res.Action != "" {
				t.Fatalf("result = %+v, want actionless clarification", res)
			}
			if len(store.createdItineraries) != 0 {
				t.Error("clarification must not create an itinerary")
			}
		})
	}
}

func TestHandleTurnClientTieBreaksToNewest(t *testing.T) {
	tenant := testTenant()
	older := &entity.Client{
		Id:        uuid.New(),
		AgencyId:  tenant.AgencyId,
		FullName:  "John Smith",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := &entity.Client{
		Id:        uuid.New(),
		AgencyId:  tenant.AgencyId,
		FullName:  "Johnny Smithson",
		CreatedAt: time.Now(),
	}
	store := &fakeStore{clients: []*entity.Client{older, newer}}
	model := &scriptedLLM{generates: []string{
		`{"intent":"itinerary","client_name":"John","destination":"Rome","duration":"2 days","travel_dates":null}`,
		`{"title":"Rome","destination":"Rome","duration":2,"daily":[{"day":1},{"day":2}]}`,
	}}
	p := newTestPipeline(store, model, nil)

	_, err := p.HandleTurn(context.Background(), tenant, Turn{Message: "2 days in Rome for John"})
	if err != nil {
		t.Fatalf("HandleTurn() error = %v", err)
	}
	if len(store.createdItineraries) != 1 {
		t.Fatalf("created itineraries = %d, want 1", len(store.createdItineraries))
	}
	if got := store.createdItineraries[0].ClientId; got != newer.Id {
		t.Errorf("ClientId = %s, want newest match %s", got, newer.Id)
	}
}

func TestHandleTurnClientIsTenantScoped(t *testing.T) {
	tenant := testTenant()
	store := &fakeStore{
		clients: []*entity.Client{{
			Id:        uuid.New(),
			AgencyId:  uuid.New(), // someone else's client
			FullName:  "John Smith",
			CreatedAt: time.Now(),
		}},
	}
	model := &scriptedLLM{generates: []string{
		`{"intent":"itinerary","client_name":"John Smith","destination":"Bali","duration":"5 days","travel_dates":null}`,
	}}
	p := newTestPipeline(store, model, nil)

	res, err := p.HandleTurn(context.Background(), tenant, Turn{Message: "Bali for John Smith"})
	if err != nil {
		t.Fatalf("HandleTurn() error = %v", err)
	}
	if res.Action != "" || res.ItineraryId != nil {
		t.Fatalf("result = %+v, other tenants' clients must not match", res)
	}
	if !strings.Contains(res.Response, `"John Smith"`) {
		t.Errorf("Response = %q, want the searched name in it", res.Response)
	}
}

func TestHandleTurnInvoiceFromLatestItinerary(t *testing.T) {
	tenant := testTenant()
	client := &entity.Client{
		Id:        uuid.New(),
		AgencyId:  tenant.AgencyId,
		FullName:  "Maria Garcia",
		CreatedAt: time.Now(),
	}
	oldTrip := &entity.Itinerary{
		Id:        uuid.New(),
		AgencyId:  tenant.AgencyId,
		ClientId:  client.Id,
		Budget:    "$9000",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newTrip := &entity.Itinerary{
		Id:        uuid.New(),
		AgencyId:  tenant.AgencyId,
		ClientId:  client.Id,
		Budget:    "$1500-2500",
		CreatedAt: time.Now(),
	}
	store := &fakeStore{
		clients:     []*entity.Client{client},
		itineraries: []*entity.Itinerary{oldTrip, newTrip},
	}
	model := &scriptedLLM{generates: []string{
		`{"intent":"invoice","client_name":"Maria","destination":null,"duration":null,"travel_dates":null}`,
	}}
	p := newTestPipeline(store, model, nil)

	res, err := p.HandleTurn(context.Background(), tenant, Turn{Message: "Invoice Maria for her trip"})
	if err != nil {
		t.Fatalf("HandleTurn() error = %v", err)
	}
	if !res.Success || res.Action != ActionInvoiceCreated {
		t.Fatalf("result = %+v, want %s", res, ActionInvoiceCreated)
	}

	if len(store.createdInvoices) != 1 {
		t.Fatalf("created invoices = %d, want 1", len(store.createdInvoices))
	}
	inv := store.createdInvoices[0]
	if inv.Amount != 1500 {
		t.Errorf("Amount = %v, want 1500 from the latest itinerary's budget", inv.Amount)
	}
	if inv.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", inv.Currency)
	}
	if inv.Status != entity.InvoiceStatusDraft {
		t.Errorf("Status = %s, want draft", inv.Status)
	}
	if inv.ItineraryId == nil || *inv.ItineraryId != newTrip.Id {
		t.Errorf("ItineraryId = %v, want latest itinerary %s", inv.ItineraryId, newTrip.Id)
	}
}

func TestHandleTurnInvoiceWithoutItinerary(t *testing.T) {
	tenant := testTenant()
	client := &entity.Client{
		Id:        uuid.New(),
		AgencyId:  tenant.AgencyId,
		FullName:  "Maria Garcia",
		CreatedAt: time.Now(),
	}
	store := &fakeStore{clients: []*entity.Client{client}}
	model := &scriptedLLM{generates: []string{
		`{"intent":"invoice","client_name":"Maria","destination":null,"duration":null,"travel_dates":null}`,
	}}
	p := newTestPipeline(store, model, nil)

	res, err := p.HandleTurn(context.Background(), tenant, Turn{Message: "Invoice Maria"})
	if err != nil {
		t.Fatalf("HandleTurn() error = %v", err)
	}
	if !res.Success || res.Action != "" || res.InvoiceId != nil {
		t.Fatalf("result = %+v, want an actionless clarification", res)
	}
	if !strings.Contains(res.Response, "Maria Garcia") || !strings.Contains(res.Response, "itinerary") {
		t.Errorf("Response = %q, want it to ask for an itinerary first", res.Response)
	}
	if len(store.createdInvoices) != 0 || store.begun != 0 {
		t.Error("no invoice may be persisted when the client has no itineraries")
	}
}

func TestHandleTurnGeneralChat(t *testing.T) {
	tenant := testTenant()
	sink := &recordingSink{}
	model := &scriptedLLM{
		generates: []string{"this is not json"},
		chatOut:   "Peak season in Bali runs from July to August.",
	}
	p := newTestPipeline(&fakeStore{}, model, sink)

	res, err := p.HandleTurn(context.Background(), tenant, Turn{Message: "When is peak season in Bali?"})
	if err != nil {
		t.Fatalf("HandleTurn() error = %v", err)
	}
	if !res.Success || res.Action != "" {
		t.Fatalf("result = %+v, want chat without an action", res)
	}
	if res.Response != model.chatOut {
		t.Errorf("Response = %q, want model reply", res.Response)
	}

	if len(sink.records) != 1 {
		t.Fatalf("sink records = %d, want 1", len(sink.records))
	}
	rec := sink.records[0]
	if rec.AgencyId != tenant.AgencyId || rec.UserId != tenant.UserId {
		t.Errorf("record tenant = %s/%s, want %s/%s", rec.AgencyId, rec.UserId, tenant.AgencyId, tenant.UserId)
	}
	if rec.UserMessage != "When is peak season in Bali?" || rec.AiResponse != model.chatOut {
		t.Errorf("record content = %q/%q", rec.UserMessage, rec.AiResponse)
	}
}

func TestHandleTurnBookingRoutesToChat(t *testing.T) {
	model := &scriptedLLM{
		generates: []string{`{"intent":"booking","client_name":null,"destination":null,"duration":null,"travel_dates":null}`},
		chatOut:   "I can't book flights yet, but I can draft the itinerary.",
	}
	p := newTestPipeline(&fakeStore{}, model, nil)

	res, err := p.HandleTurn(context.Background(), testTenant(), Turn{Message: "Book flights to Bali"})
	if err != nil {
		t.Fatalf("HandleTurn() error = %v", err)
	}
	if res.Action != "" {
		t.Errorf("Action = %q, want none for booking intents", res.Action)
	}
	if res.Response != model.chatOut {
		t.Errorf("Response = %q, want model reply", res.Response)
	}
}

func TestHandleTurnChatBackendDown(t *testing.T) {
	model := &scriptedLLM{
		generates: []string{"not json"},
		chatErr:   errors.New("model offline"),
	}
	p := newTestPipeline(&fakeStore{}, model, &recordingSink{})

	_, err := p.HandleTurn(context.Background(), testTenant(), Turn{Message: "hello"})

	var genErr *assistant.GenerationUnavailableError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %T, want *assistant.GenerationUnavailableError", err)
	}
	if genErr.Step != "chat" {
		t.Errorf("Step = %q, want %q", genErr.Step, "chat")
	}
}

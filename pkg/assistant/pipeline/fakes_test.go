package pipeline

import (
	"context"
	"sort"
	"strings"

	"triponic-be/internal/entity"
	"triponic-be/internal/repository/contract"
	"triponic-be/internal/repository/specification"
	"triponic-be/internal/repository/unitofwork"
	"triponic-be/pkg/llm"

	"github.com/google/uuid"
)

// scriptedLLM replays canned completions in order. Generate consumes the
// queue; Chat always returns chatOut.
type scriptedLLM struct {
	generates []string
	genErr    error
	chatOut   string
	chatErr   error
	calls     int
}

func (s *scriptedLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	if s.genErr != nil {
		return "", s.genErr
	}
	if s.calls >= len(s.generates) {
		return "", nil
	}
	out := s.generates[s.calls]
	s.calls++
	return out, nil
}

func (s *scriptedLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if s.chatErr != nil {
		return "", s.chatErr
	}
	return s.chatOut, nil
}

type recordingSink struct {
	records []*entity.Conversation
}

func (r *recordingSink) Record(ctx context.Context, conv *entity.Conversation) {
	r.records = append(r.records, conv)
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

// fakeStore is an in-memory stand-in for the database. The fake repositories
// interpret the same specification values the real GORM ones translate to SQL.
type fakeStore struct {
	clients     []*entity.Client
	itineraries []*entity.Itinerary

	createdItineraries []*entity.Itinerary
	createdInvoices    []*entity.Invoice

	begun      int
	committed  int
	rolledBack int
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.store.begun++
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.store.committed++
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	u.store.rolledBack++
	return nil
}

func (u *fakeUnitOfWork) AgencyRepository() contract.AgencyRepository { return nil }
func (u *fakeUnitOfWork) UserRepository() contract.UserRepository     { return nil }
func (u *fakeUnitOfWork) LeadRepository() contract.LeadRepository     { return nil }
func (u *fakeUnitOfWork) ConversationRepository() contract.ConversationRepository {
	return nil
}

func (u *fakeUnitOfWork) ClientRepository() contract.ClientRepository {
	return &fakeClientRepository{store: u.store}
}

func (u *fakeUnitOfWork) ItineraryRepository() contract.ItineraryRepository {
	return &fakeItineraryRepository{store: u.store}
}

func (u *fakeUnitOfWork) InvoiceRepository() contract.InvoiceRepository {
	return &fakeInvoiceRepository{store: u.store}
}

// querySpecs is the subset of specification values the pipeline uses.
type querySpecs struct {
	agencyID     *uuid.UUID
	clientID     *uuid.UUID
	nameContains string
	orderDesc    bool
	limit        int
}

func parseSpecs(specs []specification.Specification) querySpecs {
	q := querySpecs{limit: -1}
	for _, s := range specs {
		switch v := s.(type) {
		case specification.OwnedByAgency:
			id := v.AgencyID
			q.agencyID = &id
		case specification.ByClientID:
			id := v.ClientID
			q.clientID = &id
		case specification.NameContains:
			q.nameContains = v.Name
		case specification.OrderBy:
			q.orderDesc = v.Desc
		case specification.Limit:
			q.limit = v.N
		}
	}
	return q
}

type fakeClientRepository struct {
	store *fakeStore
}

func (r *fakeClientRepository) Create(ctx context.Context, client *entity.Client) error {
	client.Id = uuid.New()
	r.store.clients = append(r.store.clients, client)
	return nil
}

func (r *fakeClientRepository) Update(ctx context.Context, client *entity.Client) error { return nil }
func (r *fakeClientRepository) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

func (r *fakeClientRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Client, error) {
	matches, _ := r.FindAll(ctx, specs...)
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (r *fakeClientRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Client, error) {
	q := parseSpecs(specs)

	var matches []*entity.Client
	for _, c := range r.store.clients {
		if q.agencyID != nil && c.AgencyId != *q.agencyID {
			continue
		}
		if q.nameContains != "" &&
			!strings.Contains(strings.ToLower(c.FullName), strings.ToLower(q.nameContains)) {
			continue
		}
		matches = append(matches, c)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if q.orderDesc {
			return matches[i].CreatedAt.After(matches[j].CreatedAt)
		}
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})

	if q.limit >= 0 && len(matches) > q.limit {
		matches = matches[:q.limit]
	}
	return matches, nil
}

func (r *fakeClientRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matches, _ := r.FindAll(ctx, specs...)
	return int64(len(matches)), nil
}

type fakeItineraryRepository struct {
	store *fakeStore
}

func (r *fakeItineraryRepository) Create(ctx context.Context, it *entity.Itinerary) error {
	it.Id = uuid.New()
	r.store.itineraries = append(r.store.itineraries, it)
	r.store.createdItineraries = append(r.store.createdItineraries, it)
	return nil
}

func (r *fakeItineraryRepository) Update(ctx context.Context, it *entity.Itinerary) error { return nil }
func (r *fakeItineraryRepository) Delete(ctx context.Context, id uuid.UUID) error         { return nil }

func (r *fakeItineraryRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Itinerary, error) {
	matches, _ := r.FindAll(ctx, specs...)
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (r *fakeItineraryRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Itinerary, error) {
	q := parseSpecs(specs)

	var matches []*entity.Itinerary
	for _, it := range r.store.itineraries {
		if q.agencyID != nil && it.AgencyId != *q.agencyID {
			continue
		}
		if q.clientID != nil && it.ClientId != *q.clientID {
			continue
		}
		matches = append(matches, it)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if q.orderDesc {
			return matches[i].CreatedAt.After(matches[j].CreatedAt)
		}
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})

	if q.limit >= 0 && len(matches) > q.limit {
		matches = matches[:q.limit]
	}
	return matches, nil
}

func (r *fakeItineraryRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matches, _ := r.FindAll(ctx, specs...)
	return int64(len(matches)), nil
}

type fakeInvoiceRepository struct {
	store *fakeStore
}

func (r *fakeInvoiceRepository) Create(ctx context.Context, inv *entity.Invoice) error {
	inv.Id = uuid.New()
	r.store.createdInvoices = append(r.store.createdInvoices, inv)
	return nil
}

func (r *fakeInvoiceRepository) Update(ctx context.Context, inv *entity.Invoice) error { return nil }
func (r *fakeInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error        { return nil }

func (r *fakeInvoiceRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Invoice, error) {
	return nil, nil
}

func (r *fakeInvoiceRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Invoice, error) {
	return nil, nil
}

func (r *fakeInvoiceRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

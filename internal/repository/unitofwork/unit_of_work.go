package unitofwork

import (
	"context"

	"triponic-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AgencyRepository() contract.AgencyRepository
	UserRepository() contract.UserRepository
	ClientRepository() contract.ClientRepository
	LeadRepository() contract.LeadRepository
	ItineraryRepository() contract.ItineraryRepository
	InvoiceRepository() contract.InvoiceRepository
	ConversationRepository() contract.ConversationRepository
}

package unitofwork

import (
	"context"
	"fmt"

	"triponic-be/internal/repository/contract"
	"triponic-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil when not in a tx
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) AgencyRepository() contract.AgencyRepository {
	return implementation.NewAgencyRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ClientRepository() contract.ClientRepository {
	return implementation.NewClientRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LeadRepository() contract.LeadRepository {
	return implementation.NewLeadRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ItineraryRepository() contract.ItineraryRepository {
	return implementation.NewItineraryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) InvoiceRepository() contract.InvoiceRepository {
	return implementation.NewInvoiceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ConversationRepository() contract.ConversationRepository {
	return implementation.NewConversationRepository(u.getDB())
}

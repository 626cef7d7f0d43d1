package implementation

import (
	"context"
	"errors"

	"triponic-be/internal/entity"
	"triponic-be/internal/mapper"
	"triponic-be/internal/model"
	"triponic-be/internal/repository/contract"
	"triponic-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InvoiceMapper
}

func NewInvoiceRepository(db *gorm.DB) contract.InvoiceRepository {
	return &InvoiceRepositoryImpl{
		db:     db,
		mapper: mapper.NewInvoiceMapper(),
	}
}

func (r *InvoiceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InvoiceRepositoryImpl) Create(ctx context.Context, invoice *entity.Invoice) error {
	m := r.mapper.ToModel(invoice)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*invoice = *r.mapper.ToEntity(m)
	return nil
}

func (r *InvoiceRepositoryImpl) Update(ctx context.Context, invoice *entity.Invoice) error {
	m := r.mapper.ToModel(invoice)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*invoice = *r.mapper.ToEntity(m)
	return nil
}

func (r *InvoiceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Invoice{}, id).Error
}

func (r *InvoiceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Invoice, error) {
	var m model.Invoice
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InvoiceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Invoice, error) {
	var models []*model.Invoice
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *InvoiceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Invoice{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

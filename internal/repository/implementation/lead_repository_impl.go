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

type LeadRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LeadMapper
}

func NewLeadRepository(db *gorm.DB) contract.LeadRepository {
	return &LeadRepositoryImpl{
		db:     db,
		mapper: mapper.NewLeadMapper(),
	}
}

func (r *LeadRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LeadRepositoryImpl) Create(ctx context.Context, lead *entity.Lead) error {
	m := r.mapper.ToModel(lead)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*lead = *r.mapper.ToEntity(m)
	return nil
}

func (r *LeadRepositoryImpl) Update(ctx context.Context, lead *entity.Lead) error {
	m := r.mapper.ToModel(lead)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*lead = *r.mapper.ToEntity(m)
	return nil
}

func (r *LeadRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Lead{}, id).Error
}

func (r *LeadRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lead, error) {
	var m model.Lead
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LeadRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lead, error) {
	var models []*model.Lead
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *LeadRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Lead{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

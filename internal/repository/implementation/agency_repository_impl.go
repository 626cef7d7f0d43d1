package implementation

import (
	"context"
	"errors"

	"triponic-be/internal/entity"
	"triponic-be/internal/mapper"
	"triponic-be/internal/model"
	"triponic-be/internal/repository/contract"
	"triponic-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AgencyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AgencyMapper
}

func NewAgencyRepository(db *gorm.DB) contract.AgencyRepository {
	return &AgencyRepositoryImpl{
		db:     db,
		mapper: mapper.NewAgencyMapper(),
	}
}

func (r *AgencyRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AgencyRepositoryImpl) Create(ctx context.Context, agency *entity.Agency) error {
	m := r.mapper.ToModel(agency)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*agency = *r.mapper.ToEntity(m)
	return nil
}

func (r *AgencyRepositoryImpl) Update(ctx context.Context, agency *entity.Agency) error {
	m := r.mapper.ToModel(agency)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*agency = *r.mapper.ToEntity(m)
	return nil
}

func (r *AgencyRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Agency, error) {
	var m model.Agency
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

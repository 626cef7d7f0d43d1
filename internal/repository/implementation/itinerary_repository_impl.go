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

type ItineraryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ItineraryMapper
}

func NewItineraryRepository(db *gorm.DB) contract.ItineraryRepository {
	return &ItineraryRepositoryImpl{
		db:     db,
		mapper: mapper.NewItineraryMapper(),
	}
}

func (r *ItineraryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ItineraryRepositoryImpl) Create(ctx context.Context, itinerary *entity.Itinerary) error {
	m := r.mapper.ToModel(itinerary)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*itinerary = *r.mapper.ToEntity(m)
	return nil
}

func (r *ItineraryRepositoryImpl) Update(ctx context.Context, itinerary *entity.Itinerary) error {
	m := r.mapper.ToModel(itinerary)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*itinerary = *r.mapper.ToEntity(m)
	return nil
}

func (r *ItineraryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Itinerary{}, id).Error
}

func (r *ItineraryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Itinerary, error) {
	var m model.Itinerary
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ItineraryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Itinerary, error) {
	var models []*model.Itinerary
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ItineraryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Itinerary{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

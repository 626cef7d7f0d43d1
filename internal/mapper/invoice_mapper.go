package mapper

import (
	"time"

	"triponic-be/internal/entity"
	"triponic-be/internal/model"
)

type InvoiceMapper struct{}

func NewInvoiceMapper() *InvoiceMapper {
	return &InvoiceMapper{}
}

func (m *InvoiceMapper) ToEntity(i *model.Invoice) *entity.Invoice {
	if i == nil {
		return nil
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	return &entity.Invoice{
		Id:          i.Id,
		AgencyId:    i.AgencyId,
		ClientId:    i.ClientId,
		ItineraryId: i.ItineraryId,
		Amount:      i.Amount,
		Currency:    i.Currency,
		Status:      entity.InvoiceStatus(i.Status),
		PaymentLink: i.PaymentLink,
		CreatedBy:   i.CreatedBy,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *InvoiceMapper) ToModel(i *entity.Invoice) *model.Invoice {
	if i == nil {
		return nil
	}

	var updatedAt time.Time
	if i.UpdatedAt != nil {
		updatedAt = *i.UpdatedAt
	}

	return &model.Invoice{
		Id:          i.Id,
		AgencyId:    i.AgencyId,
		ClientId:    i.ClientId,
		ItineraryId: i.ItineraryId,
		Amount:      i.Amount,
		Currency:    i.Currency,
		Status:      string(i.Status),
		PaymentLink: i.PaymentLink,
		CreatedBy:   i.CreatedBy,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *InvoiceMapper) ToEntities(invoices []*model.Invoice) []*entity.Invoice {
	entities := make([]*entity.Invoice, len(invoices))
	for i, inv := range invoices {
		entities[i] = m.ToEntity(inv)
	}
	return entities
}

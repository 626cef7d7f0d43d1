package contract

import (
	"context"

	"triponic-be/internal/entity"
	"triponic-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Invoice, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Invoice, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

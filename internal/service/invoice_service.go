package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"triponic-be/internal/dto"
	"triponic-be/internal/entity"
	"triponic-be/internal/pkg/logger"
	"triponic-be/internal/pkg/mailer"
	"triponic-be/internal/repository/specification"
	"triponic-be/internal/repository/unitofwork"
	"triponic-be/pkg/events"
	pktNats "triponic-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IInvoiceService interface {
	GetAll(ctx context.Context, agencyId uuid.UUID) ([]*dto.InvoiceResponse, error)
	Show(ctx context.Context, agencyId, id uuid.UUID) (*dto.InvoiceResponse, error)
	Create(ctx context.Context, agencyId, userId uuid.UUID, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	UpdateStatus(ctx context.Context, agencyId uuid.UUID, req *dto.UpdateInvoiceStatusRequest) (*dto.InvoiceResponse, error)
	Delete(ctx context.Context, agencyId, id uuid.UUID) error
	CreatePaymentLink(ctx context.Context, agencyId, id uuid.UUID) (*dto.PaymentLinkResponse, error)
}

type invoiceService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewInvoiceService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IInvoiceService {
	return &invoiceService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *invoiceService) GetAll(ctx context.Context, agencyId uuid.UUID) ([]*dto.InvoiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	invoices, err := uow.InvoiceRepository().FindAll(ctx,
		specification.OwnedByAgency{AgencyID: agencyId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		result = append(result, toInvoiceResponse(inv))
	}
	return result, nil
}

func (s *invoiceService) Show(ctx context.Context, agencyId, id uuid.UUID) (*dto.InvoiceResponse, error) {
	inv, err := s.findInvoice(ctx, agencyId, id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

func (s *invoiceService) Create(ctx context.Context, agencyId, userId uuid.UUID, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	client, err := uow.ClientRepository().FindOne(ctx,
		specification.ByID{ID: req.ClientId},
		specification.OwnedByAgency{AgencyID: agencyId},
	)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.New("client not found")
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	inv := &entity.Invoice{
		AgencyId:    agencyId,
		ClientId:    client.Id,
		ItineraryId: req.ItineraryId,
		Amount:      req.Amount,
		Currency:    currency,
		Status:      entity.InvoiceStatusDraft,
		CreatedBy:   userId,
	}

	if err := uow.InvoiceRepository().Create(ctx, inv); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewInvoiceCreated(agencyId, inv.Id, inv.Amount, inv.Currency)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("invoice", "failed to publish invoice created event", map[string]interface{}{"error": err.Error()})
		}
	}

	return toInvoiceResponse(inv), nil
}

func (s *invoiceService) UpdateStatus(ctx context.Context, agencyId uuid.UUID, req *dto.UpdateInvoiceStatusRequest) (*dto.InvoiceResponse, error) {
	switch entity.InvoiceStatus(req.Status) {
	case entity.InvoiceStatusDraft, entity.InvoiceStatusSent, entity.InvoiceStatusPaid, entity.InvoiceStatusVoid:
	default:
		return nil, errors.New("invalid invoice status")
	}

	inv, err := s.findInvoice(ctx, agencyId, req.Id)
	if err != nil {
		return nil, err
	}

	prev := inv.Status
	inv.Status = entity.InvoiceStatus(req.Status)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.InvoiceRepository().Update(ctx, inv); err != nil {
		return nil, err
	}

	// Moving to sent triggers the invoice email once.
	if prev != entity.InvoiceStatusSent && inv.Status == entity.InvoiceStatusSent {
		client, cerr := uow.ClientRepository().FindOne(ctx,
			specification.ByID{ID: inv.ClientId},
			specification.OwnedByAgency{AgencyID: agencyId},
		)
		if cerr == nil && client != nil && client.Email != "" {
			invoiceNumber := shortInvoiceNumber(inv.Id)
			go func(email, name string) {
				if mailErr := s.emailService.SendInvoice(email, name, invoiceNumber, inv.Amount, inv.Currency, inv.PaymentLink); mailErr != nil {
					s.log.Warn("invoice", "failed to send invoice email", map[string]interface{}{"error": mailErr.Error()})
				}
			}(client.Email, client.FullName)
		}
	}

	return toInvoiceResponse(inv), nil
}

func (s *invoiceService) Delete(ctx context.Context, agencyId, id uuid.UUID) error {
	if _, err := s.findInvoice(ctx, agencyId, id); err != nil {
		return err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.InvoiceRepository().Delete(ctx, id)
}

// CreatePaymentLink generates a Midtrans Snap checkout URL for the invoice
// and stores it. Idempotent: an existing link is returned as-is.
func (s *invoiceService) CreatePaymentLink(ctx context.Context, agencyId, id uuid.UUID) (*dto.PaymentLinkResponse, error) {
	inv, err := s.findInvoice(ctx, agencyId, id)
	if err != nil {
		return nil, err
	}
	if inv.Status == entity.InvoiceStatusPaid || inv.Status == entity.InvoiceStatusVoid {
		return nil, errors.New("invoice is not payable")
	}
	if inv.PaymentLink != "" {
		return &dto.PaymentLinkResponse{InvoiceId: inv.Id, PaymentLink: inv.PaymentLink}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	client, err := uow.ClientRepository().FindOne(ctx,
		specification.ByID{ID: inv.ClientId},
		specification.OwnedByAgency{AgencyID: agencyId},
	)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.New("client not found")
	}

	var sClient snap.Client
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_IS_PRODUCTION") == "true" {
		env = midtrans.Production
	}
	sClient.New(serverKey, env)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  inv.Id.String(),
			GrossAmt: int64(inv.Amount),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: client.FullName,
			Email: client.Email,
			Phone: client.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    inv.Id.String(),
				Price: int64(inv.Amount),
				Qty:   1,
				Name:  fmt.Sprintf("Travel invoice %s", shortInvoiceNumber(inv.Id)),
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	inv.PaymentLink = snapResp.RedirectURL
	if err := uow.InvoiceRepository().Update(ctx, inv); err != nil {
		return nil, err
	}

	return &dto.PaymentLinkResponse{InvoiceId: inv.Id, PaymentLink: inv.PaymentLink}, nil
}

func (s *invoiceService) findInvoice(ctx context.Context, agencyId, id uuid.UUID) (*entity.Invoice, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	inv, err := uow.InvoiceRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedByAgency{AgencyID: agencyId},
	)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, errors.New("invoice not found")
	}
	return inv, nil
}

func shortInvoiceNumber(id uuid.UUID) string {
	return "INV-" + id.String()[:8]
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		Id:          inv.Id,
		ClientId:    inv.ClientId,
		ItineraryId: inv.ItineraryId,
		Amount:      inv.Amount,
		Currency:    inv.Currency,
		Status:      string(inv.Status),
		PaymentLink: inv.PaymentLink,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

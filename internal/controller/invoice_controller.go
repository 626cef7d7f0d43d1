package controller

import (
	"triponic-be/internal/dto"
	"triponic-be/internal/pkg/serverutils"
	"triponic-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IInvoiceController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	PaymentLink(ctx *fiber.Ctx) error
}

type invoiceController struct {
	invoiceService service.IInvoiceService
}

func NewInvoiceController(invoiceService service.IInvoiceService) IInvoiceController {
	return &invoiceController{
		invoiceService: invoiceService,
	}
}

func (c *invoiceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/invoice/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id/status", c.UpdateStatus)
	h.Post(":id/payment-link", c.PaymentLink)
	h.Delete(":id", c.Delete)
}

func (c *invoiceController) GetAll(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))

	res, err := c.invoiceService.GetAll(ctx.Context(), agencyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Invoices", res))
}

func (c *invoiceController) Show(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.invoiceService.Show(ctx.Context(), agencyId, id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Invoice", res))
}

func (c *invoiceController) Create(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	var req dto.CreateInvoiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.invoiceService.Create(ctx.Context(), agencyId, userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Invoice created", res))
}

func (c *invoiceController) UpdateStatus(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateInvoiceStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.invoiceService.UpdateStatus(ctx.Context(), agencyId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Invoice status updated", res))
}

func (c *invoiceController) Delete(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.invoiceService.Delete(ctx.Context(), agencyId, id); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Invoice deleted", nil))
}

func (c *invoiceController) PaymentLink(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.invoiceService.CreatePaymentLink(ctx.Context(), agencyId, id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Payment link", res))
}

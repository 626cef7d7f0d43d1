package controller

import (
	"triponic-be/internal/dto"
	"triponic-be/internal/pkg/serverutils"
	"triponic-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IClientController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type clientController struct {
	clientService service.IClientService
}

func NewClientController(clientService service.IClientService) IClientController {
	return &clientController{
		clientService: clientService,
	}
}

func (c *clientController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/client/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("stats", c.Stats)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *clientController) GetAll(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))

	res, err := c.clientService.GetAll(ctx.Context(), agencyId, ctx.Query("q"), ctx.QueryInt("limit"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Clients", res))
}

func (c *clientController) Show(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.clientService.Show(ctx.Context(), agencyId, id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Client", res))
}

func (c *clientController) Create(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	var req dto.CreateClientRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.clientService.Create(ctx.Context(), agencyId, userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Client created", res))
}

func (c *clientController) Update(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateClientRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.clientService.Update(ctx.Context(), agencyId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Client updated", res))
}

func (c *clientController) Delete(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.clientService.Delete(ctx.Context(), agencyId, id); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Client deleted", nil))
}

func (c *clientController) Stats(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))

	res, err := c.clientService.Stats(ctx.Context(), agencyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Client stats", res))
}

package controller

import (
	"triponic-be/internal/dto"
	"triponic-be/internal/pkg/serverutils"
	"triponic-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILeadController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Qualify(ctx *fiber.Ctx) error
	FollowUp(ctx *fiber.Ctx) error
	Score(ctx *fiber.Ctx) error
	Convert(ctx *fiber.Ctx) error
}

type leadController struct {
	leadService service.ILeadService
}

func NewLeadController(leadService service.ILeadService) ILeadController {
	return &leadController{
		leadService: leadService,
	}
}

func (c *leadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/lead/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("stats", c.Stats)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/qualify", c.Qualify)
	h.Post(":id/follow-up", c.FollowUp)
	h.Get(":id/score", c.Score)
	h.Post(":id/convert", c.Convert)
}

func (c *leadController) GetAll(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))

	res, err := c.leadService.GetAll(ctx.Context(), agencyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Leads", res))
}

func (c *leadController) Show(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.leadService.Show(ctx.Context(), agencyId, id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Lead", res))
}

func (c *leadController) Create(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	var req dto.CreateLeadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.leadService.Create(ctx.Context(), agencyId, userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Lead created", res))
}

func (c *leadController) Update(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateLeadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.leadService.Update(ctx.Context(), agencyId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Lead updated", res))
}

func (c *leadController) Delete(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.leadService.Delete(ctx.Context(), agencyId, id); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Lead deleted", nil))
}

func (c *leadController) Stats(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))

	res, err := c.leadService.Stats(ctx.Context(), agencyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Lead stats", res))
}

func (c *leadController) Qualify(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.leadService.Qualify(ctx.Context(), agencyId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Lead qualified", res))
}

func (c *leadController) FollowUp(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.leadService.FollowUp(ctx.Context(), agencyId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Follow-up suggestions", res))
}

func (c *leadController) Score(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.leadService.Score(ctx.Context(), agencyId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Lead score", res))
}

func (c *leadController) Convert(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.leadService.Convert(ctx.Context(), agencyId, userId, id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Lead converted", res))
}

package controller

import (
	"triponic-be/internal/dto"
	"triponic-be/internal/pkg/serverutils"
	"triponic-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAgencyController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Team(ctx *fiber.Ctx) error
	InviteTeamMember(ctx *fiber.Ctx) error
}

type agencyController struct {
	agencyService service.IAgencyService
}

func NewAgencyController(agencyService service.IAgencyService) IAgencyController {
	return &agencyController{
		agencyService: agencyService,
	}
}

func (c *agencyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agency/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Show)
	h.Put("", c.Update)
	h.Get("stats", c.Stats)
	h.Get("team", c.Team)
	h.Post("team", c.InviteTeamMember)
}

func (c *agencyController) Show(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))

	res, err := c.agencyService.Show(ctx.Context(), agencyId)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Agency", res))
}

func (c *agencyController) Update(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))

	var req dto.UpdateAgencyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agencyService.Update(ctx.Context(), agencyId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Agency updated", res))
}

func (c *agencyController) Stats(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))

	res, err := c.agencyService.Stats(ctx.Context(), agencyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Agency stats", res))
}

func (c *agencyController) Team(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))

	res, err := c.agencyService.Team(ctx.Context(), agencyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Team members", res))
}

func (c *agencyController) InviteTeamMember(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	role, _ := ctx.Locals("role").(string)
	if role != "admin" {
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "admin role required"))
	}

	var req dto.InviteTeamMemberRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.agencyService.InviteTeamMember(ctx.Context(), agencyId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Team member invited", res))
}

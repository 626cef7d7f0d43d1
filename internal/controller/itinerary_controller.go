package controller

import (
	"triponic-be/internal/dto"
	"triponic-be/internal/pkg/serverutils"
	"triponic-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IItineraryController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type itineraryController struct {
	itineraryService service.IItineraryService
}

func NewItineraryController(itineraryService service.IItineraryService) IItineraryController {
	return &itineraryController{
		itineraryService: itineraryService,
	}
}

func (c *itineraryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/itinerary/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("generate", c.Generate)
	h.Get(":id", c.Show)
	h.Put(":id/status", c.UpdateStatus)
	h.Delete(":id", c.Delete)
}

func (c *itineraryController) GetAll(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))

	res, err := c.itineraryService.GetAll(ctx.Context(), agencyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Itineraries", res))
}

func (c *itineraryController) Show(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.itineraryService.Show(ctx.Context(), agencyId, id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Itinerary", res))
}

func (c *itineraryController) Generate(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	var req dto.GenerateItineraryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.itineraryService.Generate(ctx.Context(), agencyId, userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Itinerary generated", res))
}

func (c *itineraryController) UpdateStatus(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateItineraryStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.itineraryService.UpdateStatus(ctx.Context(), agencyId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Itinerary status updated", res))
}

func (c *itineraryController) Delete(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.itineraryService.Delete(ctx.Context(), agencyId, id); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Itinerary deleted", nil))
}

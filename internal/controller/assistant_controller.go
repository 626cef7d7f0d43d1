package controller

import (
	"triponic-be/internal/dto"
	"triponic-be/internal/pkg/serverutils"
	"triponic-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Conversations(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("chat", c.Chat)
	h.Get("conversations", c.Conversations)
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.Chat(ctx.Context(), agencyId, userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *assistantController) Conversations(ctx *fiber.Ctx) error {
	agencyId, _ := uuid.Parse(ctx.Locals("agency_id").(string))
	limit := ctx.QueryInt("limit", 50)

	res, err := c.assistantService.Conversations(ctx.Context(), agencyId, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Conversations", res))
}

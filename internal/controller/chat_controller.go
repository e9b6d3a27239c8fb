package controller

import (
	"strings"

	"career-companion-be/internal/constant"
	"career-companion-be/internal/dto"
	"career-companion-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type chatController struct {
	service  service.IAdvisorService
	validate *validator.Validate
}

func NewChatController(service service.IAdvisorService) IChatController {
	return &chatController{
		service:  service,
		validate: validator.New(),
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
	r.Post("/chat", c.Chat)
}

func (c *chatController) Health(ctx *fiber.Ctx) error {
	return ctx.SendString("ok")
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ChatResponse{
			Response: constant.MsgBadPayload,
		})
	}
	if err := c.validate.Struct(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ChatResponse{
			Response: constant.MsgEmptyMessage,
		})
	}

	res := c.service.Chat(ctx.Context(), req.UserID, req.Message)
	return ctx.JSON(res)
}

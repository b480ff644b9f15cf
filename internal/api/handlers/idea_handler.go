package handlers

import (
	"log/slog"

	"github.com/flashfusion/studio-api/internal/service"
	"github.com/flashfusion/studio-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type IdeaHandler struct {
	s service.IdeaService
}

func NewIdeaHandler(s service.IdeaService) *IdeaHandler {
	return &IdeaHandler{s: s}
}

func (h *IdeaHandler) Suggestions(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"suggestions": h.s.Suggestions(c.Context()),
	})
}

func (h *IdeaHandler) Summarize(c *fiber.Ctx) error {
	var req transfer.SummarizeRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	summary, err := h.s.Summarize(c.Context(), req.Idea)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"summary": summary,
	})
}

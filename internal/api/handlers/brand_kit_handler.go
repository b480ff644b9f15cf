package handlers

import (
	"log/slog"

	"github.com/flashfusion/studio-api/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type BrandKitHandler struct {
	r repository.BrandKitRepository
}

func NewBrandKitHandler(r repository.BrandKitRepository) *BrandKitHandler {
	return &BrandKitHandler{r: r}
}

func (h *BrandKitHandler) ListBrandKits(c *fiber.Ctx) error {
	kits, err := h.r.List(c.Context())
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list brand kits",
		})
	}

	return c.Status(fiber.StatusOK).JSON(kits)
}

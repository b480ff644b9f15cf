package handlers

import (
	"encoding/json"
	"log/slog"
	"strconv"

	config "github.com/flashfusion/studio-api/configs"
	"github.com/flashfusion/studio-api/internal/models"
	"github.com/flashfusion/studio-api/internal/service"
	"github.com/flashfusion/studio-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type CampaignHandler struct {
	cfg config.Config
	s   service.JobService
}

func NewCampaignHandler(cfg config.Config, s service.JobService) *CampaignHandler {
	return &CampaignHandler{cfg: cfg, s: s}
}

// CreateCampaign accepts a multipart submission and returns a job ID
// immediately. Only transport-level problems are rejected here; semantic
// preconditions surface on the job itself.
func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	withImage, _ := strconv.ParseBool(c.FormValue("with_image"))
	cc := transfer.CampaignCreation{
		Idea:        c.FormValue("idea"),
		Tone:        c.FormValue("tone"),
		AspectRatio: c.FormValue("aspect_ratio"),
		BrandKitID:  c.FormValue("brand_kit_id", "none"),
		Mode:        c.FormValue("mode", string(models.ModeImage)),
		Style:       c.FormValue("style"),
		WithImage:   withImage,
		Platforms:   c.FormValue("platforms"),
	}

	req, err := h.buildRequest(c, &cc)
	if err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	jobID, err := h.s.Submit(c.Context(), req)
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to submit campaign",
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"job_id": jobID,
	})
}

func (h *CampaignHandler) buildRequest(c *fiber.Ctx, cc *transfer.CampaignCreation) (*models.CampaignRequest, error) {
	tone, ok := models.ParseTone(cc.Tone)
	if !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid tone")
	}

	ratio, ok := models.ParseAspectRatio(cc.AspectRatio)
	if !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid aspect ratio")
	}

	mode, ok := models.ParseGenerationMode(cc.Mode)
	if !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid generation mode")
	}

	platforms := service.DefaultPlatforms()
	if cc.Platforms != "" {
		platforms = nil
		if err := json.Unmarshal([]byte(cc.Platforms), &platforms); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid platforms format")
		}
	}

	var logo *models.LogoUpload
	if file, err := c.FormFile("logo"); err == nil && file != nil {
		logo, err = ReadLogo(file, h.cfg.MaxLogoSize)
		if err != nil {
			return nil, err
		}
	}

	media := models.MediaPlan{Mode: mode}
	switch mode {
	case models.ModeImage:
		media.Image = &models.ImagePlan{Style: cc.Style, Logo: logo}
	case models.ModeVideo:
		media.Video = &models.VideoPlan{WithImage: cc.WithImage}
		if cc.WithImage {
			media.Image = &models.ImagePlan{Style: cc.Style, Logo: logo}
		}
	}

	return &models.CampaignRequest{
		Idea:        cc.Idea,
		Tone:        tone,
		AspectRatio: ratio,
		BrandKitID:  cc.BrandKitID,
		Media:       media,
		Platforms:   platforms,
	}, nil
}

// JobStatus is the polling endpoint: a pure lookup, called on an interval
// by the client until the job is terminal.
func (h *CampaignHandler) JobStatus(c *fiber.Ctx) error {
	jobID := c.Query("id")
	if jobID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing job id",
		})
	}

	job, err := h.s.GetStatus(c.Context(), jobID)
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to read job status",
		})
	}
	if job == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(job)
}

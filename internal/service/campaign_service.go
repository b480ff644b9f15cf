package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/flashfusion/studio-api/internal/models"
	"github.com/flashfusion/studio-api/internal/repository"
)

// Precondition failures, reported before any generation call is made.
const (
	msgEmptyIdea   = "Idea cannot be empty."
	msgNoPlatforms = "At least one platform must be enabled."
)

type CampaignService interface {
	Run(ctx context.Context, req *models.CampaignRequest) (*models.CampaignResult, error)
}

type campaignService struct {
	media MediaService
	text  TextService
	kits  repository.BrandKitRepository
}

func NewCampaignService(media MediaService, text TextService, kits repository.BrandKitRepository) CampaignService {
	return &campaignService{
		media: media,
		text:  text,
		kits:  kits,
	}
}

// Run generates one campaign: media call(s) and one text call per enabled
// platform, all concurrent, joined before returning. Media failures are
// fatal; text failures degrade to placeholder posts inside the text service.
func (s *campaignService) Run(ctx context.Context, req *models.CampaignRequest) (*models.CampaignResult, error) {
	if !req.HasIdea() {
		return nil, errors.New(msgEmptyIdea)
	}

	enabled := req.EnabledPlatforms()
	if len(enabled) == 0 {
		return nil, errors.New(msgNoPlatforms)
	}

	kit, err := s.kits.GetByID(ctx, req.BrandKitID)
	if err != nil {
		slog.Info("brand kit lookup failed, continuing without kit", "error", err)
		kit = nil
	}

	var (
		imageRef string
		imageErr error
		videoRef string
		videoErr error
	)
	posts := make([]models.PlatformPost, len(enabled))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, 10)

	runTask := func(task func()) {
		wg.Add(1)
		semaphore <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-semaphore }()
			task()
		}()
	}

	if req.Media.WantsImage() {
		style := ""
		var logo *models.LogoUpload
		if req.Media.Image != nil {
			style = req.Media.Image.Style
			logo = req.Media.Image.Logo
		}
		runTask(func() {
			imageRef, imageErr = s.media.GenerateImage(ctx, req.Idea, req.AspectRatio, style, kit, logo)
		})
	}

	if req.Media.WantsVideo() {
		runTask(func() {
			videoRef, videoErr = s.media.GenerateVideo(ctx, req.Idea, req.AspectRatio, kit)
		})
	}

	for i, platform := range enabled {
		i, platform := i, platform
		runTask(func() {
			posts[i] = s.text.GeneratePost(ctx, platform.Platform, req.Idea, req.Tone, kit, platform.CustomInstructions)
		})
	}

	wg.Wait()

	if imageErr != nil {
		return nil, imageErr
	}
	if videoErr != nil {
		return nil, videoErr
	}

	return &models.CampaignResult{
		ImageURL: imageRef,
		VideoURL: videoRef,
		Posts:    posts,
	}, nil
}

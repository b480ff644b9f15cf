package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/flashfusion/studio-api/internal/gemini"
	"github.com/flashfusion/studio-api/internal/models"
	"github.com/flashfusion/studio-api/internal/repository"
)

const defaultImageStyle = "cinematic"

// User-facing failure messages, one per backend error class. A failed job
// exposes exactly one of these.
const (
	msgAuthFailure    = "The generation service is not configured correctly. Please contact support."
	msgSafetyFailure  = "Your idea was rejected by the content policy. Please rephrase and try again."
	msgEmptyFailure   = "The service produced no output for this idea. Please try a different idea."
	msgGenericFailure = "The generation service is temporarily unavailable. Please try again later."
)

type MediaService interface {
	GenerateImage(ctx context.Context, concept string, ratio models.AspectRatio, style string, kit *models.BrandKit, logo *models.LogoUpload) (string, error)
	GenerateVideo(ctx context.Context, concept string, ratio models.AspectRatio, kit *models.BrandKit) (string, error)
}

type mediaService struct {
	backend      gemini.Backend
	cache        repository.MediaCacheRepository
	assets       AssetStore
	pollInterval time.Duration
}

// NewMediaService builds the media generator. assets may be nil, in which
// case references are inline data URIs.
func NewMediaService(backend gemini.Backend, cache repository.MediaCacheRepository, assets AssetStore, pollInterval time.Duration) MediaService {
	return &mediaService{
		backend:      backend,
		cache:        cache,
		assets:       assets,
		pollInterval: pollInterval,
	}
}

type mediaCacheKey struct {
	Kind        string `json:"kind"`
	Concept     string `json:"concept"`
	AspectRatio string `json:"aspect_ratio"`
	Style       string `json:"style,omitempty"`
	BrandKitID  string `json:"brand_kit_id"`
	HasLogo     bool   `json:"has_logo,omitempty"`
}

func (k mediaCacheKey) String() string {
	b, _ := json.Marshal(k)
	return string(b)
}

func (s *mediaService) GenerateImage(ctx context.Context, concept string, ratio models.AspectRatio, style string, kit *models.BrandKit, logo *models.LogoUpload) (string, error) {
	if style == "" {
		style = defaultImageStyle
	}

	key := mediaCacheKey{
		Kind:        "image",
		Concept:     concept,
		AspectRatio: string(ratio),
		Style:       style,
		BrandKitID:  brandKitID(kit),
		HasLogo:     logo != nil,
	}.String()

	if ref, ok := s.cache.Get(ctx, key); ok {
		slog.Info("image cache hit")
		return ref, nil
	}
	slog.Info("image cache miss, generating new image")

	prompt := fmt.Sprintf("A high-quality, %s image representing the concept: %q. Clean, professional, with negative space. No text on the image.", style, concept)
	prompt += paletteHint(kit)

	blob, err := s.backend.GenerateImage(ctx, prompt, string(ratio))
	if err != nil {
		return "", mediaFailure("image generation", err)
	}

	if logo != nil {
		blob = s.composeLogo(ctx, blob, logo)
	}

	ref := s.mediaRef(ctx, blob)
	s.cache.Set(ctx, key, ref)
	return ref, nil
}

// composeLogo asks the backend to place the logo on the base image. Any
// failure, including a malformed logo payload, falls back to the base image.
func (s *mediaService) composeLogo(ctx context.Context, base gemini.Blob, logo *models.LogoUpload) gemini.Blob {
	if len(logo.Data) == 0 || !strings.HasPrefix(logo.MIME, "image/") {
		slog.Info("skipping logo compositing: malformed logo payload")
		return base
	}

	instruction := "Place the second image as a logo, subtly, in a bottom corner of the first image without obscuring the main subject. Keep the rest of the image unchanged."
	composed, err := s.backend.ComposeImage(ctx, base, gemini.Blob{Data: logo.Data, MIME: logo.MIME}, instruction)
	if err != nil {
		slog.Info("logo compositing failed, using base image", "error", err)
		return base
	}
	return composed
}

func (s *mediaService) GenerateVideo(ctx context.Context, concept string, ratio models.AspectRatio, kit *models.BrandKit) (string, error) {
	key := mediaCacheKey{
		Kind:        "video",
		Concept:     concept,
		AspectRatio: string(ratio),
		BrandKitID:  brandKitID(kit),
	}.String()

	if ref, ok := s.cache.Get(ctx, key); ok {
		slog.Info("video cache hit")
		return ref, nil
	}
	slog.Info("video cache miss, generating new video")

	prompt := fmt.Sprintf("A high-quality, cinematic short marketing video representing the concept: %q. Smooth camera motion, professional lighting. No text on screen.", concept)
	prompt += paletteHint(kit)

	op, err := s.backend.StartVideo(ctx, prompt, string(ratio))
	if err != nil {
		return "", mediaFailure("video generation", err)
	}

	blob, err := s.awaitVideo(ctx, op)
	if err != nil {
		return "", mediaFailure("video generation", err)
	}

	ref := s.mediaRef(ctx, blob)
	s.cache.Set(ctx, key, ref)
	return ref, nil
}

// awaitVideo polls the long-running operation at a fixed interval until it
// reports done. There is no upper bound on the wait.
func (s *mediaService) awaitVideo(ctx context.Context, op string) (gemini.Blob, error) {
	for {
		done, blob, err := s.backend.PollVideo(ctx, op)
		if err != nil {
			return gemini.Blob{}, err
		}
		if done {
			return blob, nil
		}

		select {
		case <-ctx.Done():
			return gemini.Blob{}, ctx.Err()
		case <-time.After(s.pollInterval):
		}
	}
}

// mediaRef turns produced bytes into the reference stored on the result:
// a public asset URL when a store is configured, otherwise a data URI.
func (s *mediaService) mediaRef(ctx context.Context, blob gemini.Blob) string {
	if s.assets != nil {
		url, err := s.assets.SaveAsset(ctx, blob.Data, blob.MIME)
		if err == nil {
			return url
		}
		slog.Info("asset upload failed, falling back to data URI", "error", err)
	}
	return fmt.Sprintf("data:%s;base64,%s", blob.MIME, base64.StdEncoding.EncodeToString(blob.Data))
}

func paletteHint(kit *models.BrandKit) string {
	if kit == nil || len(kit.Colors) == 0 {
		return ""
	}
	return fmt.Sprintf(" The color palette should be inspired by: %s.", strings.Join(kit.Colors, ", "))
}

func brandKitID(kit *models.BrandKit) string {
	if kit == nil {
		return "none"
	}
	return kit.ID
}

// mediaFailure maps a backend failure onto its single user-facing message.
// The cause is logged, not surfaced.
func mediaFailure(op string, err error) error {
	slog.Error(op+" failed", "error", err)

	switch gemini.KindOf(err) {
	case gemini.KindAuth:
		return errors.New(msgAuthFailure)
	case gemini.KindSafety:
		return errors.New(msgSafetyFailure)
	case gemini.KindEmpty:
		return errors.New(msgEmptyFailure)
	default:
		return errors.New(msgGenericFailure)
	}
}

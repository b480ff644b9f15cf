package models

import "strings"

type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneWitty        Tone = "witty"
	ToneUrgent       Tone = "urgent"
)

func ParseTone(s string) (Tone, bool) {
	switch Tone(s) {
	case ToneProfessional, ToneWitty, ToneUrgent:
		return Tone(s), true
	}
	return "", false
}

type AspectRatio string

const (
	AspectSquare    AspectRatio = "1:1"
	AspectPortrait  AspectRatio = "3:4"
	AspectStandard  AspectRatio = "4:3"
	AspectStory     AspectRatio = "9:16"
	AspectLandscape AspectRatio = "16:9"
)

func ParseAspectRatio(s string) (AspectRatio, bool) {
	switch AspectRatio(s) {
	case AspectSquare, AspectPortrait, AspectStandard, AspectStory, AspectLandscape:
		return AspectRatio(s), true
	}
	return "", false
}

type GenerationMode string

const (
	ModeImage GenerationMode = "image"
	ModeVideo GenerationMode = "video"
)

func ParseGenerationMode(s string) (GenerationMode, bool) {
	switch GenerationMode(s) {
	case ModeImage, ModeVideo:
		return GenerationMode(s), true
	}
	return "", false
}

// LogoUpload holds a validated logo payload. Sniffing and size limits are
// enforced at the transport layer before one of these is constructed.
type LogoUpload struct {
	Data []byte `json:"-"`
	MIME string `json:"mime"`
}

type ImagePlan struct {
	Style string      `json:"style"`
	Logo  *LogoUpload `json:"logo,omitempty"`
}

type VideoPlan struct {
	// WithImage requests a static image alongside the video.
	WithImage bool `json:"with_image"`
}

// MediaPlan is tagged by Mode: Image is set whenever an image will be
// generated (always in image mode, and in video mode when WithImage is
// set); Video is set only in video mode.
type MediaPlan struct {
	Mode  GenerationMode `json:"mode"`
	Image *ImagePlan     `json:"image,omitempty"`
	Video *VideoPlan     `json:"video,omitempty"`
}

// WantsImage reports whether the plan calls for image generation.
func (m MediaPlan) WantsImage() bool {
	if m.Mode == ModeImage {
		return true
	}
	return m.Mode == ModeVideo && m.Video != nil && m.Video.WithImage && m.Image != nil
}

// WantsVideo reports whether the plan calls for video generation.
func (m MediaPlan) WantsVideo() bool {
	return m.Mode == ModeVideo
}

type PlatformConfig struct {
	Platform           string `json:"platform"`
	Enabled            bool   `json:"enabled"`
	CustomInstructions string `json:"custom_instructions,omitempty"`
}

type CampaignRequest struct {
	Idea        string           `json:"idea"`
	Tone        Tone             `json:"tone"`
	AspectRatio AspectRatio      `json:"aspect_ratio"`
	BrandKitID  string           `json:"brand_kit_id,omitempty"`
	Media       MediaPlan        `json:"media"`
	Platforms   []PlatformConfig `json:"platforms"`
}

// EnabledPlatforms returns the enabled subset in list order.
func (r *CampaignRequest) EnabledPlatforms() []PlatformConfig {
	var enabled []PlatformConfig
	for _, p := range r.Platforms {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	return enabled
}

// HasIdea reports whether the idea text is non-blank.
func (r *CampaignRequest) HasIdea() bool {
	return strings.TrimSpace(r.Idea) != ""
}

type PlatformPost struct {
	Platform string `json:"platform"`
	Post     string `json:"post"`
}

type CampaignResult struct {
	ImageURL string         `json:"image_url,omitempty"`
	VideoURL string         `json:"video_url,omitempty"`
	Posts    []PlatformPost `json:"posts"`
}

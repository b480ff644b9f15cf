package transfer

type CampaignCreation struct {
	Idea        string `json:"idea"`
	Tone        string `json:"tone"`
	AspectRatio string `json:"aspect_ratio"`
	BrandKitID  string `json:"brand_kit_id"`
	Mode        string `json:"mode"`
	Style       string `json:"style"`
	WithImage   bool   `json:"with_image"`
	// Platforms is a JSON-encoded []models.PlatformConfig.
	Platforms string `json:"platforms"`
}

type SummarizeRequest struct {
	Idea string `json:"idea"`
}

package repository

import (
	"context"

	"github.com/flashfusion/studio-api/internal/models"
)

// BrandKitRepository is the static brand-kit registry. Kits are read-only
// reference data; a miss is not an error.
type BrandKitRepository interface {
	GetByID(ctx context.Context, id string) (*models.BrandKit, error)
	List(ctx context.Context) ([]*models.BrandKit, error)
}

type brandKitRepository struct {
	kits []*models.BrandKit
}

func NewBrandKitRepository() BrandKitRepository {
	return &brandKitRepository{kits: defaultBrandKits}
}

func (r *brandKitRepository) GetByID(ctx context.Context, id string) (*models.BrandKit, error) {
	for _, kit := range r.kits {
		if kit.ID == id {
			return kit, nil
		}
	}
	return nil, nil
}

func (r *brandKitRepository) List(ctx context.Context) ([]*models.BrandKit, error) {
	return r.kits, nil
}

var defaultBrandKits = []*models.BrandKit{
	{
		ID:          "bk_1",
		Name:        "TechGlow Inc.",
		Colors:      []string{"#4A90E2", "#50E3C2", "#0D1117"},
		Voice:       "innovative and forward-thinking",
		BannedWords: []string{"simple", "basic", "easy"},
	},
	{
		ID:          "bk_2",
		Name:        "EcoVibe Organics",
		Colors:      []string{"#7ED321", "#F5A623", "#417505"},
		Voice:       "friendly, earthy, and trustworthy",
		BannedWords: []string{"artificial", "chemical", "processed"},
	},
	{
		ID:          "bk_3",
		Name:        "Quantum Leap Finance",
		Colors:      []string{"#1A237E", "#C5CAE9", "#FFFFFF"},
		Voice:       "authoritative, secure, and professional",
		BannedWords: []string{"gamble", "bet", "luck"},
	},
	{
		ID:          "bk_4",
		Name:        "Aura Couture",
		Colors:      []string{"#D4AF37", "#1C1C1C", "#F5F5F5"},
		Voice:       "elegant, sophisticated, and exclusive",
		BannedWords: []string{"cheap", "deal", "sale"},
	},
	{
		ID:          "bk_5",
		Name:        "Joyful Journeys Toys",
		Colors:      []string{"#FF6384", "#36A2EB", "#FFCE56"},
		Voice:       "playful, imaginative, and fun",
		BannedWords: []string{"boring", "dull", "sad"},
	},
	{
		ID:          "bk_6",
		Name:        "The Daily Grind Cafe",
		Colors:      []string{"#6F4E37", "#F5DEB3", "#D2B48C"},
		Voice:       "cozy, artisanal, and community-focused",
		BannedWords: []string{"instant", "fast", "quick"},
	},
}

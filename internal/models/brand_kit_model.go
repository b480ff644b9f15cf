package models

type BrandKit struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Colors      []string `json:"colors"`
	Voice       string   `json:"voice"`
	BannedWords []string `json:"banned_words"`
}

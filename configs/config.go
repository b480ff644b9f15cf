package config

import (
	"os"
	"strconv"
	"time"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type Config struct {
	ListenAddr        string
	GeminiAPIKey      string
	TextModel         string
	ImageModel        string
	ComposeModel      string
	VideoModel        string
	VideoPollInterval time.Duration
	MaxLogoSize       int64
	RedisURI          string
	R2                R2
}

func LoadConfig() *Config {
	return &Config{
		ListenAddr:        getEnv("LISTEN_ADDR", ":3000"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		TextModel:         getEnv("GEMINI_TEXT_MODEL", "gemini-2.5-flash"),
		ImageModel:        getEnv("GEMINI_IMAGE_MODEL", "imagen-4.0-generate-001"),
		ComposeModel:      getEnv("GEMINI_COMPOSE_MODEL", "gemini-2.5-flash-image"),
		VideoModel:        getEnv("GEMINI_VIDEO_MODEL", "veo-2.0-generate-001"),
		VideoPollInterval: getEnvDuration("VIDEO_POLL_INTERVAL", 5*time.Second),
		MaxLogoSize:       getEnvInt64("MAX_LOGO_SIZE", 2*1024*1024),
		RedisURI:          getEnv("REDIS_URI", ""),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

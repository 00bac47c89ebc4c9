package config

import (
	"fmt"
	"os"
)

// Config is read from the environment once at startup. A .env file is
// loaded first outside production (see cmd/api).
type Config struct {
	Port           string
	RecognitionURL string
	OrderURL       string
	DefaultLang    string
	LogFile        string

	// R2 photo archival; archival is disabled when these are unset.
	R2Endpoint      string
	R2AccessKey     string
	R2SecretKey     string
	R2Bucket        string
	R2PublicBaseURL string
}

// Load reads and validates the environment. The two backend endpoints
// are the only hard requirements.
func Load() (Config, error) {
	cfg := Config{
		Port:            getenv("PORT", "8000"),
		RecognitionURL:  os.Getenv("RECOGNITION_URL"),
		OrderURL:        os.Getenv("ORDER_URL"),
		DefaultLang:     getenv("DEFAULT_LANG", "en"),
		LogFile:         getenv("LOG_FILE", "./logs/app.log"),
		R2Endpoint:      os.Getenv("R2_ENDPOINT"),
		R2AccessKey:     os.Getenv("R2_ACCESS_KEY"),
		R2SecretKey:     os.Getenv("R2_SECRET_KEY"),
		R2Bucket:        os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL: os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	for name, val := range map[string]string{
		"RECOGNITION_URL": cfg.RecognitionURL,
		"ORDER_URL":       cfg.OrderURL,
	} {
		if val == "" {
			return Config{}, fmt.Errorf("missing env var: %s", name)
		}
	}

	return cfg, nil
}

// ArchivalEnabled reports whether all R2 credentials are present.
func (c Config) ArchivalEnabled() bool {
	return c.R2Endpoint != "" &&
		c.R2AccessKey != "" &&
		c.R2SecretKey != "" &&
		c.R2Bucket != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

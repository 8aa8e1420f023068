// Package config loads environment settings, optionally from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds settings that come from the environment rather than flags
type Config struct {
	OutputDir      string // RT_OUTPUT_DIR
	TextureDir     string // RT_TEXTURE_DIR
	MaxTextureSize int    // RT_MAX_TEXTURE_SIZE, 0 keeps textures at full size

	S3Bucket    string // S3_BUCKET
	S3Region    string // S3_REGION
	S3Endpoint  string // S3_ENDPOINT, empty for AWS
	S3AccessKey string // S3_ACCESS_KEY
	S3SecretKey string // S3_SECRET_KEY
	S3Prefix    string // S3_PREFIX
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		OutputDir:      "output",
		TextureDir:     "res",
		MaxTextureSize: 2048,
		S3Region:       "us-east-1",
	}
}

// Load reads envFiles (ignoring any that do not exist) into the process
// environment and builds a Config from it. Variables already set in the
// environment win over file values.
func Load(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if file == "" {
			continue
		}
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment
func FromEnv() (Config, error) {
	cfg := Default()

	cfg.OutputDir = getEnv("RT_OUTPUT_DIR", cfg.OutputDir)
	cfg.TextureDir = getEnv("RT_TEXTURE_DIR", cfg.TextureDir)
	if value, ok := os.LookupEnv("RT_MAX_TEXTURE_SIZE"); ok && value != "" {
		size, err := strconv.Atoi(value)
		if err != nil || size < 0 {
			return Config{}, fmt.Errorf("invalid RT_MAX_TEXTURE_SIZE %q", value)
		}
		cfg.MaxTextureSize = size
	}

	cfg.S3Bucket = os.Getenv("S3_BUCKET")
	cfg.S3Region = getEnv("S3_REGION", cfg.S3Region)
	cfg.S3Endpoint = os.Getenv("S3_ENDPOINT")
	cfg.S3AccessKey = os.Getenv("S3_ACCESS_KEY")
	cfg.S3SecretKey = os.Getenv("S3_SECRET_KEY")
	cfg.S3Prefix = os.Getenv("S3_PREFIX")

	return cfg, nil
}

// UploadEnabled reports whether enough S3 settings are present to upload
func (c Config) UploadEnabled() bool {
	return c.S3Bucket != ""
}

// Helper to get environment variables with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

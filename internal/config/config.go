package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	// Model library
	ModelsDir     string
	ModelExt      string
	ScreenshotExt string

	// Output site
	SiteDir string

	// External launcher
	BaseRunURL string
}

func Load() Config {
	root := executableDir()

	return Config{
		ModelsDir:     envOr("MODELS_DIR", filepath.Join(root, "models")),
		ModelExt:      ".nlogox",
		ScreenshotExt: ".png",

		SiteDir: envOr("SITE_DIR", filepath.Join(root, "site")),

		BaseRunURL: envOr("BASE_RUN_URL",
			"https://netlogoweb.org/launch#https://netlogoweb.org/assets/modelslib/"),
	}
}

// OutputModelsDir is where per-model pages are written, mirroring the
// library's folder layout.
func (c Config) OutputModelsDir() string {
	return filepath.Join(c.SiteDir, "models")
}

func (c Config) Validate() error {
	if c.ModelsDir == "" {
		return fmt.Errorf("models directory is required")
	}
	if c.SiteDir == "" {
		return fmt.Errorf("site directory is required")
	}
	if c.BaseRunURL == "" {
		return fmt.Errorf("base run URL is required")
	}
	return nil
}

// executableDir anchors the default layout next to the binary, so an
// argument-free invocation works from anywhere.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

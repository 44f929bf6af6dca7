package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/aalvaropc/figgy/internal/domain"
)

// MapConfig applies parsed values on top of base.
func MapConfig(path string, base domain.Config, y YAMLConfig) (domain.Config, error) {
	cfg := base
	f := y.Figgy

	if v := strings.TrimSpace(f.Paths.FontsDir); v != "" {
		cfg.Paths.FontsDir = v
	}
	if v := strings.TrimSpace(f.Paths.SavedDir); v != "" {
		cfg.Paths.SavedDir = v
	}
	if v := strings.TrimSpace(f.Defaults.Font); v != "" {
		cfg.Defaults.Font = domain.FontName(v)
	}
	if v := strings.TrimSpace(f.Defaults.FallbackFont); v != "" {
		cfg.Defaults.FallbackFont = domain.FontName(v)
	}

	if v := strings.TrimSpace(f.UI.StatusClearAfter); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return base, invalidField(path, "ui.status_clear_after", err.Error())
		}
		if d <= 0 {
			return base, invalidField(path, "ui.status_clear_after", "must be positive")
		}
		cfg.UI.StatusClearAfter = d
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

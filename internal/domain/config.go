package domain

import "time"

// Config represents the figgy configuration loaded from figgy.yaml.
type Config struct {
	Paths    PathsConfig
	Defaults DefaultsConfig
	UI       UIConfig
}

type PathsConfig struct {
	FontsDir string
	SavedDir string
}

type DefaultsConfig struct {
	Font         FontName
	FallbackFont FontName
}

type UIConfig struct {
	StatusClearAfter time.Duration
}

// DefaultConfig provides sane defaults if figgy.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			FontsDir: "fonts",
			SavedDir: "saved_art",
		},
		Defaults: DefaultsConfig{
			Font:         "ansi_shadow",
			FallbackFont: "standard",
		},
		UI: UIConfig{
			StatusClearAfter: 3 * time.Second,
		},
	}
}

// FontPreference returns the default font names in preference order.
func (c Config) FontPreference() []FontName {
	out := make([]FontName, 0, 2)
	if c.Defaults.Font != "" {
		out = append(out, c.Defaults.Font)
	}
	if c.Defaults.FallbackFont != "" && c.Defaults.FallbackFont != c.Defaults.Font {
		out = append(out, c.Defaults.FallbackFont)
	}
	return out
}

package config

type YAMLConfig struct {
	Figgy struct {
		Paths struct {
			FontsDir string `yaml:"fonts_dir"`
			SavedDir string `yaml:"saved_dir"`
		} `yaml:"paths"`

		Defaults struct {
			Font         string `yaml:"font"`
			FallbackFont string `yaml:"fallback_font"`
		} `yaml:"defaults"`

		UI struct {
			StatusClearAfter string `yaml:"status_clear_after"`
		} `yaml:"ui"`
	} `yaml:"figgy"`
}

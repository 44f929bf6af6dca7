package ports

import "github.com/aalvaropc/figgy/internal/domain"

// FontInstaller makes a font file usable by name.
type FontInstaller interface {
	EnsureInstalled(path string) (domain.FontName, error)
}

// FontSource lists candidate font files in a directory.
type FontSource interface {
	ListFontFiles(dir string) ([]string, error)
}

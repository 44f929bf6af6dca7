package ports

import "github.com/aalvaropc/figgy/internal/domain"

// FontCatalog resolves font names to definitions.
type FontCatalog interface {
	ListFonts() []domain.FontName
	Lookup(name domain.FontName) (domain.FontDefinition, error)
}

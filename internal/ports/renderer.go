package ports

import "github.com/aalvaropc/figgy/internal/domain"

// Renderer turns text into a banner using a resolved font.
type Renderer interface {
	Render(font domain.FontDefinition, text string) (domain.Art, error)
}

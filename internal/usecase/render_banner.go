package usecase

import (
	"github.com/aalvaropc/figgy/internal/domain"
	"github.com/aalvaropc/figgy/internal/ports"
)

type RenderBanner struct {
	catalog  ports.FontCatalog
	renderer ports.Renderer
}

func NewRenderBanner(fc ports.FontCatalog, r ports.Renderer) *RenderBanner {
	return &RenderBanner{
		catalog:  fc,
		renderer: r,
	}
}

// Execute renders text with the named font. Empty text yields the empty Art and no
// error whatever the font. Unknown names are rejected by the catalog before the
// renderer is reached.
func (uc *RenderBanner) Execute(text string, font domain.FontName) (domain.Art, error) {
	if text == "" {
		return domain.Art{}, nil
	}

	def, err := uc.catalog.Lookup(font)
	if err != nil {
		return domain.Art{}, err
	}

	art, err := uc.renderer.Render(def, text)
	if err != nil {
		return domain.Art{}, err
	}
	return art, nil
}

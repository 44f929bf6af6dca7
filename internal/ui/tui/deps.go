package tui

import (
	"log/slog"
	"time"

	"github.com/aalvaropc/figgy/internal/domain"
	"github.com/aalvaropc/figgy/internal/ports"
	"github.com/aalvaropc/figgy/internal/usecase"
)

type Deps struct {
	Render    *usecase.RenderBanner
	Save      *usecase.SaveBanner
	Clipboard ports.Clipboard

	// Fonts is the selector's content, already sorted.
	Fonts       []domain.FontName
	DefaultFont domain.FontName

	StatusClearAfter time.Duration

	Logger *slog.Logger
	Debug  bool
}

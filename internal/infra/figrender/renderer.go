package figrender

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/common-nighthawk/go-figure"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/aalvaropc/figgy/internal/domain"
	"github.com/aalvaropc/figgy/internal/ports"
)

const defaultCacheSize = 256

type cacheKey struct {
	font   domain.FontName
	source string
	text   string
}

// Renderer renders banners with go-figure.
type Renderer struct {
	cache *lru.Cache[cacheKey, string]
	log   *slog.Logger
}

type Option func(*Renderer)

// WithCacheSize sets the number of memoized renders; zero or less disables the cache.
func WithCacheSize(n int) Option {
	return func(r *Renderer) {
		if n <= 0 {
			r.cache = nil
			return
		}
		c, err := lru.New[cacheKey, string](n)
		if err == nil {
			r.cache = c
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	WithCacheSize(defaultCacheSize)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.Renderer = (*Renderer)(nil)

func (r *Renderer) Render(font domain.FontDefinition, text string) (domain.Art, error) {
	if text == "" {
		return domain.Art{}, nil
	}

	key := cacheKey{font: font.Name, source: font.SourcePath, text: text}
	if r.cache != nil {
		if s, ok := r.cache.Get(key); ok {
			return domain.Art{Text: s}, nil
		}
	}

	s, err := render(font, text)
	if err != nil {
		r.log.Warn("render.failed", "font", string(font.Name), "source", font.SourcePath, "err", err)
		return domain.Art{}, &domain.OpError{
			Op:   "figrender.render",
			Kind: domain.KindInvalidFont,
			Path: font.SourcePath,
			Err:  err,
		}
	}

	if r.cache != nil {
		r.cache.Add(key, s)
	}
	return domain.Art{Text: s}, nil
}

// render converts engine panics (bad glyph tables, unknown embedded names) into errors.
func render(font domain.FontDefinition, text string) (out string, err error) {
	defer func() {
		if p := recover(); p != nil {
			out = ""
			err = fmt.Errorf("font %q: %v: %w", font.Name, p, domain.ErrInvalidFont)
		}
	}()

	if font.Builtin() {
		return figure.NewFigure(text, string(font.Name), false).String(), nil
	}
	if len(font.Data) == 0 {
		return "", fmt.Errorf("font %q has no data: %w", font.Name, domain.ErrInvalidFont)
	}
	data, restore, err := narrow(font.Data)
	if err != nil {
		return "", fmt.Errorf("font %q: %v: %w", font.Name, err, domain.ErrInvalidFont)
	}
	out = figure.NewFigureWithFont(text, bytes.NewReader(data), false).String()
	if restore != nil {
		out = restore.Replace(out)
	}
	return out, nil
}

package usecase

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/figgy/internal/domain"
	"github.com/aalvaropc/figgy/internal/ports"
)

const defaultDiscoverLimit = 4

type DiscoverFonts struct {
	source    ports.FontSource
	installer ports.FontInstaller
	log       *slog.Logger
	limit     int
}

type DiscoverOption func(*DiscoverFonts)

func WithDiscoverLogger(l *slog.Logger) DiscoverOption {
	return func(uc *DiscoverFonts) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithConcurrency bounds how many font files are installed at once.
func WithConcurrency(n int) DiscoverOption {
	return func(uc *DiscoverFonts) {
		if n > 0 {
			uc.limit = n
		}
	}
}

func NewDiscoverFonts(src ports.FontSource, inst ports.FontInstaller, opts ...DiscoverOption) *DiscoverFonts {
	uc := &DiscoverFonts{
		source:    src,
		installer: inst,
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
		limit:     defaultDiscoverLimit,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute installs every font file found in dir. Files that fail to install are
// logged and reported as failures; they never fail the call. The only error
// returned is the context's.
func (uc *DiscoverFonts) Execute(ctx context.Context, dir string) ([]domain.FontFailure, error) {
	paths, err := uc.source.ListFontFiles(dir)
	if err != nil {
		uc.log.Warn("fonts.scan.failed", "dir", dir, "err", err)
		return []domain.FontFailure{{Path: dir, Err: err}}, nil
	}
	if len(paths) == 0 {
		uc.log.Debug("fonts.scan.empty", "dir", dir)
		return nil, nil
	}

	var (
		mu       sync.Mutex
		failures []domain.FontFailure
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.limit)

	for _, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			name, err := uc.installer.EnsureInstalled(p)
			if err != nil {
				uc.log.Warn("fonts.install.failed", "path", p, "err", err)
				mu.Lock()
				failures = append(failures, domain.FontFailure{Path: p, Err: err})
				mu.Unlock()
				return nil
			}

			uc.log.Debug("fonts.install.ok", "path", p, "name", string(name))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return failures, err
	}

	sort.Slice(failures, func(i, j int) bool { return failures[i].Path < failures[j].Path })

	uc.log.Info("fonts.discovered",
		"dir", dir,
		"files", len(paths),
		"failed", len(failures),
	)
	return failures, nil
}

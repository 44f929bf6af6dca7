package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aalvaropc/figgy/internal/domain"
	"github.com/aalvaropc/figgy/internal/infra/artstore"
	"github.com/aalvaropc/figgy/internal/infra/config"
	"github.com/aalvaropc/figgy/internal/infra/figrender"
	"github.com/aalvaropc/figgy/internal/infra/fontrepo"
	"github.com/aalvaropc/figgy/internal/usecase"
)

type appCtx struct {
	root string
	cfg  domain.Config

	fonts       *fontrepo.Repository
	defaultFont domain.FontName
	failures    []domain.FontFailure

	render *usecase.RenderBanner
	save   *usecase.SaveBanner
}

// loadApp reads figgy.yaml, discovers custom fonts and wires the usecases.
// Only a bad config or a canceled context fail it; broken font files are skipped.
func loadApp(ctx context.Context, root string, log *slog.Logger) (*appCtx, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	repo := fontrepo.New(fontrepo.WithLogger(log))

	failures, err := usecase.NewDiscoverFonts(repo, repo,
		usecase.WithDiscoverLogger(log),
	).Execute(ctx, resolveDir(root, cfg.Paths.FontsDir))
	if err != nil {
		return nil, err
	}

	def, ok := repo.DefaultFont(cfg.FontPreference()...)
	if !ok {
		log.Warn("fonts.default.missing", "preference", cfg.FontPreference())
	}

	store := artstore.NewTextStore(root, cfg)

	return &appCtx{
		root:        root,
		cfg:         cfg,
		fonts:       repo,
		defaultFont: def,
		failures:    failures,
		render:      usecase.NewRenderBanner(repo, figrender.New(figrender.WithLogger(log))),
		save:        usecase.NewSaveBanner(store),
	}, nil
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	abs, err := filepath.Abs(wd)
	if err != nil {
		return wd
	}
	return abs
}

func resolveDir(root, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}

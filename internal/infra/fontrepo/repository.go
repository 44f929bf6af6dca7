package fontrepo

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/aalvaropc/figgy/internal/domain"
	"github.com/aalvaropc/figgy/internal/ports"
)

// Repository is the process-wide font table: the engine's built-in fonts, the fonts
// bundled with figgy, and custom .flf files registered at runtime. Registered fonts
// are never replaced.
type Repository struct {
	mu    sync.RWMutex
	fonts map[domain.FontName]domain.FontDefinition
	log   *slog.Logger
}

type Option func(*Repository)

// WithBuiltins replaces the built-in font set, bundled fonts included.
func WithBuiltins(names ...domain.FontName) Option {
	return func(r *Repository) {
		r.fonts = make(map[domain.FontName]domain.FontDefinition, len(names))
		for _, n := range names {
			r.fonts[n] = domain.FontDefinition{Name: n}
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Repository) {
		if l != nil {
			r.log = l
		}
	}
}

func New(opts ...Option) *Repository {
	r := &Repository{
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	WithBuiltins(engineFonts()...)(r)
	for _, def := range bundledFonts() {
		r.fonts[def.Name] = def
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	_ ports.FontCatalog   = (*Repository)(nil)
	_ ports.FontInstaller = (*Repository)(nil)
	_ ports.FontSource    = (*Repository)(nil)
)

// ListFonts returns every known font name, sorted.
func (r *Repository) ListFonts() []domain.FontName {
	r.mu.RLock()
	out := make([]domain.FontName, 0, len(r.fonts))
	for n := range r.fonts {
		out = append(out, n)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (r *Repository) Lookup(name domain.FontName) (domain.FontDefinition, error) {
	r.mu.RLock()
	def, ok := r.fonts[name]
	r.mu.RUnlock()
	if ok {
		return def, nil
	}

	hint := ""
	if s, ok := suggest(r.ListFonts(), name); ok {
		hint = fmt.Sprintf(" (did you mean %q?)", s)
	}
	return domain.FontDefinition{}, &domain.OpError{
		Op:   "fontrepo.lookup",
		Kind: domain.KindNotFound,
		Err:  fmt.Errorf("font %q %w%s", name, domain.ErrNotFound, hint),
	}
}

// EnsureInstalled registers the font at path under its filename stem. It is a
// no-op if a font with that name is already known.
func (r *Repository) EnsureInstalled(path string) (domain.FontName, error) {
	name := domain.FontName(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	if strings.TrimSpace(string(name)) == "" {
		return "", &domain.OpError{
			Op:   "fontrepo.install",
			Kind: domain.KindInvalidFont,
			Path: path,
			Err:  fmt.Errorf("empty font name: %w", domain.ErrInvalidFont),
		}
	}

	if r.known(name) {
		r.log.Debug("fonts.install.skipped", "name", string(name), "path", path)
		return name, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", &domain.OpError{
			Op:   "fontrepo.install",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	b = normalizeNewlines(b)
	h, err := parseFLF(b)
	if err != nil {
		return "", &domain.OpError{
			Op:   "fontrepo.install",
			Kind: domain.KindInvalidFont,
			Path: path,
			Err:  fmt.Errorf("%v: %w", err, domain.ErrInvalidFont),
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	r.mu.Lock()
	if _, exists := r.fonts[name]; !exists {
		r.fonts[name] = domain.FontDefinition{Name: name, SourcePath: abs, Data: b}
	}
	r.mu.Unlock()

	r.log.Info("fonts.installed", "name", string(name), "path", abs, "height", h.Height)
	return name, nil
}

// ListFontFiles returns the .flf files directly inside dir, sorted by name.
// A missing directory yields no files and no error.
func (r *Repository) ListFontFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.OpError{
			Op:   "fontrepo.scan",
			Kind: domain.KindIO,
			Path: dir,
			Err:  err,
		}
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(e.Name()), flfExt) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}

	sort.Strings(out)
	return out, nil
}

// DefaultFont returns the first preferred font that is known.
func (r *Repository) DefaultFont(preferred ...domain.FontName) (domain.FontName, bool) {
	for _, p := range preferred {
		if r.known(p) {
			return p, true
		}
	}
	return "", false
}

func (r *Repository) known(name domain.FontName) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.fonts[name]
	return ok
}

package artstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/figgy/internal/domain"
	"github.com/aalvaropc/figgy/internal/ports"
)

const (
	defaultSavedDir = "saved_art"
	timestampLayout = "20060102_150405"
)

// TextStore writes banners as plain text files named {timestamp}_{font}.txt.
// Two saves of the same font within one second share a name; the later wins.
type TextStore struct {
	rootDir  string
	savedDir string
	now      func() time.Time
}

type Option func(*TextStore)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *TextStore) { s.now = now }
}

func NewTextStore(root string, cfg domain.Config, opts ...Option) *TextStore {
	dir := cfg.Paths.SavedDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultSavedDir
	}

	s := &TextStore{
		rootDir:  root,
		savedDir: dir,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ArtifactStore = (*TextStore)(nil)

// Dir is the directory banners are written to.
func (s *TextStore) Dir() string {
	if filepath.IsAbs(s.savedDir) {
		return s.savedDir
	}
	return filepath.Join(s.rootDir, s.savedDir)
}

func (s *TextStore) SaveArt(a domain.Artifact) (string, error) {
	name, err := fileName(s.now(), a.Font)
	if err != nil {
		return "", err
	}

	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "artstore.mkdir",
			Kind: domain.KindIO,
			Path: dir,
			Err:  err,
		}
	}

	path := filepath.Join(dir, name)

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(a.Art), 0o644); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "artstore.write",
			Kind: domain.KindIO,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "artstore.rename",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path, nil
}

func fileName(ts time.Time, font domain.FontName) (string, error) {
	f := string(font)
	if strings.TrimSpace(f) == "" || f != filepath.Base(f) || f == ".." {
		return "", &domain.OpError{
			Op:   "artstore.filename",
			Kind: domain.KindInvalidFont,
			Err:  fmt.Errorf("font name %q cannot be used in a file name: %w", f, domain.ErrInvalidFont),
		}
	}
	return fmt.Sprintf("%s_%s.txt", ts.Format(timestampLayout), f), nil
}

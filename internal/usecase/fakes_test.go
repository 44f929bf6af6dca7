package usecase

import (
	"errors"
	"fmt"
	"sync"

	"github.com/aalvaropc/figgy/internal/domain"
)

// --- fakes shared by the usecase tests ---

type fakeCatalog struct {
	fonts map[domain.FontName]domain.FontDefinition
}

func newFakeCatalog(names ...domain.FontName) fakeCatalog {
	c := fakeCatalog{fonts: map[domain.FontName]domain.FontDefinition{}}
	for _, n := range names {
		c.fonts[n] = domain.FontDefinition{Name: n}
	}
	return c
}

func (c fakeCatalog) ListFonts() []domain.FontName {
	out := make([]domain.FontName, 0, len(c.fonts))
	for n := range c.fonts {
		out = append(out, n)
	}
	return out
}

func (c fakeCatalog) Lookup(name domain.FontName) (domain.FontDefinition, error) {
	def, ok := c.fonts[name]
	if !ok {
		return domain.FontDefinition{}, &domain.OpError{
			Op:   "fake.lookup",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("font %q %w", name, domain.ErrNotFound),
		}
	}
	return def, nil
}

// stubRenderer draws "<font>|<text>" on two rows, or fails for fonts in broken.
type stubRenderer struct {
	broken map[domain.FontName]bool
	calls  int
}

func (r *stubRenderer) Render(font domain.FontDefinition, text string) (domain.Art, error) {
	r.calls++
	if r.broken[font.Name] {
		return domain.Art{}, &domain.OpError{
			Op:   "fake.render",
			Kind: domain.KindInvalidFont,
			Err:  fmt.Errorf("font %q: bad glyphs: %w", font.Name, domain.ErrInvalidFont),
		}
	}
	row := string(font.Name) + "|" + text
	return domain.Art{Text: row + "\n" + row + "\n"}, nil
}

type memStore struct {
	saved []domain.Artifact
	err   error
}

func (s *memStore) SaveArt(a domain.Artifact) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, a)
	return fmt.Sprintf("saved_art/%d_%s.txt", len(s.saved), a.Font), nil
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type stubSource struct {
	paths []string
	err   error
}

func (s stubSource) ListFontFiles(_ string) ([]string, error) {
	return s.paths, s.err
}

// recordingInstaller fails for paths in bad and records every call.
type recordingInstaller struct {
	mu    sync.Mutex
	bad   map[string]bool
	calls []string
}

func (i *recordingInstaller) EnsureInstalled(path string) (domain.FontName, error) {
	i.mu.Lock()
	i.calls = append(i.calls, path)
	i.mu.Unlock()

	if i.bad[path] {
		return "", &domain.OpError{
			Op:   "fake.install",
			Kind: domain.KindInvalidFont,
			Path: path,
			Err:  errors.New("missing flf2a signature"),
		}
	}
	return domain.FontName(path), nil
}

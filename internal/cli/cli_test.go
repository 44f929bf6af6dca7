package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/figgy/internal/domain"
	"github.com/aalvaropc/figgy/internal/infra/logger"
)

func writeFile(t *testing.T, path string, b []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatal(err)
	}
}

func miniFont(t *testing.T) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", "mini.flf"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return b
}

// --- resolveDir ---

func TestResolveDir(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "fonts")
	if got := resolveDir("/root", abs); got != abs {
		t.Errorf("resolveDir(abs) = %q, want %q", got, abs)
	}
	if got := resolveDir("/work", "fonts"); got != filepath.Join("/work", "fonts") {
		t.Errorf("resolveDir(rel) = %q", got)
	}
}

// --- loadApp ---

func TestLoadApp_DiscoversCustomFonts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "fonts", "shop_sign.flf"), miniFont(t))
	writeFile(t, filepath.Join(root, "fonts", "broken.flf"), []byte("garbage\n"))

	app, err := loadApp(context.Background(), root, logger.L())
	if err != nil {
		t.Fatalf("loadApp error: %v", err)
	}

	if app.defaultFont != "ansi_shadow" {
		t.Fatalf("expected ansi_shadow as default, got %q", app.defaultFont)
	}
	if len(app.failures) != 1 || filepath.Base(app.failures[0].Path) != "broken.flf" {
		t.Fatalf("expected broken.flf to be skipped, got %v", app.failures)
	}

	fonts := app.fonts.ListFonts()
	for _, n := range fonts {
		if n == "broken" {
			t.Fatalf("broken font must not be listed")
		}
	}

	art, err := app.render.Execute("Hi", "shop_sign")
	if err != nil || art.IsEmpty() {
		t.Fatalf("expected the custom font to render, art=%q err=%v", art.Text, err)
	}
}

func TestLoadApp_EmptyDirDefaultsToAnsiShadow(t *testing.T) {
	root := t.TempDir()

	app, err := loadApp(context.Background(), root, logger.L())
	if err != nil {
		t.Fatalf("loadApp error: %v", err)
	}
	if app.defaultFont != "ansi_shadow" {
		t.Fatalf("expected ansi_shadow, got %q", app.defaultFont)
	}

	art, err := app.render.Execute("Hi", app.defaultFont)
	if err != nil || art.IsEmpty() {
		t.Fatalf("expected the default font to render, art=%q err=%v", art.Text, err)
	}
}

func TestLoadApp_UnknownPreferredFallsBackToStandard(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "figgy.yaml"), []byte("figgy:\n  defaults:\n    font: nope\n"))

	app, err := loadApp(context.Background(), root, logger.L())
	if err != nil {
		t.Fatalf("loadApp error: %v", err)
	}
	if app.defaultFont != "standard" {
		t.Fatalf("expected standard, got %q", app.defaultFont)
	}
}

func TestLoadApp_InvalidConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "figgy.yaml"), []byte("figgy:\n  ui:\n    status_clear_after: soon\n"))

	_, err := loadApp(context.Background(), root, logger.L())
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestLoadApp_SaveUsesConfiguredDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "figgy.yaml"), []byte("figgy:\n  paths:\n    saved_dir: banners\n"))

	app, err := loadApp(context.Background(), root, logger.L())
	if err != nil {
		t.Fatalf("loadApp error: %v", err)
	}

	path, err := app.save.Execute("X\nY", "standard")
	if err != nil {
		t.Fatalf("save error: %v", err)
	}
	if filepath.Dir(path) != filepath.Join(root, "banners") {
		t.Fatalf("unexpected save dir for %s", path)
	}
}

// --- commands ---

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.HasPrefix(out, "figgy ") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestFontsListCmd(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "fonts", "shop_sign.flf"), miniFont(t))
	writeFile(t, filepath.Join(root, "fonts", "broken.flf"), []byte("garbage\n"))
	t.Chdir(root)

	out, errOut, err := execute(t, "fonts", "list", "--verbose")
	if err != nil {
		t.Fatalf("fonts list error: %v", err)
	}

	if !strings.Contains(out, "  shop_sign\n") {
		t.Fatalf("expected custom font listed, got:\n%s", out)
	}
	if !strings.Contains(out, "* ansi_shadow\n") {
		t.Fatalf("expected ansi_shadow marked as default, got:\n%s", out)
	}
	if !strings.Contains(out, "  standard\n") {
		t.Fatalf("expected standard listed, got:\n%s", out)
	}
	if strings.Contains(out, "broken") {
		t.Fatalf("broken font must not be listed")
	}
	if !strings.Contains(errOut, "skipped "+filepath.Join("fonts", "broken.flf")) {
		t.Fatalf("expected skipped file on stderr, got %q", errOut)
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	if _, _, err := execute(t, "unexpected"); err == nil {
		t.Fatalf("expected an error for positional args")
	}
}

func TestWarnIfNoLog(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, ".figgy"), []byte("x"))

	if _, err := logger.Setup(logger.Config{Root: tmp}); err == nil {
		t.Fatalf("expected setup to fail")
	}
	var buf bytes.Buffer
	warnIfNoLog(&buf)
	if !strings.Contains(buf.String(), "logging disabled") {
		t.Fatalf("expected a warning, got %q", buf.String())
	}

	cleanup, err := logger.Setup(logger.Config{Root: t.TempDir()})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer func() { _ = cleanup() }()

	buf.Reset()
	warnIfNoLog(&buf)
	if buf.Len() != 0 {
		t.Fatalf("expected no warning, got %q", buf.String())
	}
}

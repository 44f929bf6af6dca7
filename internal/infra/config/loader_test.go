package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/figgy/internal/domain"
)

func writeConfig(t *testing.T, fixture string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", fixture))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), b, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return root
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(domain.DefaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_AppliesOverrides(t *testing.T) {
	root := writeConfig(t, "figgy.yaml")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	want := domain.DefaultConfig()
	want.Paths.FontsDir = "my-fonts"
	want.Paths.SavedDir = "out"
	want.Defaults.Font = "slant"
	want.UI.StatusClearAfter = 1500 * time.Millisecond

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	root := writeConfig(t, "invalid.yaml")

	_, err := LoadConfig(root)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), FileName) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestMapConfig_RejectsBadDuration(t *testing.T) {
	for _, v := range []string{"soon", "-1s", "0s"} {
		var y YAMLConfig
		y.Figgy.UI.StatusClearAfter = v

		_, err := MapConfig(FileName, domain.DefaultConfig(), y)
		if err == nil {
			t.Fatalf("%q: expected error", v)
		}
		if !strings.Contains(err.Error(), "ui.status_clear_after") {
			t.Fatalf("%q: expected field in error, got %v", v, err)
		}
	}
}

func TestMapConfig_BlankValuesKeepBase(t *testing.T) {
	var y YAMLConfig
	y.Figgy.Paths.FontsDir = "   "

	cfg, err := MapConfig(FileName, domain.DefaultConfig(), y)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Paths.FontsDir != "fonts" {
		t.Fatalf("expected default fonts dir, got %q", cfg.Paths.FontsDir)
	}
}

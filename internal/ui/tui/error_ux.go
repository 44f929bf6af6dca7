package tui

import (
	"errors"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/figgy/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage words err for the status line or the output pane.
func userMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, domain.ErrNothingToSave) {
		return "nothing to save"
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound, domain.KindInvalidFont:
			if oe.Err != nil {
				return oe.Err.Error()
			}
			if strings.Contains(oe.Op, "fontrepo") || strings.Contains(oe.Op, "figrender") {
				return "font unavailable"
			}
			return "not found"

		case domain.KindIO:
			return ioMessage(oe)

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	return err.Error()
}

func ioMessage(oe *domain.OpError) string {
	var pe *fs.PathError
	if errors.As(oe.Err, &pe) {
		return pe.Err.Error() + " (" + filepath.Base(pe.Path) + ")"
	}

	switch {
	case errors.Is(oe.Err, fs.ErrPermission):
		return "permission denied"
	case errors.Is(oe.Err, fs.ErrNotExist):
		return "file does not exist"
	case oe.Err != nil:
		return oe.Err.Error()
	}
	return "I/O error"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

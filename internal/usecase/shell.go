package usecase

import (
	"errors"
	"io"
	"log/slog"

	"github.com/aalvaropc/figgy/internal/domain"
	"github.com/aalvaropc/figgy/internal/ports"
)

// Status lines shown by the interactive shell.
const (
	StatusNothingToSave = "Nothing to save!"
	StatusSaved         = "Saved!"
	StatusNothingToCopy = "Nothing to copy!"
	StatusCopied        = "Copied!"

	renderErrorPrefix = "Error loading font: "
	statusErrorPrefix = "Error: "
)

// Shell holds the transitions of the interactive screen. Every transition takes the
// current state and returns the next one; the caller owns the single instance.
type Shell struct {
	render  *RenderBanner
	save    *SaveBanner
	clip    ports.Clipboard
	errText func(error) string
	log     *slog.Logger
}

type ShellOption func(*Shell)

func WithClipboard(c ports.Clipboard) ShellOption {
	return func(sh *Shell) { sh.clip = c }
}

// WithErrorText sets how errors are worded for the user.
func WithErrorText(f func(error) string) ShellOption {
	return func(sh *Shell) {
		if f != nil {
			sh.errText = f
		}
	}
}

func WithShellLogger(l *slog.Logger) ShellOption {
	return func(sh *Shell) {
		if l != nil {
			sh.log = l
		}
	}
}

func NewShell(render *RenderBanner, save *SaveBanner, opts ...ShellOption) *Shell {
	sh := &Shell{
		render:  render,
		save:    save,
		errText: func(err error) string { return err.Error() },
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(sh)
	}
	return sh
}

// Start returns the initial state: no text, the given font, nothing rendered.
func (sh *Shell) Start(font domain.FontName) domain.AppState {
	return domain.AppState{SelectedFont: font}
}

func (sh *Shell) TextChanged(s domain.AppState, text string) domain.AppState {
	s.InputText = text
	return sh.rerender(s)
}

func (sh *Shell) FontChanged(s domain.AppState, font domain.FontName) domain.AppState {
	s.SelectedFont = font
	return sh.rerender(s)
}

// Save writes the current art. The returned token schedules the status clear.
func (sh *Shell) Save(s domain.AppState) (domain.AppState, uint64) {
	if s.CurrentArt == "" {
		return s.WithStatus(StatusNothingToSave)
	}

	path, err := sh.save.Execute(s.CurrentArt, s.SelectedFont)
	if err != nil {
		if errors.Is(err, domain.ErrNothingToSave) {
			return s.WithStatus(StatusNothingToSave)
		}
		sh.log.Error("art.save.failed", "font", string(s.SelectedFont), "err", err)
		return s.WithStatus(statusErrorPrefix + sh.errText(err))
	}

	sh.log.Info("art.saved", "font", string(s.SelectedFont), "path", path, "bytes", len(s.CurrentArt))
	return s.WithStatus(StatusSaved)
}

// Copy puts the current art on the clipboard.
func (sh *Shell) Copy(s domain.AppState) (domain.AppState, uint64) {
	if s.CurrentArt == "" {
		return s.WithStatus(StatusNothingToCopy)
	}
	if sh.clip == nil {
		return s.WithStatus(statusErrorPrefix + "clipboard unavailable")
	}

	if err := sh.clip.WriteAll(s.CurrentArt); err != nil {
		sh.log.Warn("art.copy.failed", "err", err)
		return s.WithStatus(statusErrorPrefix + sh.errText(err))
	}

	sh.log.Debug("art.copied", "font", string(s.SelectedFont), "bytes", len(s.CurrentArt))
	return s.WithStatus(StatusCopied)
}

// StatusExpired clears the status if token belongs to the latest status.
func (sh *Shell) StatusExpired(s domain.AppState, token uint64) domain.AppState {
	return s.ExpireStatus(token)
}

func (sh *Shell) rerender(s domain.AppState) domain.AppState {
	art, err := sh.render.Execute(s.InputText, s.SelectedFont)
	if err != nil {
		sh.log.Debug("render.failed", "font", string(s.SelectedFont), "err", err)
		s.CurrentArt = ""
		s.RenderError = renderErrorPrefix + sh.errText(err)
		return s
	}

	s.CurrentArt = art.Text
	s.RenderError = ""
	return s
}

package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/aalvaropc/figgy/internal/domain"
	"github.com/aalvaropc/figgy/internal/ports"
)

// System writes to the OS clipboard.
type System struct{}

func NewSystem() *System { return &System{} }

var _ ports.Clipboard = (*System)(nil)

func (s *System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return &domain.OpError{
			Op:   "clipboard.write",
			Kind: domain.KindIO,
			Err:  errors.New("no clipboard utility available"),
		}
	}
	if err := clipboard.WriteAll(text); err != nil {
		return &domain.OpError{
			Op:   "clipboard.write",
			Kind: domain.KindIO,
			Err:  err,
		}
	}
	return nil
}

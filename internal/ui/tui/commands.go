package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// cmdExpireStatus fires once after d. A newer status makes the token stale, so a
// pending clear for an older status does nothing when it arrives.
func cmdExpireStatus(token uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusExpiredMsg{token: token}
	})
}

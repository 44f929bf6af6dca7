package tui

// statusExpiredMsg asks to clear the status line set under token.
type statusExpiredMsg struct {
	token uint64
}

package domain

// AppState is the interactive shell's state. A single instance is owned by the UI
// loop; every change goes through the transitions in usecase.Shell.
type AppState struct {
	InputText    string
	SelectedFont FontName

	// CurrentArt is the last successful render of InputText with SelectedFont,
	// or empty when InputText is empty or the last render failed.
	CurrentArt string
	// RenderError is the user-facing message of the last failed render.
	RenderError string

	Status      string
	StatusToken uint64
}

// Output is what the output pane shows.
func (s AppState) Output() string {
	if s.RenderError != "" {
		return s.RenderError
	}
	return s.CurrentArt
}

// WithStatus sets the status line and returns the token that may later clear it.
// Any earlier token stops being able to clear the status.
func (s AppState) WithStatus(msg string) (AppState, uint64) {
	s.Status = msg
	s.StatusToken++
	return s, s.StatusToken
}

// ExpireStatus clears the status if token is still the most recent one.
func (s AppState) ExpireStatus(token uint64) AppState {
	if token != s.StatusToken {
		return s
	}
	s.Status = ""
	return s
}

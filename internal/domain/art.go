package domain

// Art is a rendered banner. The zero value is the empty render.
type Art struct {
	Text string
}

func (a Art) IsEmpty() bool { return a.Text == "" }

// Artifact is a banner about to be persisted.
type Artifact struct {
	Art  string
	Font FontName
}

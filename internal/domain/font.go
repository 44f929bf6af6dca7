package domain

// FontName identifies a FIGlet font. Names that reach a renderer have been
// resolved through a FontCatalog.
type FontName string

func (n FontName) String() string { return string(n) }

// FontDefinition is a font known to the catalog.
//
// Built-in fonts ship with the rendering engine and have no SourcePath or Data.
// Custom fonts carry the validated bytes of their .flf file.
type FontDefinition struct {
	Name       FontName
	SourcePath string
	Data       []byte
}

func (d FontDefinition) Builtin() bool { return d.SourcePath == "" }

// FontFailure records a font file that could not be installed.
type FontFailure struct {
	Path string
	Err  error
}

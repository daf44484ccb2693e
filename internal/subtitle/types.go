package subtitle

import "time"

// Reader is the interface for reading subtitle files
type Reader interface {
	Read(path string) (*File, error)
}

// Writer is the interface for writing subtitle files
type Writer interface {
	Write(path string, subtitle *File) error
}

// Line represents a single subtitle line
type Line struct {
	Index     int           // subtitle index
	StartTime time.Duration // start time
	EndTime   time.Duration // end time
	Text      string        // subtitle text
}

// File represents a parsed subtitle file
type File struct {
	Lines    []Line
	Language string // ISO 639-1 code detected from the text, "und" when unknown
	Format   string // e.g. SRT
}

// Texts returns every line's text in track order.
func (f *File) Texts() []string {
	texts := make([]string, len(f.Lines))
	for i, line := range f.Lines {
		texts[i] = line.Text
	}
	return texts
}

// WithTexts returns a copy of the file whose line texts are replaced
// index-for-index by texts. Timing and ordering are preserved.
func (f *File) WithTexts(texts []string) (*File, error) {
	if len(texts) != len(f.Lines) {
		return nil, &LengthMismatchError{Want: len(f.Lines), Got: len(texts)}
	}

	lines := make([]Line, len(f.Lines))
	copy(lines, f.Lines)
	for i := range lines {
		lines[i].Text = texts[i]
	}

	return &File{
		Lines:    lines,
		Language: f.Language,
		Format:   f.Format,
	}, nil
}

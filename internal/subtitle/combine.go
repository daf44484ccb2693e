package subtitle

import "fmt"

// Display colors for the combined track: source text on top, translation below.
const (
	sourceColor = "#42f5f2"
	targetColor = "#b042f5"
)

// LengthMismatchError reports two parallel tracks that cannot be aligned
// index-for-index.
type LengthMismatchError struct {
	Want int
	Got  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("track length mismatch: want %d lines, got %d", e.Want, e.Got)
}

// Combine builds a bilingual track from two aligned tracks: line i of the
// result carries source text and target text as a two-line colored entry,
// source first. Timing is taken from the source track.
func Combine(source, target *File) (*File, error) {
	if len(source.Lines) != len(target.Lines) {
		return nil, &LengthMismatchError{Want: len(source.Lines), Got: len(target.Lines)}
	}

	lines := make([]Line, len(source.Lines))
	copy(lines, source.Lines)
	for i := range lines {
		lines[i].Text = fmt.Sprintf("<font color='%s'>%s</font>\n<font color='%s'>%s</font>",
			sourceColor, source.Lines[i].Text,
			targetColor, target.Lines[i].Text)
	}

	return &File{
		Lines:    lines,
		Language: source.Language,
		Format:   source.Format,
	}, nil
}

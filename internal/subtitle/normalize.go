package subtitle

import "regexp"

// Markup tags embedded in subtitle text, e.g. <i>, <font color=...>, </b>.
var markupTagRe = regexp.MustCompile(`<[^>]+>`)

// Normalize strips all markup tags from every line's text, in place.
// Line count, ordering and timing are left untouched.
func Normalize(f *File) {
	for i := range f.Lines {
		f.Lines[i].Text = markupTagRe.ReplaceAllString(f.Lines[i].Text, "")
	}
}

package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const defaultWordWrap = 80

// markdownRenderer turns markdown field bodies into ANSI styled text. A nil
// receiver falls back to the raw source so notices still show on terminals
// glamour cannot profile.
type markdownRenderer struct {
	term *glamour.TermRenderer
}

func newMarkdownRenderer(wordWrap int) *markdownRenderer {
	if wordWrap <= 0 {
		wordWrap = defaultWordWrap
	}
	term, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return &markdownRenderer{}
	}
	return &markdownRenderer{term: term}
}

func (r *markdownRenderer) render(source string) string {
	if r == nil || r.term == nil {
		return source
	}
	out, err := r.term.Render(source)
	if err != nil {
		return source
	}
	return strings.TrimRight(out, "\n")
}

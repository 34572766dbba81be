package output

import (
	"github.com/charmbracelet/glamour"
)

// markdownWrap is the word-wrap width for rendered markdown.
const markdownWrap = 88

// RenderMarkdown renders markdown for the terminal. When styled is false or
// rendering fails the raw markdown is returned unchanged.
func RenderMarkdown(md string, styled bool) string {
	if !styled {
		return md
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWrap),
	)
	if err != nil {
		Debug("markdown renderer unavailable", "error", err)
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		Debug("markdown render failed", "error", err)
		return md
	}
	return out
}

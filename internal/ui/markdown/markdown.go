package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// Renderer renders tutor replies as terminal markdown. The tutor is
// prompted to answer in markdown, so the transcript goes through this
// for every model turn.
type Renderer struct {
	tr    *glamour.TermRenderer
	width int
}

// New creates a renderer that wraps at the given width. A construction
// failure yields a renderer that passes text through unstyled.
func New(width int) *Renderer {
	if width < 1 {
		width = 1
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.DarkStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return &Renderer{width: width}
	}
	return &Renderer{tr: tr, width: width}
}

// Width reports the wrap width this renderer was built for.
func (r *Renderer) Width() int {
	return r.width
}

// Render converts markdown to styled terminal output. On any rendering
// failure the raw text is returned so a reply is never dropped.
func (r *Renderer) Render(text string) string {
	if r.tr == nil {
		return text
	}
	out, err := r.tr.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}

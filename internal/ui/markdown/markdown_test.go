package markdown

import (
	"strings"
	"testing"
)

func TestRenderHeading(t *testing.T) {
	r := New(60)

	out := r.Render("# Welcome to Skill Bridge AI!\n\nPick a track.")
	if out == "" {
		t.Fatal("empty render output")
	}
	if !strings.Contains(out, "Welcome to Skill Bridge AI!") {
		t.Errorf("heading text missing from output:\n%s", out)
	}
}

func TestRenderFallbackPassesThrough(t *testing.T) {
	r := &Renderer{width: 60}

	in := "plain **unrendered** text"
	if got := r.Render(in); got != in {
		t.Errorf("fallback altered text: %q", got)
	}
}

func TestNewClampsWidth(t *testing.T) {
	r := New(0)
	if r.Width() != 1 {
		t.Errorf("width = %d, want 1", r.Width())
	}
	if out := r.Render("hi"); out == "" {
		t.Error("degenerate width must still render")
	}
}

package components

import (
	"strings"
	"testing"
)

func TestSidebarShowsTrackIcons(t *testing.T) {
	sb := NewSidebar()

	view := sb.View(34, false)
	for _, want := range []string{"🐍 Python", "📜 JavaScript", "☕ Java", "🗄️ SQL", "📊 Data Analytics"} {
		if !strings.Contains(view, want) {
			t.Errorf("track row %q missing from sidebar:\n%s", want, view)
		}
	}
}

func TestSidebarShowsCurriculumForActiveTrack(t *testing.T) {
	sb := NewSidebar()
	sb.ActiveTrackID = "python"
	sb.Completed = map[string]bool{"py1": true}

	view := sb.View(34, false)
	if !strings.Contains(view, "CURRICULUM") {
		t.Error("curriculum section missing for active track")
	}
	if !strings.Contains(view, "✓ Variables & Data Types") {
		t.Error("completed topic not marked")
	}
	if !strings.Contains(view, "○ Control Flow") {
		t.Error("pending topic not marked")
	}
}

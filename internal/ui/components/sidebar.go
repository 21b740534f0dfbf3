package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skillbridge-ai/skillbridge/internal/catalog"
	"github.com/skillbridge-ai/skillbridge/internal/ui/theme"
)

type rowKind int

const (
	rowTrack rowKind = iota
	rowTopic
)

type sidebarRow struct {
	kind  rowKind
	id    string
	icon  string
	label string
}

// Sidebar is the learning-path panel: the track list plus, once a track
// is active, its topic checklist. Selection state lives in the caller;
// the sidebar only reads it and reports the row the user activated.
type Sidebar struct {
	Cursor        int
	ActiveTrackID string
	Completed     map[string]bool
	Percent       int

	OnSelectTrack func(id string) tea.Cmd
	OnToggleTopic func(id string) tea.Cmd
}

// NewSidebar creates a sidebar with the cursor on the first track.
func NewSidebar() Sidebar {
	return Sidebar{Completed: map[string]bool{}}
}

func (s Sidebar) rows() []sidebarRow {
	var rows []sidebarRow
	for _, t := range catalog.Tracks() {
		rows = append(rows, sidebarRow{kind: rowTrack, id: t.ID, icon: t.Icon, label: t.Name})
	}
	if active, ok := catalog.Find(s.ActiveTrackID); ok {
		for _, topic := range active.Topics {
			rows = append(rows, sidebarRow{kind: rowTopic, id: topic.ID, label: topic.Name})
		}
	}
	return rows
}

// Init returns nil.
func (s Sidebar) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and activation.
func (s Sidebar) Update(msg tea.Msg) (Sidebar, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	rows := s.rows()
	if len(rows) == 0 {
		return s, nil
	}
	if s.Cursor >= len(rows) {
		s.Cursor = len(rows) - 1
	}

	switch kmsg.String() {
	case "up", "k":
		if s.Cursor > 0 {
			s.Cursor--
		}
	case "down", "j":
		if s.Cursor < len(rows)-1 {
			s.Cursor++
		}
	case "enter", " ":
		row := rows[s.Cursor]
		switch row.kind {
		case rowTrack:
			if s.OnSelectTrack != nil {
				return s, s.OnSelectTrack(row.id)
			}
		case rowTopic:
			if s.OnToggleTopic != nil {
				return s, s.OnToggleTopic(row.id)
			}
		}
	}

	return s, nil
}

// View renders the sidebar, focused controls the cursor highlight.
func (s Sidebar) View(width int, focused bool) string {
	heading := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)

	out := heading.Render("  LEARNING TRACKS") + "\n\n"

	rows := s.rows()
	for i, row := range rows {
		if row.kind == rowTopic && i > 0 && rows[i-1].kind == rowTrack {
			out += "\n" + heading.Render("  CURRICULUM") + "\n\n"
		}

		var line string
		switch row.kind {
		case rowTrack:
			marker := "  "
			if row.id == s.ActiveTrackID {
				marker = "● "
			}
			line = marker + row.icon + " " + row.label
		case rowTopic:
			marker := "○ "
			if s.Completed[row.id] {
				marker = "✓ "
			}
			line = "  " + marker + row.label
		}

		cursor := "  "
		if focused && i == s.Cursor {
			cursor = "▸ "
			out += theme.Selected.Render(cursor+line) + "\n"
			continue
		}

		switch {
		case row.kind == rowTrack && row.id == s.ActiveTrackID:
			out += lipgloss.NewStyle().Foreground(theme.Accent).Render(cursor+line) + "\n"
		case row.kind == rowTopic && s.Completed[row.id]:
			out += theme.Done.Render(cursor+line) + "\n"
		default:
			out += theme.Unselected.Render(cursor+line) + "\n"
		}
	}

	if _, ok := catalog.Find(s.ActiveTrackID); ok {
		bar := NewProgressBar("", float64(s.Percent)/100, true, width-6)
		out += "\n  " + bar.View() + "\n"
	} else {
		out += "\n" + theme.Hint.Render("  Select a track to begin") + "\n"
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 0).
		Render(out)
}

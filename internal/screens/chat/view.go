package chat

import (
	"strings"

	"charm.land/lipgloss/v2"

	conv "github.com/skillbridge-ai/skillbridge/internal/chat"
	"github.com/skillbridge-ai/skillbridge/internal/ui/components"
	"github.com/skillbridge-ai/skillbridge/internal/ui/layout"
	"github.com/skillbridge-ai/skillbridge/internal/ui/markdown"
	"github.com/skillbridge-ai/skillbridge/internal/ui/theme"
)

// composer rows plus its border.
const composerHeight = components.ComposerRows + 2

func (s *ChatScreen) View(width, height int) string {
	chatWidth := width
	var sidebarView string

	if s.sidebarOpen {
		s.syncSidebar()
		sidebarView = s.sidebar.View(layout.SidebarWidth, s.focusSidebar)
		chatWidth = width - layout.SidebarWidth - 1
		if chatWidth < 20 {
			chatWidth = 20
			sidebarView = ""
		}
	}

	transcript := s.renderTranscript(chatWidth, height-composerHeight)
	composer := s.renderComposer(chatWidth)

	chatPane := lipgloss.NewStyle().
		Width(chatWidth).
		Height(height-composerHeight).
		Render(transcript) + "\n" + composer

	if sidebarView == "" {
		return chatPane
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarView, " ", chatPane)
}

// renderTranscript builds the conversation log, pinned to the newest
// turn unless the user has scrolled up. User turns sit on the right,
// tutor turns on the left.
func (s *ChatScreen) renderTranscript(width, height int) string {
	if height < 1 {
		return ""
	}

	bodyWidth := width - 4
	if bodyWidth < 10 {
		bodyWidth = 10
	}
	if s.md == nil || s.md.Width() != bodyWidth {
		s.md = markdown.New(bodyWidth)
	}

	rightAlign := lipgloss.NewStyle().Width(width).Align(lipgloss.Right)

	var b strings.Builder
	for i, m := range s.controller.Messages() {
		if i > 0 {
			b.WriteString("\n")
		}
		stamp := theme.Hint.Render(m.Timestamp.Format("15:04"))
		switch m.Role {
		case conv.RoleUser:
			b.WriteString(rightAlign.Render(theme.UserLabel.Render("You")+" "+stamp) + "\n")
			for _, line := range strings.Split(m.Text, "\n") {
				b.WriteString(rightAlign.Render(theme.UserBubble.Render(line)) + "\n")
			}
		default:
			b.WriteString(theme.TutorLabel.Render("Skill Bridge") + " " + stamp + "\n")
			b.WriteString(s.md.Render(m.Text) + "\n")
		}
	}

	if s.controller.IsAwaitingReply() {
		b.WriteString("\n" + theme.Typing.Render("Skill Bridge is thinking"+typingDots(s.dots)) + "\n")
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) <= height {
		s.scrollUp = 0
		return strings.Join(lines, "\n")
	}

	maxUp := len(lines) - height
	if s.scrollUp > maxUp {
		s.scrollUp = maxUp
	}
	start := len(lines) - height - s.scrollUp
	return strings.Join(lines[start:start+height], "\n")
}

func (s *ChatScreen) renderComposer(width int) string {
	border := theme.Border
	if !s.focusSidebar {
		border = theme.Primary
	}

	s.input.SetWidth(width - 4)

	return lipgloss.NewStyle().
		Width(width-2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(s.input.View())
}

func typingDots(ticks int) string {
	return strings.Repeat(".", ticks%4)
}

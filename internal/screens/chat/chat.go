package chat

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	conv "github.com/skillbridge-ai/skillbridge/internal/chat"
	"github.com/skillbridge-ai/skillbridge/internal/gateway"
	"github.com/skillbridge-ai/skillbridge/internal/llm"
	"github.com/skillbridge-ai/skillbridge/internal/screen"
	"github.com/skillbridge-ai/skillbridge/internal/ui/components"
	"github.com/skillbridge-ai/skillbridge/internal/ui/layout"
	"github.com/skillbridge-ai/skillbridge/internal/ui/markdown"
)

const tickInterval = 250 * time.Millisecond

// ChatScreen implements screen.Screen for the tutoring conversation.
type ChatScreen struct {
	controller *conv.Controller
	gw         *gateway.Gateway

	input   components.Composer
	sidebar components.Sidebar
	md      *markdown.Renderer

	sessionID string

	sidebarOpen   bool
	sidebarManual bool // user toggled, stop following the width default
	focusSidebar  bool
	scrollUp      int // transcript lines scrolled up from the bottom
	dots          int

	width int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.HeaderStatusProvider = (*ChatScreen)(nil)

// New creates the chat screen over an already-loaded controller.
func New(controller *conv.Controller, gw *gateway.Gateway) *ChatScreen {
	s := &ChatScreen{
		controller: controller,
		gw:         gw,
		input:      components.NewComposer("Ask your tutor anything..."),
		sessionID:  uuid.New().String(),
	}

	sb := components.NewSidebar()
	sb.OnSelectTrack = func(id string) tea.Cmd {
		s.controller.SelectTrack(id)
		s.scrollUp = 0
		// Narrow terminals get the transcript back right away.
		if layout.IsCompactWidth(s.width) {
			s.sidebarOpen = false
			s.sidebarManual = false
			s.focusSidebar = false
			return s.input.Focus()
		}
		return nil
	}
	sb.OnToggleTopic = func(id string) tea.Cmd {
		s.controller.ToggleTopic(id)
		return nil
	}
	s.sidebar = sb

	return s
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	return "Chat"
}

// HeaderStatus reports the active track badge for the header.
func (s *ChatScreen) HeaderStatus() (string, int) {
	track := s.controller.CurrentTrack()
	if track == nil {
		return "", 0
	}
	return track.Name, s.controller.ProgressPercentage()
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	if s.focusSidebar {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter", Description: "Select / toggle"},
			{Key: "Tab", Description: "Back to chat"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Tab", Description: "Learning path"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		if !s.sidebarManual {
			s.sidebarOpen = !layout.IsCompactWidth(msg.Width)
		}
		return s, nil

	case replyMsg:
		s.controller.CompleteTurn(msg.Text)
		s.scrollUp = 0
		return s, nil

	case tickMsg:
		if !s.controller.IsAwaitingReply() {
			return s, nil
		}
		s.dots++
		return s, tickCmd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if !s.focusSidebar {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		if s.focusSidebar {
			s.focusSidebar = false
			return s, s.input.Focus()
		}
		if !s.sidebarOpen {
			s.sidebarOpen = true
			s.sidebarManual = true
		}
		s.focusSidebar = true
		s.input.Blur()
		return s, nil

	case "ctrl+b":
		s.sidebarOpen = !s.sidebarOpen
		s.sidebarManual = true
		if !s.sidebarOpen && s.focusSidebar {
			s.focusSidebar = false
			return s, s.input.Focus()
		}
		return s, nil

	case "pgup", "ctrl+u":
		s.scrollUp += 5
		return s, nil

	case "pgdown", "ctrl+d":
		s.scrollUp -= 5
		if s.scrollUp < 0 {
			s.scrollUp = 0
		}
		return s, nil
	}

	if s.focusSidebar {
		switch msg.String() {
		case "esc":
			s.focusSidebar = false
			return s, s.input.Focus()
		}
		s.syncSidebar()
		var cmd tea.Cmd
		s.sidebar, cmd = s.sidebar.Update(msg)
		return s, cmd
	}

	switch msg.String() {
	case "enter":
		// Plain enter submits; shift+enter and ctrl+j fall through to
		// the composer's newline binding.
		return s.submit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit dispatches the composed message as a new turn.
func (s *ChatScreen) submit() (screen.Screen, tea.Cmd) {
	snap, ok := s.controller.BeginTurn(s.input.Value())
	if !ok {
		return s, nil
	}

	s.input.Reset()
	s.scrollUp = 0
	s.dots = 0

	return s, tea.Batch(s.requestReply(snap), tickCmd())
}

// requestReply asks the gateway for the tutor's reply off the UI loop.
// The snapshot pins the turn to the state at dispatch time.
func (s *ChatScreen) requestReply(snap conv.Snapshot) tea.Cmd {
	gw := s.gw
	sessionID := s.sessionID
	return func() tea.Msg {
		ctx := llm.WithSession(context.Background(), sessionID)
		reply := gw.GenerateResponse(ctx, snap.Messages, snap.Progress, snap.Track)
		return replyMsg{Text: reply}
	}
}

// syncSidebar pushes the controller state into the sidebar component.
func (s *ChatScreen) syncSidebar() {
	p := s.controller.Progress()
	s.sidebar.ActiveTrackID = p.SelectedSkillID

	completed := make(map[string]bool, len(p.CompletedTopicIDs))
	for _, id := range p.CompletedTopicIDs {
		completed[id] = true
	}
	s.sidebar.Completed = completed
	s.sidebar.Percent = s.controller.ProgressPercentage()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

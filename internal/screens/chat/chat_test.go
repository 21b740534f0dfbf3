package chat

import (
	"log/slog"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	conv "github.com/skillbridge-ai/skillbridge/internal/chat"
	"github.com/skillbridge-ai/skillbridge/internal/gateway"
	"github.com/skillbridge-ai/skillbridge/internal/llm"
	"github.com/skillbridge-ai/skillbridge/internal/progress"
)

// memPersister keeps progress in memory for screen tests.
type memPersister struct {
	stored progress.UserProgress
}

func (m *memPersister) Load() progress.UserProgress  { return m.stored.Clone() }
func (m *memPersister) Save(p progress.UserProgress) { m.stored = p.Clone() }

func newTestScreen(replies ...string) (*ChatScreen, *llm.MockProvider) {
	mock := llm.NewMockProvider()
	for _, r := range replies {
		mock.AddResponse(llm.MockResponse{Text: r})
	}

	log := slog.New(slog.DiscardHandler)
	gw := gateway.New(mock, log)
	controller := conv.NewController(&memPersister{})

	s := New(controller, gw)
	s.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return s, mock
}

func pressEnter(s *ChatScreen) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestSubmitDispatchesTurn(t *testing.T) {
	s, _ := newTestScreen("Sure, let's talk about slices.")
	s.input.SetValue("Tell me about slices")

	cmd := pressEnter(s)
	if cmd == nil {
		t.Fatal("submit produced no command")
	}
	if !s.controller.IsAwaitingReply() {
		t.Error("awaiting flag not set after submit")
	}
	if s.input.Value() != "" {
		t.Error("composer not cleared after submit")
	}

	msgs := s.controller.Messages()
	if msgs[len(msgs)-1].Role != conv.RoleUser {
		t.Error("user turn missing from transcript")
	}

	s.Update(replyMsg{Text: "Sure, let's talk about slices."})
	if s.controller.IsAwaitingReply() {
		t.Error("awaiting flag not cleared by reply")
	}
	msgs = s.controller.Messages()
	if msgs[len(msgs)-1].Text != "Sure, let's talk about slices." {
		t.Errorf("reply not appended, last = %q", msgs[len(msgs)-1].Text)
	}
}

func TestBlankSubmitIgnored(t *testing.T) {
	s, mock := newTestScreen()
	before := len(s.controller.Messages())

	if cmd := pressEnter(s); cmd != nil {
		t.Error("blank submit produced a command")
	}
	if len(s.controller.Messages()) != before {
		t.Error("blank submit touched the transcript")
	}
	if mock.CallCount() != 0 {
		t.Error("blank submit reached the provider")
	}
}

func TestSubmitWhileAwaitingIgnored(t *testing.T) {
	s, _ := newTestScreen("first", "second")

	s.input.SetValue("one")
	pressEnter(s)

	s.input.SetValue("two")
	if cmd := pressEnter(s); cmd != nil {
		t.Error("submit during in-flight turn produced a command")
	}

	msgs := s.controller.Messages()
	if msgs[len(msgs)-1].Text != "one" {
		t.Errorf("second submit leaked into transcript, last = %q", msgs[len(msgs)-1].Text)
	}
}

func TestTabFocusesSidebarAndEnterSelectsTrack(t *testing.T) {
	s, _ := newTestScreen()

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if !s.focusSidebar {
		t.Fatal("tab did not focus the sidebar")
	}

	// Cursor starts on the first track.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	name, _ := s.HeaderStatus()
	if name != "Python" {
		t.Errorf("header track = %q, want Python", name)
	}

	msgs := s.controller.Messages()
	if !strings.Contains(msgs[len(msgs)-1].Text, "Now Tracking: Python") {
		t.Errorf("activation message missing, last = %q", msgs[len(msgs)-1].Text)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.focusSidebar {
		t.Error("tab did not return focus to the composer")
	}
}

func TestSidebarFollowsWidthUntilToggled(t *testing.T) {
	s, _ := newTestScreen()

	if !s.sidebarOpen {
		t.Fatal("sidebar should start open at 120 cols")
	}

	s.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	if s.sidebarOpen {
		t.Error("sidebar should collapse below the compact threshold")
	}

	s.Update(tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl})
	if !s.sidebarOpen {
		t.Fatal("ctrl+b did not open the sidebar")
	}

	// Manual toggle wins over later resizes.
	s.Update(tea.WindowSizeMsg{Width: 85, Height: 30})
	if !s.sidebarOpen {
		t.Error("resize overrode the manual toggle")
	}
}

func TestSelectTrackClosesSidebarWhenCompact(t *testing.T) {
	s, _ := newTestScreen()
	s.Update(tea.WindowSizeMsg{Width: 90, Height: 30})

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if !s.sidebarOpen || !s.focusSidebar {
		t.Fatal("tab should open and focus the sidebar")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.sidebarOpen {
		t.Error("track selection should close the sidebar on narrow terminals")
	}
	if s.focusSidebar {
		t.Error("focus should return to the composer")
	}

	name, _ := s.HeaderStatus()
	if name != "Python" {
		t.Errorf("header track = %q, want Python", name)
	}
}

func TestTickStopsWhenIdle(t *testing.T) {
	s, _ := newTestScreen("ok")

	s.input.SetValue("hello")
	pressEnter(s)
	if _, cmd := s.Update(tickMsg{}); cmd == nil {
		t.Error("tick should reschedule while awaiting")
	}

	s.Update(replyMsg{Text: "ok"})
	if _, cmd := s.Update(tickMsg{}); cmd != nil {
		t.Error("tick should stop once the reply arrived")
	}
}

func TestViewShowsWelcomeAndTyping(t *testing.T) {
	s, _ := newTestScreen("ok")

	view := s.View(120, 40)
	if !strings.Contains(view, "Welcome to Skill Bridge AI!") {
		t.Error("welcome message missing from view")
	}

	s.input.SetValue("hi")
	pressEnter(s)
	view = s.View(120, 40)
	if !strings.Contains(view, "Skill Bridge is thinking") {
		t.Error("typing indicator missing while awaiting")
	}
}

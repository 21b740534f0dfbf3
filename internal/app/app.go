package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	conv "github.com/skillbridge-ai/skillbridge/internal/chat"
	"github.com/skillbridge-ai/skillbridge/internal/gateway"
	"github.com/skillbridge-ai/skillbridge/internal/screen"
	chatscreen "github.com/skillbridge-ai/skillbridge/internal/screens/chat"
	"github.com/skillbridge-ai/skillbridge/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Controller *conv.Controller
	Gateway    *gateway.Gateway
}

// AppModel is the root Bubble Tea model. The chat screen is the whole
// application, so there is no screen stack to route between.
type AppModel struct {
	active screen.Screen
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	return AppModel{
		active: chatscreen.New(opts.Controller, opts.Gateway),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	var trackName string
	var percent int
	if hs, ok := m.active.(screen.HeaderStatusProvider); ok {
		trackName, percent = hs.HeaderStatus()
	}
	header := layout.RenderHeader(trackName, percent, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if kh, ok := m.active.(screen.KeyHintProvider); ok {
		footerHints = kh.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.active.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

package components

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// ComposerRows is the visible height of the input area.
const ComposerRows = 3

// Composer wraps bubbles/textarea for the chat input. Enter is left to
// the screen to submit; newlines go in with shift+enter or ctrl+j.
type Composer struct {
	Model textarea.Model
}

// NewComposer creates a focused multi-line input.
func NewComposer(placeholder string) Composer {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetHeight(ComposerRows)
	ta.KeyMap.InsertNewline = key.NewBinding(
		key.WithKeys("shift+enter", "ctrl+j"),
	)
	ta.Focus()
	return Composer{Model: ta}
}

// Init returns the initial command.
func (c Composer) Init() tea.Cmd {
	return c.Model.Focus()
}

// Update handles messages.
func (c Composer) Update(msg tea.Msg) (Composer, tea.Cmd) {
	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// View renders the input area.
func (c Composer) View() string {
	return c.Model.View()
}

// Value returns the current draft.
func (c Composer) Value() string {
	return c.Model.Value()
}

// Reset clears the draft.
func (c *Composer) Reset() {
	c.Model.Reset()
}

// SetValue replaces the draft.
func (c *Composer) SetValue(v string) {
	c.Model.SetValue(v)
}

// SetWidth resizes the input area.
func (c *Composer) SetWidth(w int) {
	c.Model.SetWidth(w)
}

// Focus gives the input keyboard focus.
func (c *Composer) Focus() tea.Cmd {
	return c.Model.Focus()
}

// Blur removes keyboard focus from the input.
func (c *Composer) Blur() {
	c.Model.Blur()
}

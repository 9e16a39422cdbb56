package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folderstar/internal/adapters/tui/styles"
	"folderstar/internal/ports"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y", "enter"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc", "q"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmationModel asks the user to accept or reject a prompt
type ConfirmationModel struct {
	ViewState
	Prompt ports.Prompt
	Keys   ConfirmKeyMap
}

// NewConfirmationModel creates a new confirmation model with default keys
func NewConfirmationModel() *ConfirmationModel {
	return &ConfirmationModel{
		Keys: DefaultConfirmKeys,
	}
}

// SetPrompt sets the question to ask
func (m *ConfirmationModel) SetPrompt(p ports.Prompt) {
	m.Prompt = p
}

// Init initializes the confirmation view
func (m *ConfirmationModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Confirm):
			return m, emit(PromptAnsweredMsg{Prompt: m.Prompt, Accept: true})
		case key.Matches(msg, m.Keys.Cancel):
			return m, emit(PromptAnsweredMsg{Prompt: m.Prompt, Accept: false})
		}
	}

	return m, nil
}

// RenderConfirmPrompt renders the accept/reject choices of a prompt
func RenderConfirmPrompt(p ports.Prompt) string {
	accept, reject := p.Accept, p.Reject
	if accept == "" {
		accept = "Yes"
	}
	if reject == "" {
		reject = "No"
	}
	return styles.HelpKey.Render("y") + " " + styles.HelpDesc.Render(accept) +
		styles.HelpSeparator.String() +
		styles.HelpKey.Render("n") + " " + styles.HelpDesc.Render(reject)
}

// View renders the confirmation view
func (m *ConfirmationModel) View() string {
	body := m.Prompt.Message + "\n\n" + RenderConfirmPrompt(m.Prompt)
	if m.Prompt.Modal {
		body = styles.Modal.Render(body)
	}

	return NewViewBuilder().
		Title("Confirm").
		Line(body).
		String()
}

package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folderstar/internal/application"
)

var welcomeAck = key.NewBinding(
	key.WithKeys("enter", "esc", " "),
	key.WithHelp("enter", application.WelcomeAck),
)

// WelcomeModel shows the one-time onboarding message
type WelcomeModel struct {
	ViewState
	message string
}

// NewWelcomeModel creates a welcome view for message
func NewWelcomeModel(message string) *WelcomeModel {
	return &WelcomeModel{message: message}
}

// Init initializes the welcome view
func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the welcome view
func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if key.Matches(msg, welcomeAck) {
			return m, emit(SwitchToPanelMsg{})
		}
	}
	return m, nil
}

// View renders the welcome view
func (m *WelcomeModel) View() string {
	return NewViewBuilder().
		Title("Folder Star").
		Line(m.message).
		BlankLine().
		Help(welcomeAck).
		String()
}

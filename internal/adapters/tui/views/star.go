package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folderstar/internal/adapters/tui/styles"
	"folderstar/internal/application"
)

// StarModel is the form used to star a folder by path or file:// URI
type StarModel struct {
	ViewState
	view  *application.StarredFoldersView
	flags FlagReader
	form  *InputForm
}

// NewStarModel creates a new star form
func NewStarModel(view *application.StarredFoldersView, flags FlagReader) *StarModel {
	return &StarModel{
		view:  view,
		flags: flags,
		form:  NewInputForm(NewInputField("Folder path", "/path/to/folder or file:///path", 0)),
	}
}

// Prepare resets the form and prefills it with initial
func (m *StarModel) Prepare(initial string) {
	m.ClearMessage()
	m.form.Reset()
	m.form.SetValue(initial)
	m.track()
}

// Init initializes the star view
func (m *StarModel) Init() tea.Cmd {
	return m.form.Init()
}

// Value returns the typed target
func (m *StarModel) Value() string {
	return m.form.Value()
}

// Update handles messages for the star view
func (m *StarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, emit(SwitchToPanelMsg{})

		case key.Matches(msg, m.form.Keys.Submit):
			target := m.form.Value()
			if err := application.ValidateRequired("folderPath", target); err != nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			return m, emit(StarFolderMsg{Target: target})
		}
	}

	changed, cmd := m.form.Update(msg)
	if changed {
		m.ClearMessage()
		m.track()
	}
	return m, cmd
}

// track publishes whether the typed path is already starred. Input that is
// not a filesystem location leaves the flag as it was.
func (m *StarModel) track() {
	path, err := application.ResolveTarget(m.form.Value())
	if err != nil {
		return
	}
	m.view.SelectionChanged(path)
}

// Starred reports whether the badge is shown for the current input
func (m *StarModel) Starred() bool {
	return strings.TrimSpace(m.form.Value()) != "" && m.flags != nil && m.flags.Get(application.ContextIsStarred)
}

// View renders the star view
func (m *StarModel) View() string {
	var badge string
	if m.Starred() {
		badge = styles.StarredBadge.Render(styles.GlyphStar + " starred")
	}

	return NewViewBuilder().
		Title("Star Folder").
		Subtitle("Relative paths resolve against the working directory").
		Line(m.form.Render(badge)).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp("star")).
		String()
}

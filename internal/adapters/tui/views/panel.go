package views

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folderstar/internal/application"
	"folderstar/internal/application/commands"
)

// PanelKeyMap defines key bindings for the starred folders panel
type PanelKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Open     key.Binding
	Star     key.Binding
	Remove   key.Binding
	Clear    key.Binding
	Refresh  key.Binding
	Yank     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var PanelKeys = PanelKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "prev page"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "next page"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "o"),
		key.WithHelp("enter", "open"),
	),
	Star: key.NewBinding(
		key.WithKeys("s", "n"),
		key.WithHelp("s", "star"),
	),
	Remove: key.NewBinding(
		key.WithKeys("d", "x"),
		key.WithHelp("d", "remove"),
	),
	Clear: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "clear all"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// panelChrome is the number of lines taken by the title, footer and padding
const panelChrome = 9

// ItemsLoadedMsg carries a fresh rendering of the starred folders
type ItemsLoadedMsg struct {
	Items []application.DisplayItem
}

// PanelModel is the Starred Folders panel: a flat, sorted list of items
type PanelModel struct {
	ViewState
	view            *application.StarredFoldersView
	flags           FlagReader
	keys            PanelKeyMap
	items           []application.DisplayItem
	pager           *Paginator
	loaded          bool
	copyToClipboard func(string) error
}

// NewPanelModel creates the panel over view
func NewPanelModel(view *application.StarredFoldersView, flags FlagReader) *PanelModel {
	return &PanelModel{
		view:            view,
		flags:           flags,
		keys:            PanelKeys,
		pager:           NewPaginator(10),
		copyToClipboard: clipboard.WriteAll,
	}
}

// Init loads the items
func (m *PanelModel) Init() tea.Cmd {
	return m.Reload()
}

// Reload re-renders every item; existence is checked again
func (m *PanelModel) Reload() tea.Cmd {
	return func() tea.Msg {
		items, err := commands.NewListCommand(m.view).Execute(context.Background())
		if err != nil {
			return StatusMsg{Text: err.Error(), Err: true}
		}
		return ItemsLoadedMsg{Items: items}
	}
}

// Items returns the currently displayed items
func (m *PanelModel) Items() []application.DisplayItem {
	return m.items
}

// Selected returns the item under the cursor
func (m *PanelModel) Selected() (application.DisplayItem, bool) {
	i := m.pager.Cursor()
	if i >= 0 && i < len(m.items) {
		return m.items[i], true
	}
	return application.DisplayItem{}, false
}

// Update handles messages for the panel
func (m *PanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.syncFlags()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case ItemsLoadedMsg:
		m.setItems(msg.Items)
		return m, nil

	case StatusMsg:
		if msg.Text != "" {
			m.SetMessage(msg.Text, msg.Err)
		}
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, m.keys.PageUp):
			m.pager.PrevPage()
			return m, nil

		case key.Matches(msg, m.keys.PageDown):
			m.pager.NextPage()
			return m, nil

		case key.Matches(msg, m.keys.Open):
			if item, ok := m.Selected(); ok {
				return m, emit(OpenFolderMsg{Folder: item.Folder})
			}
			return m, nil

		case key.Matches(msg, m.keys.Remove):
			if item, ok := m.Selected(); ok {
				return m, emit(RemoveFolderMsg{Folder: item.Folder})
			}
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			return m, emit(ClearAllMsg{})

		case key.Matches(msg, m.keys.Refresh):
			return m, emit(RefreshMsg{})

		case key.Matches(msg, m.keys.Star):
			return m, emit(SwitchToStarMsg{})

		case key.Matches(msg, m.keys.Yank):
			if item, ok := m.Selected(); ok {
				return m, m.yank(item.ResourcePath)
			}
			return m, nil

		case key.Matches(msg, m.keys.Help):
			return m, emit(SwitchToHelpMsg{})
		}
	}

	return m, nil
}

func (m *PanelModel) yank(path string) tea.Cmd {
	return func() tea.Msg {
		if err := m.copyToClipboard(path); err != nil {
			return StatusMsg{Text: fmt.Sprintf("failed to copy path: %v", err), Err: true}
		}
		return StatusMsg{Text: "Copied " + path}
	}
}

func (m *PanelModel) setItems(items []application.DisplayItem) {
	// Keep the cursor on the same folder across reloads when possible
	var current string
	if item, ok := m.Selected(); ok {
		current = item.Folder.Path
	}

	m.items = items
	m.loaded = true
	m.pager.SetTotal(len(items))

	for i, item := range items {
		if item.Folder.Path == current {
			m.pager.SetCursor(i)
			break
		}
	}
}

// syncFlags enables "clear all" only while something is starred
func (m *PanelModel) syncFlags() {
	m.keys.Clear.SetEnabled(m.flags != nil && m.flags.Get(application.ContextHasStarredFolders))
}

// SetSize updates the dimensions and the page size
func (m *PanelModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(height - panelChrome)
}

// View renders the panel
func (m *PanelModel) View() string {
	m.syncFlags()

	v := NewViewBuilder().Title("★ Starred Folders")
	if !m.loaded {
		return v.Line("Loading...").String()
	}

	v.Subtitle(fmt.Sprintf("%d starred", len(m.items)))

	if len(m.items) == 0 {
		v.Muted("No starred folders yet. Press s to star one.")
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		v.Line(RenderItem(m.items[i], i == m.pager.Cursor()))
	}

	if m.pager.TotalPages() > 1 {
		v.Muted(fmt.Sprintf("page %d/%d", m.pager.CurrentPage(), m.pager.TotalPages()))
	}

	if item, ok := m.Selected(); ok {
		v.BlankLine().Muted(item.Tooltip)
	}

	if m.Message != "" {
		v.BlankLine().Message(m.Message, m.MessageErr)
	} else {
		v.BlankLine()
	}

	return v.Help(
		m.keys.Up, m.keys.Down, m.keys.Open, m.keys.Star, m.keys.Remove,
		m.keys.Clear, m.keys.Refresh, m.keys.Yank, m.keys.Help, m.keys.Quit,
	).String()
}

// emit wraps msg in a command
func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"folderstar/internal/adapters/tui/views"
	"folderstar/internal/application"
	"folderstar/internal/application/commands"
	"folderstar/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPanel ViewState = iota
	ViewStar
	ViewConfirm
	ViewWelcome
	ViewHelp
)

// DeleteSource reports starred folders removed from disk
type DeleteSource interface {
	Deleted() <-chan string
	Sync(paths []string)
}

// Options wires the collaborators of the TUI
type Options struct {
	FS       ports.FileSystem
	Revealer ports.Revealer
	Editor   ports.EditorCommand // Opens folders in a new window; may be nil
	Watcher  DeleteSource        // Optional
	Flags    *Flags
	Welcome  string // Shown before the panel when non-empty
}

// App is the main TUI application model
type App struct {
	ctx      context.Context
	view     *application.StarredFoldersView
	opts     Options
	prompter *Prompter
	windows  *WindowLauncher

	state    ViewState
	previous ViewState // Restored once a confirmation is answered
	pending  *confirmRequestMsg

	panel   *views.PanelModel
	star    *views.StarModel
	confirm *views.ConfirmationModel
	welcome *views.WelcomeModel
	help    *views.HelpModel
}

type storeChangedMsg struct{}

type folderDeletedMsg struct {
	path string
}

// NewApp creates a new TUI application over view
func NewApp(ctx context.Context, view *application.StarredFoldersView, opts Options) *App {
	if opts.Flags == nil {
		opts.Flags = NewFlags()
	}

	a := &App{
		ctx:      ctx,
		view:     view,
		opts:     opts,
		prompter: NewPrompter(),
		windows:  NewWindowLauncher(opts.Editor),
		state:    ViewPanel,
		panel:    views.NewPanelModel(view, opts.Flags),
		star:     views.NewStarModel(view, opts.Flags),
		confirm:  views.NewConfirmationModel(),
		welcome:  views.NewWelcomeModel(opts.Welcome),
		help:     views.NewHelpModel(),
	}
	if opts.Welcome != "" {
		a.state = ViewWelcome
	}
	a.syncWatcher()
	return a
}

// Prompter returns the confirmer used by commands run from the TUI
func (a *App) Prompter() *Prompter {
	return a.prompter
}

// State returns the current view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.panel.Init(),
		a.prompter.wait(),
		a.windows.wait(),
		a.waitForChange(),
		a.waitForDelete(),
	)
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.panel.SetSize(msg.Width, msg.Height)
		a.star.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.welcome.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	// Core notifications
	case storeChangedMsg:
		a.syncWatcher()
		return a, tea.Batch(a.panel.Reload(), a.waitForChange())

	case folderDeletedMsg:
		a.view.HandleDeleted(msg.path)
		return a, a.waitForDelete()

	// Confirmations requested by running commands
	case confirmRequestMsg:
		a.pending = &msg
		if a.state != ViewConfirm {
			a.previous = a.state
		}
		a.state = ViewConfirm
		a.confirm.SetPrompt(msg.prompt)
		return a, nil

	case views.PromptAnsweredMsg:
		if a.pending != nil {
			a.pending.reply <- msg.Accept
			a.pending = nil
		}
		a.state = a.previous
		return a, a.prompter.wait()

	// Editor windows
	case execRequestMsg:
		return a, tea.Batch(
			tea.ExecProcess(msg.cmd, func(err error) tea.Msg {
				return editorFinishedMsg{err: err}
			}),
			a.windows.wait(),
		)

	case editorFinishedMsg:
		if msg.err != nil {
			a.panel.SetMessage(fmt.Sprintf("editor exited: %v", msg.err), true)
		}
		return a, nil

	// View switching messages
	case views.SwitchToPanelMsg:
		a.state = ViewPanel
		return a, a.panel.Reload()

	case views.SwitchToStarMsg:
		a.state = ViewStar
		a.star.Prepare("")
		return a, a.star.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	// Command requests
	case views.OpenFolderMsg:
		return a, a.run(a.open(msg.Folder))

	case views.RemoveFolderMsg:
		return a, a.run(func(ctx context.Context) (string, error) {
			res, err := commands.NewRemoveCommand(a.view.Store(), msg.Folder).Execute(ctx)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		})

	case views.StarFolderMsg:
		a.state = ViewPanel
		return a, a.run(func(ctx context.Context) (string, error) {
			res, err := commands.NewStarCommand(a.view.Store(), msg.Target).Execute(ctx)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		})

	case views.ClearAllMsg:
		return a, a.run(func(ctx context.Context) (string, error) {
			res, err := commands.NewClearCommand(a.view.Store(), a.prompter).Execute(ctx)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		})

	case views.RefreshMsg:
		return a, a.run(func(ctx context.Context) (string, error) {
			res, err := commands.NewRefreshCommand(a.view).Execute(ctx)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		})

	case views.StatusMsg, views.ItemsLoadedMsg:
		_, cmd := a.panel.Update(msg)
		return a, cmd
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewPanel:
		_, cmd = a.panel.Update(msg)
	case ViewStar:
		_, cmd = a.star.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	case ViewWelcome:
		_, cmd = a.welcome.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) open(folder application.StarredFolder) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		deps := commands.OpenDeps{
			Store:     a.view.Store(),
			FS:        a.opts.FS,
			Revealer:  a.opts.Revealer,
			Windows:   a.windows,
			Confirmer: a.prompter,
		}
		res, err := commands.NewOpenCommand(deps, folder).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	}
}

// run executes fn off the update loop and reports its outcome on the
// status line. A declined confirmation is not an error.
func (a *App) run(fn func(context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		message, err := fn(a.ctx)
		switch {
		case errors.Is(err, application.ErrDeclined):
			return views.StatusMsg{}
		case err != nil:
			return views.StatusMsg{Text: err.Error(), Err: true}
		}
		return views.StatusMsg{Text: message}
	}
}

func (a *App) waitForChange() tea.Cmd {
	changes := a.view.Changes()
	return func() tea.Msg {
		<-changes
		return storeChangedMsg{}
	}
}

func (a *App) waitForDelete() tea.Cmd {
	if a.opts.Watcher == nil {
		return nil
	}
	deleted := a.opts.Watcher.Deleted()
	return func() tea.Msg {
		path, ok := <-deleted
		if !ok {
			return nil
		}
		return folderDeletedMsg{path: path}
	}
}

func (a *App) syncWatcher() {
	if a.opts.Watcher == nil {
		return
	}
	folders := a.view.Store().List()
	paths := make([]string, 0, len(folders))
	for _, f := range folders {
		paths = append(paths, f.Path)
	}
	a.opts.Watcher.Sync(paths)
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewStar:
		return a.star.View()
	case ViewConfirm:
		return a.confirm.View()
	case ViewWelcome:
		return a.welcome.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.panel.View()
	}
}

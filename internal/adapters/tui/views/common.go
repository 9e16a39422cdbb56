package views

import (
	"folderstar/internal/application"
	"folderstar/internal/ports"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// FlagReader exposes the derived context flags to views
type FlagReader interface {
	Get(key string) bool
}

// StatusMsg carries the outcome of a command back to the panel. An empty
// Text leaves the status line untouched.
type StatusMsg struct {
	Text string
	Err  bool
}

// Messages for view switching
type SwitchToPanelMsg struct{}

type SwitchToStarMsg struct{}

type SwitchToHelpMsg struct{}

// Requests handled by the application model, which owns the command
// collaborators

type OpenFolderMsg struct {
	Folder application.StarredFolder
}

type RemoveFolderMsg struct {
	Folder application.StarredFolder
}

type StarFolderMsg struct {
	Target string
}

type ClearAllMsg struct{}

type RefreshMsg struct{}

// PromptAnsweredMsg is emitted by the confirmation view
type PromptAnsweredMsg struct {
	Prompt ports.Prompt
	Accept bool
}

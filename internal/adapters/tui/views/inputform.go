package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"folderstar/internal/adapters/tui/styles"
)

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// DefaultInputFormKeys returns the default input form key bindings
var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// InputField is a labelled text input
type InputField struct {
	Label string
	Input textinput.Model
}

// NewInputField creates a new input field with the given label and placeholder
func NewInputField(label, placeholder string, charLimit int) InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	return InputField{
		Label: label,
		Input: input,
	}
}

// InputForm wraps a single focused input field and reports edits
type InputForm struct {
	Field InputField
	Keys  InputFormKeyMap
}

// NewInputForm creates a focused input form
func NewInputForm(field InputField) *InputForm {
	form := &InputForm{
		Field: field,
		Keys:  DefaultInputFormKeys,
	}
	form.Field.Input.Focus()
	return form
}

// Init returns the blink command for the input
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the input. changed reports whether the value was
// edited.
func (f *InputForm) Update(msg tea.Msg) (changed bool, cmd tea.Cmd) {
	before := f.Field.Input.Value()
	f.Field.Input, cmd = f.Field.Input.Update(msg)
	return f.Field.Input.Value() != before, cmd
}

// Value returns the value as typed
func (f *InputForm) Value() string {
	return f.Field.Input.Value()
}

// SetValue sets the value and moves the cursor to the end
func (f *InputForm) SetValue(value string) {
	f.Field.Input.SetValue(value)
	f.Field.Input.CursorEnd()
}

// Reset clears the value and refocuses the input
func (f *InputForm) Reset() {
	f.Field.Input.SetValue("")
	f.Field.Input.Focus()
}

// Render renders the label and the input box. badge, when non-empty, is
// drawn next to the label.
func (f *InputForm) Render(badge string) string {
	var b strings.Builder

	b.WriteString(styles.InputLabel.Render(f.Field.Label))
	if badge != "" {
		b.WriteString(" ")
		b.WriteString(badge)
	}
	b.WriteString("\n")

	if f.Field.Input.Focused() {
		b.WriteString(styles.InputFocused.Render(f.Field.Input.View()))
	} else {
		b.WriteString(styles.InputField.Render(f.Field.Input.View()))
	}

	return b.String()
}

// RenderHelp renders the help text for the form
func (f *InputForm) RenderHelp(submitText string) string {
	parts := []string{
		styles.HelpKey.Render(f.Keys.Submit.Help().Key) + " " + styles.HelpDesc.Render(submitText),
		RenderKeyHelp(f.Keys.Cancel),
	}
	return strings.Join(parts, "  ")
}

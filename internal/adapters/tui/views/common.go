package views

import (
	"github.com/atotto/clipboard"
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

// CopyFunc puts text on the system clipboard
type CopyFunc func(text string) error

// SystemClipboard copies through the OS clipboard tools
func SystemClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// Messages for view switching
type SwitchToSearchMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}

// OpenEditorMsg asks the app to hand the terminal to the editor
type OpenEditorMsg struct {
	Path string
}

// OpenExternalMsg asks the app to open a document outside the terminal
type OpenExternalMsg struct {
	Path string
}

// LaunchedMsg reports the outcome of an OpenExternalMsg
type LaunchedMsg struct {
	Path string
	Err  error
}

package ports

import "os/exec"

// EditorOpener opens wiki documents in an external editor
type EditorOpener interface {
	// OpenFile opens path and waits for the editor to exit
	OpenFile(path string) error

	// Command returns the editor process without starting it, so a TUI can
	// hand the terminal over with tea.ExecProcess
	Command(path string) (*exec.Cmd, error)
}

// Launcher opens wiki documents with the desktop's default application
type Launcher interface {
	Open(path string) error
}

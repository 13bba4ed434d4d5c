package editor

import (
	"errors"
	"os"
	"os/exec"
	"strings"
)

// ErrNoEditor is returned when no editor is configured or installed
var ErrNoEditor = errors.New("no editor found: set $EDITOR environment variable")

// fallbackEditors are tried in order when neither the configured editor nor
// $EDITOR/$VISUAL is set
var fallbackEditors = []string{"vim", "nvim", "vi", "nano"}

// Opener implements ports.EditorOpener
type Opener struct {
	preferred string
	lookPath  func(string) (string, error)
}

// NewOpener creates an editor opener. preferred, when not empty, wins over
// the environment and may carry arguments ("code --wait").
func NewOpener(preferred string) *Opener {
	return &Opener{preferred: preferred, lookPath: exec.LookPath}
}

// OpenFile opens a file in the user's preferred editor
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor
// This is useful for integrating with bubbletea's ExecProcess
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	argv := o.editorArgs()
	if len(argv) == 0 {
		return nil, ErrNoEditor
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// editorArgs returns the editor program and its arguments
func (o *Opener) editorArgs() []string {
	for _, candidate := range []string{o.preferred, os.Getenv("EDITOR"), os.Getenv("VISUAL")} {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			return fields
		}
	}

	for _, editor := range fallbackEditors {
		if path, err := o.lookPath(editor); err == nil {
			return []string{path}
		}
	}

	return nil
}

package launcher

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Launcher opens wiki files with the desktop's default application
type Launcher struct {
	wikiPath string
}

// NewLauncher creates a launcher for files inside wikiPath
func NewLauncher(wikiPath string) *Launcher {
	return &Launcher{wikiPath: filepath.Clean(wikiPath)}
}

// Open hands the file to the desktop and returns once it is launched
func (l *Launcher) Open(filePath string) error {
	cmd, err := l.Command(filePath)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// BuildURI returns the file:// URI of a document inside the wiki
func (l *Launcher) BuildURI(filePath string) (string, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	root, err := filepath.Abs(l.wikiPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve wiki path: %w", err)
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", fmt.Errorf("failed to get relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("file is outside the wiki: %s", filePath)
	}

	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}

// Command returns the platform opener for the file without starting it
func (l *Launcher) Command(filePath string) (*exec.Cmd, error) {
	uri, err := l.BuildURI(filePath)
	if err != nil {
		return nil, err
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", uri), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", uri), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", uri), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

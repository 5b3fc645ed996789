package render

import (
	"os/exec"
	"path/filepath"
	"runtime"
)

// Opener launches a viewer for a written file.
type Opener func(path string) error

// OpenInViewer opens path with the platform's default handler for .html files.
// It returns once the viewer process has started.
func OpenInViewer(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return viewerCommand(runtime.GOOS, abs).Start()
}

// viewerCommand returns the launcher for goos.
func viewerCommand(goos, path string) *exec.Cmd {
	switch goos {
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		return exec.Command("open", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

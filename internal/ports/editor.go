package ports

import "os/exec"

// EditorOpener opens files from the review screen in an external editor
type EditorOpener interface {
	// Command returns the editor process for path, ready for tea.ExecProcess
	Command(path string) (*exec.Cmd, error)
}

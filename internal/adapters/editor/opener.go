package editor

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"resprune/internal/ports"
)

// ErrNoEditor is returned when neither configuration nor environment names an editor
var ErrNoEditor = errors.New("no editor found: set $EDITOR or $VISUAL")

// fallbacks are tried in order when nothing is configured
var fallbacks = []string{"nvim", "vim", "vi", "nano"}

// Opener builds editor processes for staged plan entries
type Opener struct {
	command  string
	getenv   func(string) string
	lookPath func(string) (string, error)
}

var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates an opener. command may carry arguments ("code --wait");
// when empty, $VISUAL then $EDITOR then a known editor on $PATH is used.
func NewOpener(command string) *Opener {
	return &Opener{
		command:  command,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
	}
}

// Command returns an exec.Cmd that edits path on the user's terminal
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	argv := strings.Fields(o.resolve())
	if len(argv) == 0 {
		return nil, ErrNoEditor
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

func (o *Opener) resolve() string {
	if strings.TrimSpace(o.command) != "" {
		return o.command
	}
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if v := o.getenv(env); strings.TrimSpace(v) != "" {
			return v
		}
	}
	for _, name := range fallbacks {
		if path, err := o.lookPath(name); err == nil {
			return path
		}
	}
	return ""
}

package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"resprune/internal/domain"
	"resprune/internal/ports"
)

// CommandError reports a git invocation that exited with a non-zero status.
// It carries the exit code so the process can terminate with it.
type CommandError struct {
	Args   []string
	Code   int
	Stderr string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s exited with status %d", strings.Join(e.Args, " "), e.Code)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// ExitCode returns the exit status of the failed invocation
func (e *CommandError) ExitCode() int {
	return e.Code
}

// Repository implements ports.VersionControl by running the git binary
type Repository struct {
	workingDir string

	// For mocking in tests
	commandContext func(ctx context.Context, name string, args ...string) *exec.Cmd
}

var _ ports.VersionControl = (*Repository)(nil)

// NewRepository creates a git client rooted at workingDir
func NewRepository(workingDir string) *Repository {
	return &Repository{
		workingDir:     workingDir,
		commandContext: exec.CommandContext,
	}
}

// CurrentRevision returns the commit id of HEAD
func (r *Repository) CurrentRevision(ctx context.Context) (string, error) {
	out, err := r.run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ChangedFiles lists paths, relative to the repository root, that changed
// between two revisions with the given kind.
func (r *Repository) ChangedFiles(ctx context.Context, oldRevision, newRevision string, kind domain.ChangeKind) ([]string, error) {
	filter, err := diffFilter(kind)
	if err != nil {
		return nil, err
	}

	// A rename must surface as a deletion plus an addition
	out, err := r.run(ctx, "diff", oldRevision, newRevision, "--name-only", "--no-renames", "--diff-filter="+filter)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}

// diffFilter maps a change kind to git's --diff-filter letter
func diffFilter(kind domain.ChangeKind) (string, error) {
	switch kind {
	case domain.ChangeChanged:
		return "M", nil
	case domain.ChangeNew:
		return "A", nil
	case domain.ChangeDeleted:
		return "D", nil
	default:
		return "", fmt.Errorf("unsupported change kind %v", kind)
	}
}

func (r *Repository) run(ctx context.Context, args ...string) (string, error) {
	cmd := r.commandContext(ctx, "git", args...)
	cmd.Dir = r.workingDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &CommandError{
				Args:   args,
				Code:   exitErr.ExitCode(),
				Stderr: strings.TrimSpace(stderr.String()),
			}
		}
		return "", fmt.Errorf("failed to run git: %w", err)
	}
	return stdout.String(), nil
}

package classify

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// FileCommand classifies files by running `<Command> -b -- <path>`.
type FileCommand struct {
	Command string // Default: "file".
}

// NewFileCommand returns a FileCommand using command, or "file" when empty.
func NewFileCommand(command string) *FileCommand {
	if command == "" {
		command = "file"
	}
	return &FileCommand{Command: command}
}

// Describe runs the command and returns its first output line.
func (f *FileCommand) Describe(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, f.Command, "-b", "--", path)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s %q: %w: %s", f.Command, path, err, msg)
		}
		return "", fmt.Errorf("%s %q: %w", f.Command, path, err)
	}
	return firstLine(out)
}

// Version returns the first line of `<Command> --version`.
func (f *FileCommand) Version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, f.Command, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("%s --version: %w", f.Command, err)
	}
	return firstLine(out)
}

// firstLine returns the first line of out without its terminator.
func firstLine(out []byte) (string, error) {
	s := string(out)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimRight(s, "\r")
	if strings.TrimSpace(s) == "" {
		return "", ErrEmptyOutput
	}
	return s, nil
}

// Package editor opens entries in the user's editor
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Editors with a CLI that needs --wait to block until the file is closed
var guiEditors = map[string]bool{
	"code":      true,
	"subl":      true,
	"atom":      true,
	"notepad++": true,
	"gedit":     true,
}

// ErrNoEditor is returned for an empty editor command
var ErrNoEditor = errors.New("no editor configured")

// IsGUI reports whether editor is a known GUI editor
func IsGUI(editor string) bool {
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		return false
	}
	return guiEditors[strings.ToLower(filepath.Base(fields[0]))]
}

// Command builds the command that edits path. The editor string may carry
// arguments, e.g. "code -n". GUI editors get --wait.
func Command(editor, path string) (*exec.Cmd, error) {
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		return nil, ErrNoEditor
	}
	name := fields[0]
	if strings.HasPrefix(name, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			name = filepath.Join(home, name[2:])
		}
	}

	args := fields[1:]
	if IsGUI(editor) && !contains(args, "--wait") && !contains(args, "-w") {
		args = append(args, "--wait")
	}
	args = append(args, path)
	return exec.Command(name, args...), nil
}

// Open edits path and waits for the editor to finish. Terminal editors share
// this process's terminal and a non-zero exit is an error. A GUI editor
// that can't be started with --wait is started detached instead.
func Open(path, editor string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	cmd, err := Command(editor, abs)
	if err != nil {
		return err
	}

	if IsGUI(editor) {
		if err := cmd.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return nil
			}
			return detach(editor, abs)
		}
		return nil
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with code %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to open editor %q: %w", editor, err)
	}
	return nil
}

func detach(editor, path string) error {
	fields := strings.Fields(editor)
	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open editor %q: %w", editor, err)
	}
	return cmd.Process.Release()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

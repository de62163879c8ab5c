// SPDX-License-Identifier: MIT

// Package editorlaunch resolves and runs the user's text editor against
// the scratch listing file.
package editorlaunch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/arborfs/treedit"
)

// fallbackCandidates is tried, in order, once $VISUAL and $EDITOR are
// both unset or unresolvable.
var fallbackCandidates = []string{"nano", "vi", "vim", "nvim"}

// Launch resolves an editor command and runs it against path, with
// stdin/stdout/stderr inherited from the current process so the editor
// gets a real terminal. It blocks until the editor exits. Errors are
// treedit.ErrNoEditorAvailable or *treedit.EditorExitError.
func Launch(path string) error {
	command, err := resolve()
	if err != nil {
		return err
	}

	cmd := exec.Command(command, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &treedit.EditorExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("run editor %q: %w", command, err)
	}

	return nil
}

// resolve picks the editor command: $VISUAL, then $EDITOR, then the
// first fallback candidate found on PATH.
func resolve() (string, error) {
	for _, candidate := range []string{os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if candidate == "" {
			continue
		}
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}

	for _, candidate := range fallbackCandidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}

	return "", treedit.ErrNoEditorAvailable
}

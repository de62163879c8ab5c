// SPDX-License-Identifier: MIT

// Package cli wires the walker, editor launcher, planner, UI, and
// executor into the flow the treedit command runs.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/arborfs/treedit"
	"github.com/arborfs/treedit/internal/editorlaunch"
	"github.com/arborfs/treedit/internal/executor"
	"github.com/arborfs/treedit/internal/scratch"
	"github.com/arborfs/treedit/internal/ui"
	"github.com/arborfs/treedit/internal/walk"
)

// Options mirrors the CLI's flags.
type Options struct {
	NoGitIgnore bool
	Hidden      bool
}

// Run executes one full walk -> edit -> plan -> confirm -> apply cycle
// against dir.
func Run(ctx context.Context, dir string, opts Options) error {
	slog.Info("walking directory", "dir", dir)
	oldListing, err := walk.Walk(dir, walk.Options{NoGitIgnore: opts.NoGitIgnore, Hidden: opts.Hidden})
	if err != nil {
		return fmt.Errorf("walk %s: %w", dir, err)
	}

	sf, err := scratch.New(oldListing.String())
	if err != nil {
		return fmt.Errorf("create scratch file: %w", err)
	}
	defer func() {
		if rmErr := sf.Remove(); rmErr != nil {
			slog.Debug("remove scratch file", "error", rmErr)
		}
	}()

	slog.Info("launching editor", "path", sf.Path())
	if err := editorlaunch.Launch(sf.Path()); err != nil {
		return fmt.Errorf("launch editor: %w", err)
	}

	edited, err := sf.Read()
	if err != nil {
		return fmt.Errorf("read edited listing: %w", err)
	}
	newListing := treedit.ParseListing(edited)

	slog.Debug("computing plan")
	ops, err := treedit.Plan(oldListing, newListing)
	if err != nil {
		return fmt.Errorf("compute plan: %w", err)
	}

	fmt.Println(ui.RenderPlan(ops))
	if len(ops) == 0 {
		return nil
	}

	confirmed, err := ui.Confirm(os.Stdin, os.Stdout.Fd(), true)
	if err != nil {
		return fmt.Errorf("confirmation prompt: %w", err)
	}
	if !confirmed {
		slog.Info("declined, no changes applied")
		return nil
	}

	slog.Info("applying plan", "operations", len(ops))
	if err := executor.NewRoot(dir).Apply(ops); err != nil {
		return fmt.Errorf("apply plan: %w", err)
	}

	return nil
}

// ExitCodeFor maps a Run error to a process exit code: 0 for success
// (nil error, including a declined confirmation or an empty plan),
// non-zero otherwise.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

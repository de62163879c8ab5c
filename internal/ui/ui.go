// SPDX-License-Identifier: MIT

// Package ui renders a plan for review and asks the user to confirm
// before it is applied.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/arborfs/treedit"
)

var (
	createStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))  // green
	copyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))  // cyan
	moveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))  // yellow
	removeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))  // red
)

// RenderPlan formats ops for display, one line per operation, colored
// by op kind.
func RenderPlan(ops []treedit.Operation) string {
	if len(ops) == 0 {
		return "no changes"
	}

	lines := make([]string, len(ops))
	for i, op := range ops {
		lines[i] = renderOp(op)
	}
	return strings.Join(lines, "\n")
}

func renderOp(op treedit.Operation) string {
	switch op.Kind {
	case treedit.OpCreate:
		return createStyle.Render(op.String())
	case treedit.OpCopy:
		return copyStyle.Render(op.String())
	case treedit.OpMove:
		return moveStyle.Render(op.String())
	case treedit.OpRemove:
		return removeStyle.Render(op.String())
	default:
		return op.String()
	}
}

// Confirm asks the user whether to apply the plan, using an
// interactive huh.Confirm form when stdout is a terminal and a plain
// buffered-stdin y/N read otherwise, so the tool stays scriptable when
// piped.
func Confirm(stdin io.Reader, stdoutFd uintptr, interactiveHint bool) (bool, error) {
	if interactiveHint && isatty.IsTerminal(stdoutFd) {
		return confirmInteractive()
	}
	return confirmPlain(stdin)
}

func confirmInteractive() (bool, error) {
	var confirmed bool

	confirm := huh.NewConfirm().
		Title("Apply these changes?").
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}

	return confirmed, nil
}

func confirmPlain(stdin io.Reader) (bool, error) {
	fmt.Print("Apply these changes? [y/N]: ")

	reader := bufio.NewReader(stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

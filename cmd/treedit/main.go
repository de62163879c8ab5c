// SPDX-License-Identifier: MIT

// Command treedit lets a user restructure a directory tree by editing a
// text listing of its files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arborfs/treedit/internal/cli"
)

// version is overwritten at build time via -ldflags
// "-X main.version=...".
var version = "dev"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if code := run(); code != 0 {
		os.Exit(code)
	}
}

func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "treedit: panic: %v\n", r)
			code = 1
		}
	}()

	root := newRootCommand()
	if err := root.Execute(); err != nil {
		return cli.ExitCodeFor(err)
	}
	return 0
}

func newRootCommand() *cobra.Command {
	var opts cli.Options

	root := &cobra.Command{
		Use:     "treedit [dir]",
		Short:   "Restructure a directory tree by editing a listing of its files",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return cli.Run(cmd.Context(), dir, opts)
		},
		SilenceUsage: true,
	}

	root.Flags().BoolVar(&opts.NoGitIgnore, "no-git-ignore", false, "do not honor .gitignore files while walking")
	root.Flags().BoolVar(&opts.Hidden, "hidden", false, "include dotfiles and dot-directories")

	return root
}

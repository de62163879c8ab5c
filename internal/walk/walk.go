// SPDX-License-Identifier: MIT

// Package walk enumerates a directory tree and assigns dense ids to its
// regular files in deterministic order, producing the old Listing a
// plan is computed against.
package walk

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/woozymasta/pathrules"

	"github.com/arborfs/treedit"
)

// Options toggles the two walk behaviors the CLI exposes as flags.
type Options struct {
	// NoGitIgnore disables .gitignore honoring (default: honored).
	NoGitIgnore bool
	// Hidden includes dotfiles and files under dot-directories
	// (default: excluded).
	Hidden bool
}

// Walk enumerates root's regular files recursively and returns a
// Listing with dense ids 0..n-1 assigned in lexicographic full relative
// path order, so two successive walks of an unchanged tree assign
// identical ids.
func Walk(root string, opts Options) (treedit.Listing, error) {
	var paths []string
	if err := walkDir(root, "", nil, opts, &paths); err != nil {
		return nil, err
	}

	sort.Strings(paths)

	listing := make(treedit.Listing, len(paths))
	for i, p := range paths {
		listing[i] = treedit.NewEntry(treedit.IntID(i), p)
	}

	return listing, nil
}

// walkDir recurses into root/relDir, appending every accepted regular
// file's root-relative path (slash-separated) to out. rules accumulates
// the ignore rules inherited from ancestor .gitignore files.
func walkDir(root, relDir string, rules []pathrules.Rule, opts Options, out *[]string) error {
	absDir := filepath.Join(root, relDir)

	if !opts.NoGitIgnore {
		local, err := loadGitIgnoreRules(absDir, relDir)
		if err != nil {
			return err
		}
		if len(local) > 0 {
			combined := make([]pathrules.Rule, 0, len(rules)+len(local))
			combined = append(combined, rules...)
			combined = append(combined, local...)
			rules = combined
		}
	}

	var matcher *pathrules.Matcher
	if len(rules) > 0 {
		m, err := pathrules.NewMatcher(rules, pathrules.MatcherOptions{
			CaseSensitive: true,
			DefaultAction: pathrules.ActionInclude,
		})
		if err != nil {
			return fmt.Errorf("compile ignore rules under %q: %w", relDir, err)
		}
		matcher = m
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return fmt.Errorf("read directory %q: %w", absDir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !opts.Hidden && strings.HasPrefix(name, ".") {
			continue
		}

		relPath := name
		if relDir != "" {
			relPath = relDir + "/" + name
		}

		isDir := entry.IsDir()

		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("stat %q: %w", relPath, err)
		}
		mode := info.Mode()
		if mode&os.ModeSymlink != 0 {
			target, statErr := os.Stat(filepath.Join(root, relPath))
			if statErr != nil {
				// Broken symlink: skip rather than erroring the whole walk.
				continue
			}
			if target.IsDir() {
				// Never recurse into a symlinked directory.
				continue
			}
			isDir = false
			mode = target.Mode()
		}
		if !isDir && !mode.IsRegular() {
			// Sockets, FIFOs, devices and the like are not entries.
			continue
		}

		if matcher != nil && !matcher.Included(relPath, isDir) {
			continue
		}

		if isDir {
			if err := walkDir(root, relPath, rules, opts, out); err != nil {
				return err
			}
			continue
		}

		*out = append(*out, relPath)
	}

	return nil
}

// loadGitIgnoreRules parses absDir's .gitignore, if any, into
// pathrules.Rule values scoped to relDir. A line prefixed with "!"
// negates (re-includes); everything else excludes. Comments ("#") and
// blank lines are skipped.
func loadGitIgnoreRules(absDir, relDir string) ([]pathrules.Rule, error) {
	f, err := os.Open(filepath.Join(absDir, ".gitignore"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %q: %w", filepath.Join(relDir, ".gitignore"), err)
	}
	defer func() { _ = f.Close() }()

	var rules []pathrules.Rule
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		action := pathrules.ActionExclude
		if strings.HasPrefix(line, "!") {
			action = pathrules.ActionInclude
			line = line[1:]
		}

		pattern := strings.TrimPrefix(line, "/")
		if relDir != "" {
			pattern = relDir + "/" + pattern
		}

		rules = append(rules, pathrules.Rule{Action: action, Pattern: pattern})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %q: %w", filepath.Join(relDir, ".gitignore"), err)
	}

	return rules, nil
}

// SPDX-License-Identifier: MIT

// Package pathsafe rejects listing paths that would let a typo or a
// maliciously edited listing write outside the directory the tool was
// pointed at. A new listing's paths are free-form text the user typed
// into an editor; Check applies the same traversal/absolute-path
// defenses the executor needs before turning them into filesystem
// operations.
package pathsafe

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsafePath is wrapped by every rejection Check returns.
var ErrUnsafePath = errors.New("unsafe path")

// Check reports an error if path is empty, contains a NUL byte, is
// absolute (POSIX or a Windows drive-letter/UNC form), or contains any
// ".." segment, even one that would stay inside the walked root. It
// accepts both
// "/" and "\" as separators since a listing may be hand-edited on
// either platform.
func Check(path string) error {
	raw := strings.TrimSpace(path)
	if raw == "" {
		return fmt.Errorf("%w: empty path", ErrUnsafePath)
	}
	if strings.ContainsRune(raw, 0) {
		return fmt.Errorf("%w: %q contains a NUL byte", ErrUnsafePath, path)
	}
	if strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, `\`) {
		return fmt.Errorf("%w: %q is absolute", ErrUnsafePath, path)
	}

	slashed := strings.ReplaceAll(raw, `\`, "/")
	if hasWindowsDrivePrefix(slashed) {
		return fmt.Errorf("%w: %q is absolute", ErrUnsafePath, path)
	}

	for _, segment := range strings.Split(slashed, "/") {
		if segment == ".." {
			return fmt.Errorf("%w: %q escapes the root via \"..\"", ErrUnsafePath, path)
		}
	}

	return nil
}

// hasWindowsDrivePrefix reports whether path starts with a drive-root
// prefix such as "C:/".
func hasWindowsDrivePrefix(path string) bool {
	if len(path) < 3 {
		return false
	}
	return isASCIIAlpha(path[0]) && path[1] == ':' && path[2] == '/'
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

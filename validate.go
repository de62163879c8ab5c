// SPDX-License-Identifier: MIT

package treedit

import "fmt"

// ValidateOld asserts the invariants an old listing must satisfy:
// every entry has an id, ids are unique, and paths are unique.
// Violations here are programmer errors — the caller (typically the
// directory walker) controls the old listing — so the error should be
// treated as fatal rather than shown to the end user as a correctable
// mistake.
func ValidateOld(entries Listing) error {
	seenIDs := make(map[int]struct{}, len(entries))
	seenPaths := make(map[string]struct{}, len(entries))

	for _, e := range entries {
		if !e.HasID() {
			return fmt.Errorf("%w: old listing entry %q has no id", ErrInternal, e.Path)
		}

		id := *e.ID
		if _, dup := seenIDs[id]; dup {
			return fmt.Errorf("%w: old listing has duplicate id %d", ErrInternal, id)
		}
		seenIDs[id] = struct{}{}

		if _, dup := seenPaths[e.Path]; dup {
			return fmt.Errorf("%w: old listing has duplicate path %q", ErrInternal, e.Path)
		}
		seenPaths[e.Path] = struct{}{}
	}

	return nil
}

// ValidateNew checks the invariants a new listing must satisfy against
// the id space of the old listing: paths are unique, and every present
// id is in allowedIDs. Returns *DuplicatePathError or
// *InvalidFileIDError on the first violation found, scanning in
// listing order — these are user errors, surfaced verbatim to the CLI.
func ValidateNew(entries Listing, allowedIDs map[int]struct{}) error {
	seenPaths := make(map[string]struct{}, len(entries))

	for _, e := range entries {
		if _, dup := seenPaths[e.Path]; dup {
			return &DuplicatePathError{Path: e.Path}
		}
		seenPaths[e.Path] = struct{}{}

		if e.HasID() {
			if _, ok := allowedIDs[*e.ID]; !ok {
				return &InvalidFileIDError{ID: *e.ID}
			}
		}
	}

	return nil
}

// allowedIDSet builds the set of ids present in an old listing, for use
// as ValidateNew's allowedIDs argument.
func allowedIDSet(old Listing) map[int]struct{} {
	set := make(map[int]struct{}, len(old))
	for _, e := range old {
		if e.HasID() {
			set[*e.ID] = struct{}{}
		}
	}
	return set
}

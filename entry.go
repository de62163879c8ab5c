// SPDX-License-Identifier: MIT

package treedit

// Entry is a single line of a listing: a path, optionally tagged with
// the id of the old-listing file it refers to. An Entry with a nil ID
// denotes a brand-new file to be created empty. Entries are immutable
// value objects, compared structurally, and freely copyable.
type Entry struct {
	// ID is the stable identifier assigned to this file by the old
	// listing. Nil means "no id": the entry is a fresh file.
	ID *int
	// Path is the entry's path. The planner treats it as an opaque
	// string; it never inspects path syntax.
	Path string
}

// NewEntry builds an Entry. Pass a nil id for a fresh, id-less entry.
func NewEntry(id *int, path string) Entry {
	return Entry{ID: id, Path: path}
}

// HasID reports whether the entry carries an id.
func (e Entry) HasID() bool {
	return e.ID != nil
}

// Equal reports whether two entries have the same id (or both lack one)
// and the same path.
func (e Entry) Equal(other Entry) bool {
	if e.Path != other.Path {
		return false
	}
	if e.HasID() != other.HasID() {
		return false
	}
	if e.HasID() && *e.ID != *other.ID {
		return false
	}
	return true
}

// IntID returns a non-nil *int for id, for building test fixtures and
// for callers (such as the directory walker) that assign dense ids.
func IntID(id int) *int {
	return &id
}

// Listing is an ordered sequence of entries. Two kinds are distinguished
// by invariant, not by type:
//
//   - Old listing — every entry has an id; ids are unique; paths are
//     unique. The id space is an opaque assignment chosen by the caller
//     (typically a dense 0..n numbering of walked files); the planner
//     treats ids as uninterpreted tokens.
//   - New listing — paths are unique; every present id must appear in
//     the old listing; multiple new entries may share one id (fan-out);
//     entries without an id are permitted.
//
// Use ValidateOld / ValidateNew to check these invariants before
// passing a Listing to Plan.
type Listing []Entry

// Equal reports whether two listings contain the same entries in the
// same order.
func (l Listing) Equal(other Listing) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if !l[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

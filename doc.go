// SPDX-License-Identifier: MIT

/*
Package treedit implements the diff planner at the core of the treedit
tool: given an "old" listing of files (each tagged with a stable id) and
a "new" listing edited by a human, it computes the minimal ordered
sequence of filesystem operations — Create, Copy, Move, Remove — that
turns the tree described by the old listing into the tree described by
the new one.

The package is dependency-free and does no I/O of its own; it operates
entirely on in-memory Listing values and returns an Operation slice for
a caller (typically cmd/treedit) to apply. This makes it safe to unit
test and fuzz in isolation from any real filesystem.

# Basic usage

	old := treedit.Listing{
	    treedit.NewEntry(treedit.IntID(1), "a.txt"),
	    treedit.NewEntry(treedit.IntID(2), "b.txt"),
	}
	new := treedit.Listing{
	    treedit.NewEntry(treedit.IntID(2), "a.txt"), // swap
	    treedit.NewEntry(treedit.IntID(1), "b.txt"),
	}
	ops, err := treedit.Plan(old, new)
	if err != nil {
	    return err
	}
	for _, op := range ops {
	    fmt.Println(op)
	}

# Fan-out and cycles

A single old id may appear against more than one new path (fan-out: the
source is copied to every destination but the last, which may be a
move). New paths may also rotate among several old ids (a cycle); the
planner breaks ties by evacuating one participant to a synthetic
"<path>.backup[-N]" path and re-seating it once its target frees up. See
Plan's doc comment for the full set of invariants this guarantees.

# Listings and ids

An Entry without an id denotes a brand-new, empty file. Entries with an
id refer to an old listing entry; one old id may be referenced by zero,
one, or many new entries. Listing text is produced and consumed by
Listing.String and ParseListing, in the format documented on those
functions — this is the text a human edits in their editor of choice.
*/
package treedit

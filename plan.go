// SPDX-License-Identifier: MIT

package treedit

import (
	"fmt"
	"sort"
)

// OpKind identifies an Operation's case.
type OpKind int

// Operation kinds.
const (
	OpCreate OpKind = iota
	OpCopy
	OpMove
	OpRemove
)

func (k OpKind) String() string {
	switch k {
	case OpCreate:
		return "create"
	case OpCopy:
		return "copy"
	case OpMove:
		return "move"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Operation is one atomic filesystem mutation. Path is set for Create
// and Remove; Src/Dst are set for Copy and Move. Operations are
// immutable once created.
type Operation struct {
	Kind OpKind
	Path string
	Src  string
	Dst  string
}

// CreateOp builds a Create operation: produces an empty regular file at
// path, which must not already exist.
func CreateOp(path string) Operation { return Operation{Kind: OpCreate, Path: path} }

// CopyOp builds a Copy operation: duplicates src's content at dst. src
// must exist, dst must not.
func CopyOp(src, dst string) Operation { return Operation{Kind: OpCopy, Src: src, Dst: dst} }

// MoveOp builds a Move operation: relocates src's content to dst. src
// must exist, dst must not.
func MoveOp(src, dst string) Operation { return Operation{Kind: OpMove, Src: src, Dst: dst} }

// RemoveOp builds a Remove operation: deletes path, which must exist.
func RemoveOp(path string) Operation { return Operation{Kind: OpRemove, Path: path} }

func (op Operation) String() string {
	switch op.Kind {
	case OpCreate:
		return fmt.Sprintf("create %s", op.Path)
	case OpCopy:
		return fmt.Sprintf("copy %s => %s", op.Src, op.Dst)
	case OpMove:
		return fmt.Sprintf("move %s => %s", op.Src, op.Dst)
	case OpRemove:
		return fmt.Sprintf("remove %s", op.Path)
	default:
		return "?"
	}
}

// planner owns the transient lookup tables used by a single Plan call.
// It is discarded once Plan returns.
type planner struct {
	oldIDToPath   map[int]string
	oldPathToID   map[string]int
	newIDToPaths  map[int][]string
	existingNames map[string]struct{}
	processed     map[int]bool
	locked        map[int]bool
	dirty         map[int]Operation
	ops           []Operation
}

// Plan computes the ordered operation sequence that transforms the
// filesystem state described by old into the state described by new.
//
// old must satisfy the old-listing invariants (every entry has an id,
// ids unique, paths unique) and new must satisfy the new-listing
// invariants (paths unique, every present id is in old) — Plan checks
// both before doing any planning work and returns the first violation
// found: an error wrapping ErrInternal for old, *InvalidFileIDError or
// *DuplicatePathError for new.
//
// The returned operations, applied in order starting from old's
// filesystem state, produce exactly new's filesystem state: every
// prefix of the result satisfies the per-op preconditions (a Create or
// Copy/Move destination is always free, a Copy/Move/Remove source is
// always present), and an id present in both listings is preserved —
// its content reaches every new path associated with that id by Copy or
// Move. A new id may fan out to more than one path (all but the last get
// a Copy); new paths may rotate among several old ids (a cycle), which
// is broken by temporarily evacuating one participant to a synthetic
// "<path>.backup[-N]" path and re-seating it once its destination frees
// up. If new is identical to old, Plan returns an empty, non-nil slice.
func Plan(old, new Listing) ([]Operation, error) {
	if err := ValidateOld(old); err != nil {
		return nil, err
	}
	if err := ValidateNew(new, allowedIDSet(old)); err != nil {
		return nil, err
	}

	p := newPlanner(old, new)

	ids := make([]int, 0, len(old))
	for _, e := range old {
		ids = append(ids, *e.ID)
	}
	sort.Ints(ids)

	for _, id := range ids {
		if err := p.process(id); err != nil {
			return nil, err
		}
	}

	if len(p.dirty) != 0 {
		return nil, fmt.Errorf("%w: %d deferred operation(s) never landed", ErrInternal, len(p.dirty))
	}

	for _, e := range new {
		if !e.HasID() {
			p.ops = append(p.ops, CreateOp(e.Path))
		}
	}

	return p.ops, nil
}

func newPlanner(old, new Listing) *planner {
	p := &planner{
		oldIDToPath:   make(map[int]string, len(old)),
		oldPathToID:   make(map[string]int, len(old)),
		newIDToPaths:  make(map[int][]string, len(new)),
		existingNames: make(map[string]struct{}, len(old)),
		processed:     make(map[int]bool, len(old)),
		locked:        make(map[int]bool, len(old)),
		dirty:         make(map[int]Operation),
		ops:           make([]Operation, 0, len(old)+len(new)),
	}

	for _, e := range old {
		id := *e.ID
		p.oldIDToPath[id] = e.Path
		p.oldPathToID[e.Path] = id
		p.existingNames[e.Path] = struct{}{}
	}

	for _, e := range new {
		if e.HasID() {
			id := *e.ID
			p.newIDToPaths[id] = append(p.newIDToPaths[id], e.Path)
		}
	}

	return p
}

// process resolves one old id: it emits every operation needed to place
// that id's content at each of its new destinations (if any), or
// removes it (if the id was dropped), recursing into whichever ids
// currently occupy a wanted destination and breaking any cycle it finds
// along the way with a backup path. See Plan's doc comment for the
// guarantees this upholds.
func (p *planner) process(id int) error {
	if p.processed[id] {
		return nil
	}

	src, ok := p.oldIDToPath[id]
	if !ok {
		return fmt.Errorf("%w: no old path recorded for id %d", ErrInternal, id)
	}

	dests := p.newIDToPaths[id]
	p.locked[id] = true

	keepSrc := false
	otherDests := make([]string, 0, len(dests))
	for _, dest := range dests {
		if dest == src {
			keepSrc = true
			continue
		}
		otherDests = append(otherDests, dest)
	}

	for i, dest := range otherDests {
		isLast := i == len(otherDests)-1

		if _, occupied := p.existingNames[dest]; occupied {
			victim, isOldPath := p.oldPathToID[dest]
			if isOldPath && victim != id {
				switch {
				case p.locked[victim]:
					backupPath, err := generateBackupPath(dest, p.existingNames)
					if err != nil {
						return err
					}
					if !isLast || keepSrc {
						p.emit(CopyOp(src, backupPath))
					} else {
						p.emit(MoveOp(src, backupPath))
					}
					p.dirty[victim] = MoveOp(backupPath, dest)
					continue
				case !p.processed[victim]:
					if err := p.process(victim); err != nil {
						return err
					}
				default:
					return fmt.Errorf("%w: path %q still occupied by already-processed id %d", ErrInternal, dest, victim)
				}
			}
		}

		if !isLast || keepSrc {
			p.emit(CopyOp(src, dest))
		} else {
			p.emit(MoveOp(src, dest))
		}
	}

	if len(dests) == 0 {
		if _, stillPresent := p.existingNames[src]; stillPresent {
			p.emit(RemoveOp(src))
		}
	}

	p.locked[id] = false

	if op, deferred := p.dirty[id]; deferred {
		p.emit(op)
		delete(p.dirty, id)
	}

	p.processed[id] = true
	return nil
}

// emit appends op to the plan and updates existingNames exactly as an
// executor would mutate the real filesystem.
func (p *planner) emit(op Operation) {
	p.ops = append(p.ops, op)

	switch op.Kind {
	case OpCreate:
		p.existingNames[op.Path] = struct{}{}
	case OpCopy:
		p.existingNames[op.Dst] = struct{}{}
	case OpMove:
		delete(p.existingNames, op.Src)
		p.existingNames[op.Dst] = struct{}{}
	case OpRemove:
		delete(p.existingNames, op.Path)
	}
}

// generateBackupPath returns the first of "base.backup", "base.backup-1",
// "base.backup-2", ... not already present in existing. The pigeonhole
// principle guarantees success within len(existing)+1 tries; the search
// is bounded at len(existing)+4 as a loose safety margin.
func generateBackupPath(base string, existing map[string]struct{}) (string, error) {
	bound := len(existing) + 4

	candidate := base + ".backup"
	for attempt := 0; attempt <= bound; attempt++ {
		if attempt > 0 {
			candidate = fmt.Sprintf("%s.backup-%d", base, attempt)
		}
		if _, taken := existing[candidate]; !taken {
			return candidate, nil
		}
	}

	return "", ErrBackupExhausted
}

// SPDX-License-Identifier: MIT

// Package executor applies a computed plan to the real filesystem.
package executor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/arborfs/treedit"
	"github.com/arborfs/treedit/internal/pathsafe"
)

// copyBufferSize is the buffer used for Copy/Move-fallback file content
// duplication.
const copyBufferSize = 64 * 1024

// Root is the directory every plan path is resolved relative to.
type Root struct {
	dir string
}

// NewRoot returns a Root rooted at dir.
func NewRoot(dir string) Root {
	return Root{dir: dir}
}

// Apply applies ops to the filesystem in order. It re-checks each
// operation's precondition against the real filesystem before acting
// and stops at the first failure; already-applied operations are not
// rolled back.
func (r Root) Apply(ops []treedit.Operation) error {
	for _, op := range ops {
		if err := r.applyOne(op); err != nil {
			return fmt.Errorf("apply %s: %w", op, err)
		}
	}
	return nil
}

func (r Root) applyOne(op treedit.Operation) error {
	switch op.Kind {
	case treedit.OpCreate:
		return r.create(op.Path)
	case treedit.OpCopy:
		return r.copy(op.Src, op.Dst)
	case treedit.OpMove:
		return r.move(op.Src, op.Dst)
	case treedit.OpRemove:
		return r.remove(op.Path)
	default:
		return fmt.Errorf("unknown operation kind %v", op.Kind)
	}
}

func (r Root) abs(relPath string) (string, error) {
	if err := pathsafe.Check(relPath); err != nil {
		return "", err
	}
	return filepath.Join(r.dir, filepath.FromSlash(relPath)), nil
}

func (r Root) create(relPath string) error {
	abs, err := r.abs(relPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("create parent directories: %w", err)
	}

	f, err := os.OpenFile(abs, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return &treedit.FsChangedError{Kind: treedit.FileExists, Path: relPath}
		}
		return err
	}
	return f.Close()
}

func (r Root) copy(relSrc, relDst string) error {
	absSrc, err := r.abs(relSrc)
	if err != nil {
		return err
	}
	absDst, err := r.abs(relDst)
	if err != nil {
		return err
	}

	src, err := os.Open(absSrc)
	if err != nil {
		if os.IsNotExist(err) {
			return &treedit.FsChangedError{Kind: treedit.FileNotFound, Path: relSrc}
		}
		return err
	}
	defer func() { _ = src.Close() }()

	if err := os.MkdirAll(filepath.Dir(absDst), 0o755); err != nil {
		return fmt.Errorf("create parent directories: %w", err)
	}

	dst, err := os.OpenFile(absDst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return &treedit.FsChangedError{Kind: treedit.FileExists, Path: relDst}
		}
		return err
	}

	buf := make([]byte, copyBufferSize)
	if _, err := io.CopyBuffer(dst, src, buf); err != nil {
		_ = dst.Close()
		return fmt.Errorf("copy contents: %w", err)
	}

	return dst.Close()
}

func (r Root) move(relSrc, relDst string) error {
	absSrc, err := r.abs(relSrc)
	if err != nil {
		return err
	}
	absDst, err := r.abs(relDst)
	if err != nil {
		return err
	}

	if _, err := os.Stat(absSrc); err != nil {
		if os.IsNotExist(err) {
			return &treedit.FsChangedError{Kind: treedit.FileNotFound, Path: relSrc}
		}
		return err
	}
	if _, err := os.Stat(absDst); err == nil {
		return &treedit.FsChangedError{Kind: treedit.FileExists, Path: relDst}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(absDst), 0o755); err != nil {
		return fmt.Errorf("create parent directories: %w", err)
	}

	err = os.Rename(absSrc, absDst)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		return r.copyThenRemove(relSrc, relDst, absSrc, absDst)
	}

	return fmt.Errorf("rename: %w", err)
}

// copyThenRemove is the cross-device fallback for move: the real
// filesystem straddles two devices, so a rename cannot be atomic.
func (r Root) copyThenRemove(relSrc, relDst, absSrc, absDst string) error {
	if err := r.copy(relSrc, relDst); err != nil {
		return err
	}
	if err := os.Remove(absSrc); err != nil {
		return fmt.Errorf("remove source after cross-device move: %w", err)
	}
	return nil
}

func (r Root) remove(relPath string) error {
	abs, err := r.abs(relPath)
	if err != nil {
		return err
	}

	if err := os.Remove(abs); err != nil {
		if os.IsNotExist(err) {
			return &treedit.FsChangedError{Kind: treedit.FileNotFound, Path: relPath}
		}
		return err
	}
	return nil
}

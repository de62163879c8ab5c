// SPDX-License-Identifier: MIT

// Package scratch manages the temporary listing file the user's editor
// is invoked against.
package scratch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// File is a scoped temporary file holding listing text. Callers must
// call Remove once done, typically via defer.
type File struct {
	path string
}

// New creates a scratch file under os.TempDir() with a UUID-derived
// name and writes content to it once.
func New(content string) (*File, error) {
	path := filepath.Join(os.TempDir(), "treedit-"+uuid.NewString()+".txt")

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return nil, fmt.Errorf("write scratch file: %w", err)
	}

	return &File{path: path}, nil
}

// Path returns the scratch file's absolute path.
func (f *File) Path() string {
	return f.path
}

// Read returns the scratch file's current contents.
func (f *File) Read() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("read scratch file: %w", err)
	}
	return string(data), nil
}

// Remove deletes the scratch file. It is safe to call more than once;
// a missing file is not an error.
func (f *File) Remove() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove scratch file: %w", err)
	}
	return nil
}

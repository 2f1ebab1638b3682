// Package fsops provides read access to puzzle input files.
//
// All input reads in aoc go through the FS interface so the engine can be
// exercised against an in-memory filesystem in tests.
//
// Key features:
//   - Line splitting with CRLF handling and blank-line removal
//   - Testable via the FS interface (see MemFS)
package fsops

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// FS provides an abstraction for filesystem reads.
type FS interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// ReadFile reads the entire contents of a file.
func (fs *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// MemFS implements FS over an in-memory map of path to contents.
type MemFS struct {
	files map[string][]byte
}

// NewMemFS creates an empty MemFS.
func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

// WriteFile stores data at path, replacing any previous contents.
func (fs *MemFS) WriteFile(path string, data []byte) {
	fs.files[path] = append([]byte(nil), data...)
}

// ReadFile returns the stored contents, or an error wrapping os.ErrNotExist.
func (fs *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := fs.files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
	}
	return append([]byte(nil), data...), nil
}

// SplitLines splits data into lines.
// Surrounding whitespace is trimmed and blank lines are dropped.
func SplitLines(data []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

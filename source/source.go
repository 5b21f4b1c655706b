// Package source acquires raw documents from uploads, file paths and
// spreadsheets.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrSourceUnavailable reports a missing upload or an unreadable path.
	ErrSourceUnavailable = errors.New("source: unavailable")
	// ErrUnsupportedSpreadsheet reports a spreadsheet that cannot be read.
	ErrUnsupportedSpreadsheet = errors.New("source: unsupported spreadsheet")
)

// Kind tells where a document came from.
type Kind string

const (
	KindUpload      Kind = "upload"
	KindPath        Kind = "path"
	KindSpreadsheet Kind = "spreadsheet"
)

// Document is an undecoded source.
type Document struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
	Data []byte `json:"-"`
}

// spreadsheet extensions excelize can open
var spreadsheetExt = map[string]bool{".xlsx": true, ".xlsm": true, ".xltx": true, ".xltm": true}

// IsSpreadsheet reports whether name looks like a workbook.
func IsSpreadsheet(name string) bool {
	return spreadsheetExt[strings.ToLower(filepath.Ext(name))]
}

// zip local file header, shared by every OOXML workbook
var zipMagic = []byte("PK\x03\x04")

func classify(name string, data []byte, fallback Kind) Kind {
	if IsSpreadsheet(name) && bytes.HasPrefix(data, zipMagic) {
		return KindSpreadsheet
	}
	return fallback
}

// FromReader reads an uploaded document. limit caps the number of bytes
// read; zero means no limit.
func FromReader(name string, r io.Reader, limit int64) (*Document, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: no upload", ErrSourceUnavailable)
	}
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read upload %s: %v", ErrSourceUnavailable, name, err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: upload %s exceeds %d bytes", ErrSourceUnavailable, name, limit)
	}
	return &Document{Name: filepath.Base(name), Kind: classify(name, data, KindUpload), Data: data}, nil
}

// FromPath reads a document from disk. With baseDir set, relative paths
// are resolved against it and the file must lie inside it; with an empty
// baseDir any path is read as given.
func FromPath(path, baseDir string) (*Document, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrSourceUnavailable)
	}
	if baseDir != "" {
		confined, err := within(baseDir, path)
		if err != nil {
			return nil, err
		}
		path = confined
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceUnavailable, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return &Document{Name: filepath.Base(path), Kind: classify(path, data, KindPath), Data: data}, nil
}

// within resolves path against baseDir and rejects results outside
// baseDir, before and after following symlinks.
func within(baseDir, path string) (string, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("%w: source dir: %v", ErrSourceUnavailable, err)
	}
	base, err := filepath.EvalSymlinks(absBase)
	if err != nil {
		return "", fmt.Errorf("%w: source dir: %v", ErrSourceUnavailable, err)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(absBase, path)
	}
	if !inside(absBase, path) && !inside(base, path) {
		return "", fmt.Errorf("%w: %s is outside the source dir", ErrSourceUnavailable, path)
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if !inside(base, resolved) {
		return "", fmt.Errorf("%w: %s is outside the source dir", ErrSourceUnavailable, path)
	}
	return resolved, nil
}

func inside(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Package sheetfile reads and writes sheet documents on disk.
//
// Two formats are supported, chosen by file extension: TOML (".toml"), which
// keeps cell flags and view settings, and CSV (".csv"), which keeps values
// only.
package sheetfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iw2rmb/datasheet/grid"
)

// ErrUnknownFormat is returned for paths with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown sheet format")

// Sheet is a document: the cell matrix plus how it prefers to be shown.
type Sheet struct {
	Data         grid.Data
	ColumnWidths []int
	ShowHeaders  bool
}

// Format identifies an on-disk encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatCSV
)

// FormatOf picks the format from a path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Load reads the sheet at path.
func Load(path string) (*Sheet, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", path, err)
	}
	switch format {
	case FormatCSV:
		return DecodeCSV(path, data)
	default:
		return DecodeTOML(path, data)
	}
}

// Save writes s to path, replacing the file atomically.
func Save(path string, s *Sheet) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatCSV:
		data, err = EncodeCSV(s)
	default:
		data, err = EncodeTOML(s)
	}
	if err != nil {
		return fmt.Errorf("encoding sheet %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("saving sheet %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("saving sheet %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("saving sheet %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("saving sheet %s: %w", path, err)
	}
	return nil
}

// ParseError reports malformed sheet content.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

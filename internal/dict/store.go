package dict

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies the on-disk dictionary format backing a store.
type Format int

const (
	FormatText Format = iota
	FormatBinary
)

func (f Format) String() string {
	if f == FormatBinary {
		return "binary"
	}
	return "text"
}

// binarySuffix marks the Windows engine's binary dictionary files.
const binarySuffix = ".dic"

// FormatForPath infers the dictionary format from a file path's suffix.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), binarySuffix) {
		return FormatBinary
	}
	return FormatText
}

// Store reads and writes one dictionary file as whole entry sets. There is no
// incremental API: every mutation above this layer re-reads, rewrites and
// re-persists the full set. Concurrent writers against the same file can lose
// updates; the engine itself behaves no differently.
type Store struct {
	path   string
	format Format
}

// NewStore creates a store over the given dictionary file. The format is
// inferred from the path's suffix once, at construction.
func NewStore(path string) *Store {
	return &Store{path: path, format: FormatForPath(path)}
}

func (s *Store) Path() string   { return s.path }
func (s *Store) Format() Format { return s.format }

// Policy returns the comparison policy matching the store's format.
func (s *Store) Policy() ComparisonPolicy {
	if s.format == FormatBinary {
		return CompareByPronunciation
	}
	return CompareBySurfaceForm
}

func (s *Store) ensureDir() error {
	return os.MkdirAll(filepath.Dir(s.path), 0o755)
}

// ReadAll returns every entry of the dictionary file. A missing file is an
// empty dictionary, not an error; anything else surfaces as a *ReadError,
// decode diagnostics included.
func (s *Store) ReadAll() ([]Entry, error) {
	if err := s.ensureDir(); err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}

	if s.format == FormatBinary {
		records, err := DecodeBinary(data)
		if err != nil {
			return nil, &ReadError{Path: s.path, Err: err}
		}
		entries := make([]Entry, len(records))
		for i, r := range records {
			entries[i] = entryFromRecord(r)
		}
		return entries, nil
	}

	entries, err := DecodeText(data)
	if err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}
	return entries, nil
}

// WriteAll replaces the dictionary file with the given entry set.
func (s *Store) WriteAll(entries []Entry) error {
	if err := s.ensureDir(); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	var data []byte
	if s.format == FormatBinary {
		records := make([]BinaryRecord, len(entries))
		for i, e := range entries {
			records[i] = recordFromEntry(e)
		}
		data = EncodeBinary(records)
	} else {
		var err error
		data, err = EncodeText(entries)
		if err != nil {
			return &WriteError{Path: s.path, Err: err}
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	return nil
}

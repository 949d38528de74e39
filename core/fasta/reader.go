// core/fasta/reader.go
package fasta

import (
	"io"
	"sync"
)

// Source hands out records from one FASTA input to any number of callers.
// Next is mutually exclusive: exactly one caller advances the cursor at a time.
type Source struct {
	Path string

	mu  sync.Mutex
	sc  *Scanner
	rc  io.Closer
	err error
	eof bool
}

// NewSource opens path and returns a Source over it. Open errors are
// reported immediately.
func NewSource(path string) (*Source, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	return &Source{Path: path, sc: NewScanner(rc), rc: rc}, nil
}

// NewReaderSource wraps an already open reader; Close is a no-op for it.
func NewReaderSource(name string, r io.Reader) *Source {
	return &Source{Path: name, sc: NewScanner(r)}
}

// Next claims the next record. ok is false when the input is exhausted or a
// read error occurred; the error is sticky across calls.
func (s *Source) Next() (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return Record{}, false, s.err
	}
	if s.eof {
		return Record{}, false, nil
	}
	rec, ok, err := s.sc.Next()
	if err != nil {
		s.err = err
		return Record{}, false, err
	}
	if !ok {
		s.eof = true
	}
	return rec, ok, nil
}

// Close releases the underlying file.
func (s *Source) Close() error {
	if s.rc == nil {
		return nil
	}
	return s.rc.Close()
}

// ReadAll returns every record of path.
func ReadAll(path string) ([]Record, error) {
	src, err := NewSource(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()
	var out []Record
	for {
		rec, ok, err := src.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, rec)
	}
}

// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Record is one parsed FASTA entry.
type Record struct {
	ID          string // accession: header up to the first whitespace
	Description string // remainder of the header line, trimmed
	Seq         []byte
}

// Scanner parses FASTA records from a reader one at a time.
// It is not safe for concurrent use; see Source.
type Scanner struct {
	sc         *bufio.Scanner
	pending    []byte // header line already read for the next record
	hasPending bool
	started    bool
	done       bool
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)
	return &Scanner{sc: sc}
}

// Next returns the next record. ok is false once input is exhausted.
// Text before the first header is ignored.
func (s *Scanner) Next() (rec Record, ok bool, err error) {
	if s.done {
		return Record{}, false, nil
	}
	if !s.started {
		s.started = true
		for s.sc.Scan() {
			line := s.sc.Bytes()
			if len(line) > 0 && line[0] == '>' {
				s.pending, s.hasPending = append([]byte(nil), line[1:]...), true
				break
			}
		}
	}
	if !s.hasPending {
		return s.finish()
	}

	rec.ID, rec.Description = parseHeader(s.pending)
	s.pending, s.hasPending = nil, false
	seq := make([]byte, 0, 1024)
	for s.sc.Scan() {
		line := s.sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			s.pending, s.hasPending = append([]byte(nil), line[1:]...), true
			break
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := s.sc.Err(); err != nil {
		s.done = true
		return Record{}, false, fmt.Errorf("fasta scan: %w", err)
	}
	rec.Seq = seq
	return rec, true, nil
}

func (s *Scanner) finish() (Record, bool, error) {
	s.done = true
	if err := s.sc.Err(); err != nil {
		return Record{}, false, fmt.Errorf("fasta scan: %w", err)
	}
	return Record{}, false, nil
}

func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}

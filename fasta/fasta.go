// Package fasta reads FASTA-formatted sequence records: a description
// line starting with '>' followed by sequence lines up to the next
// description line or end of file. Grounded on fasta.rs's FastaScanner,
// reworked to buffer the next record's description line instead of
// seeking backward (bufio.Reader has no seek).
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Scanner reads successive FASTA records from an io.Reader.
type Scanner struct {
	r           *bufio.Reader
	pendingDesc string
	hasPending  bool
}

// NewScanner wraps r for sequential FASTA record reading.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Next returns the next record's description (with the leading '>' and
// trailing line terminator stripped) and its sequence (embedded line
// terminators stripped). ok is false, with a nil error, once every
// record has been consumed.
func (s *Scanner) Next() (desc string, seq []byte, ok bool, err error) {
	var descLine string
	if s.hasPending {
		descLine = s.pendingDesc
		s.hasPending = false
	} else {
		line, rerr := s.r.ReadString('\n')
		if rerr != nil && line == "" {
			if rerr == io.EOF {
				return "", nil, false, nil
			}
			return "", nil, false, fmt.Errorf("fasta: %w", rerr)
		}
		line = strings.TrimRight(line, "\r\n")
		if !strings.HasPrefix(line, ">") {
			return "", nil, false, fmt.Errorf("fasta: expected record to start with '>', got %q", line)
		}
		descLine = line[1:]
	}

	var seqBuf bytes.Buffer
	for {
		line, rerr := s.r.ReadString('\n')
		if len(line) > 0 {
			trimmed := strings.TrimRight(line, "\r\n")
			if strings.HasPrefix(trimmed, ">") {
				s.pendingDesc = trimmed[1:]
				s.hasPending = true
				break
			}
			seqBuf.WriteString(trimmed)
		}
		if rerr != nil {
			if rerr == io.EOF {
				break
			}
			return "", nil, false, fmt.Errorf("fasta: %w", rerr)
		}
	}
	return descLine, seqBuf.Bytes(), true, nil
}

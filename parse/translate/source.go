package translate

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// DefaultSentinel ends interactive input.
const DefaultSentinel = "-1"

// Source reads raw lines from r until end of stream or a line equal to the
// sentinel. The sentinel line is not yielded.
type Source struct {
	scanner  *bufio.Scanner
	sentinel string
	err      error
}

func NewSource(r io.Reader, sentinel string) *Source {
	return &Source{scanner: bufio.NewScanner(r), sentinel: sentinel}
}

// Lines yields lines lazily. Check Err once the sequence is exhausted.
func (s *Source) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for s.scanner.Scan() {
			line := s.scanner.Text()
			if s.sentinel != "" && strings.TrimSpace(line) == s.sentinel {
				return
			}
			if !yield(line) {
				return
			}
		}
		s.err = s.scanner.Err()
	}
}

func (s *Source) Err() error { return s.err }

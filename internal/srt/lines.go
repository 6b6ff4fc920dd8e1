package srt

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineSource yields input lines without their terminators. ok is false
// with a nil error once input is exhausted.
type LineSource interface {
	ReadLine() (line string, ok bool, err error)
}

// LineReader reads "\n" or "\r\n" terminated lines from an io.Reader.
// Lines have no length limit and a final unterminated line is returned.
type LineReader struct {
	r    *bufio.Reader
	done bool
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

func (lr *LineReader) ReadLine() (string, bool, error) {
	if lr.done {
		return "", false, nil
	}

	line, err := lr.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, err
		}
		lr.done = true
		if line == "" {
			return "", false, nil
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}

type sliceSource struct {
	lines []string
}

// Lines returns a LineSource over lines already split by the caller.
func Lines(lines []string) LineSource {
	return &sliceSource{lines: lines}
}

func (s *sliceSource) ReadLine() (string, bool, error) {
	if len(s.lines) == 0 {
		return "", false, nil
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, true, nil
}

package srt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mgpai22/srtparse/internal/charset"
)

// FromString parses every item in input.
func FromString(input string) ([]Item, error) {
	return FromReader(strings.NewReader(input))
}

// FromReader parses every item read from r, stopping at the first error.
func FromReader(r io.Reader) ([]Item, error) {
	parser := NewReaderParser(r)
	var items []Item
	for item, err := range parser.All() {
		if err != nil {
			return nil, fmt.Errorf("parse error: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func FromFile(path string) ([]Item, error) {
	return FromFileWithEncoding(path, "")
}

// FromFileWithEncoding decodes the file from the named character set
// before parsing. See charset.NewReader for accepted names.
func FromFileWithEncoding(path, encoding string) ([]Item, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open a file: %w", err)
	}
	defer file.Close()

	r, err := charset.NewReader(file, encoding)
	if err != nil {
		return nil, err
	}
	return FromReader(r)
}

// Package charset decodes subtitle files written in legacy or UTF-16
// encodings into UTF-8 before they are split into lines.
package charset

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	// Auto honours a UTF-8 or UTF-16 byte-order mark and assumes UTF-8
	// otherwise.
	Auto = "auto"
	UTF8 = "utf-8"
)

// NewReader returns a reader producing UTF-8 text decoded from r.
//
// An empty name or "utf-8" returns r unchanged so a UTF-8 BOM reaches the
// parser intact. Other names are looked up in the WHATWG encoding index,
// e.g. "windows-1252", "iso-8859-1", "shift_jis", "utf-16le".
func NewReader(r io.Reader, name string) (io.Reader, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", UTF8, "utf8":
		return r, nil
	case Auto:
		decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
		return transform.NewReader(r, decoder), nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// Name returns the canonical name of a supported encoding.
func Name(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", UTF8, "utf8":
		return UTF8, nil
	case Auto:
		return Auto, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", fmt.Errorf("unsupported encoding %q: %w", name, err)
	}
	return htmlindex.Name(enc)
}

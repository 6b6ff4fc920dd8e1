// Package render writes parsed subtitle items for people and pipelines.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mgpai22/srtparse/internal/srt"
)

// represents supported output formats
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatTable:
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use text, json, or table", s)
	}
}

// JSON view of an item
type record struct {
	Pos     uint64 `json:"pos"`
	Start   string `json:"start"`
	End     string `json:"end"`
	StartMs uint64 `json:"start_ms"`
	EndMs   uint64 `json:"end_ms"`
	Text    string `json:"text"`
}

func toRecord(item srt.Item) record {
	return record{
		Pos:     item.Pos,
		Start:   item.StartTime.String(),
		End:     item.EndTime.String(),
		StartMs: item.StartTime.TotalMilliseconds(),
		EndMs:   item.EndTime.TotalMilliseconds(),
		Text:    item.Text,
	}
}

func Write(w io.Writer, format Format, items []srt.Item) error {
	switch format {
	case FormatText:
		return Text(w, items)
	case FormatJSON:
		return JSON(w, items)
	case FormatTable:
		_, err := io.WriteString(w, Table(items)+"\n")
		return err
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// Text writes items in their display form, each followed by a blank line.
// The output parses back to the same items.
func Text(w io.Writer, items []srt.Item) error {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(item.String())
		sb.WriteString("\n\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func JSON(w io.Writer, items []srt.Item) error {
	records := make([]record, len(items))
	for i, item := range items {
		records[i] = toRecord(item)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

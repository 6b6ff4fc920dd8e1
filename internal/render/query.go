package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/itchyny/gojq"

	"github.com/mgpai22/srtparse/internal/srt"
)

// Query runs a jq expression against the JSON view of items, an array of
// objects with pos, start, end, start_ms, end_ms and text.
func Query(expr string, items []srt.Item) ([]any, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}

	input := make([]any, len(items))
	for i, item := range items {
		input[i] = queryValue(item)
	}

	var results []any
	iter := query.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, fmt.Errorf("query failed: %w", err)
		}
		results = append(results, v)
	}
	return results, nil
}

// gojq only accepts the types encoding/json produces, plus int
func queryValue(item srt.Item) map[string]any {
	return map[string]any{
		"pos":      int(item.Pos),
		"start":    item.StartTime.String(),
		"end":      item.EndTime.String(),
		"start_ms": int(item.StartTime.TotalMilliseconds()),
		"end_ms":   int(item.EndTime.TotalMilliseconds()),
		"text":     item.Text,
	}
}

// WriteQuery writes each query result as indented JSON.
func WriteQuery(w io.Writer, expr string, items []srt.Item) error {
	results, err := Query(expr, items)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	for _, v := range results {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

package translate

import (
	"strings"

	"github.com/mgpai22/srtparse/internal/srt"
)

// ItemsFrom builds one translation item per subtitle, keyed by slice index
// since positions need not be unique.
func ItemsFrom(items []srt.Item) []TranslationItem {
	out := make([]TranslationItem, len(items))
	for i, item := range items {
		out[i] = TranslationItem{Index: i, Text: item.Text}
	}
	return out
}

// Apply returns a copy of items with translated text. In overlay mode the
// translation is placed above the original text. Results whose index is out
// of range or whose text is empty are returned in skipped.
func Apply(
	items []srt.Item,
	results []TranslationResult,
	overlay bool,
) (out []srt.Item, skipped []TranslationResult) {
	out = make([]srt.Item, len(items))
	copy(out, items)

	for _, result := range results {
		if result.Index < 0 || result.Index >= len(out) {
			skipped = append(skipped, result)
			continue
		}
		text := normalizeText(result.Text)
		if text == "" {
			skipped = append(skipped, result)
			continue
		}
		if overlay {
			text = text + "\n" + items[result.Index].Text
		}
		out[result.Index].Text = text
	}
	return out, skipped
}

// trims every line and drops blank ones, which would otherwise end the
// subtitle early when the output is parsed again
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

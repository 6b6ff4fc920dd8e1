package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rivo/uniseg"

	"github.com/mgpai22/srtparse/internal/srt"
)

// Summary describes a parsed subtitle track.
type Summary struct {
	Count      int
	FirstStart srt.Time
	LastEnd    srt.Time
	// sum of every item's display time
	OnScreen time.Duration
	// widest caption line in terminal cells
	MaxLineWidth int
	// highest reading speed, in characters per second
	PeakCPS float64
	// items starting before the previous item ends
	Overlaps int
	// items whose position is not greater than the previous one
	OutOfOrder int
	// items ending before they start
	Inverted int
}

func Summarize(items []srt.Item) Summary {
	s := Summary{Count: len(items)}
	if len(items) == 0 {
		return s
	}

	s.FirstStart = items[0].StartTime
	s.LastEnd = items[0].EndTime

	for i, item := range items {
		start, end := item.StartTime.Duration(), item.EndTime.Duration()
		if start < s.FirstStart.Duration() {
			s.FirstStart = item.StartTime
		}
		if end > s.LastEnd.Duration() {
			s.LastEnd = item.EndTime
		}

		if end < start {
			s.Inverted++
		} else {
			s.OnScreen += end - start
		}

		for _, line := range strings.Split(item.Text, "\n") {
			if w := uniseg.StringWidth(line); w > s.MaxLineWidth {
				s.MaxLineWidth = w
			}
		}

		if end > start {
			chars := uniseg.GraphemeClusterCount(strings.ReplaceAll(item.Text, "\n", ""))
			cps := float64(chars) / (end - start).Seconds()
			if cps > s.PeakCPS {
				s.PeakCPS = cps
			}
		}

		if i == 0 {
			continue
		}
		prev := items[i-1]
		if start < prev.EndTime.Duration() {
			s.Overlaps++
		}
		if item.Pos <= prev.Pos {
			s.OutOfOrder++
		}
	}
	return s
}

func SummaryTable(s Summary) string {
	rows := [][]string{
		{"Items", strconv.Itoa(s.Count)},
		{"First start", s.FirstStart.String()},
		{"Last end", s.LastEnd.String()},
		{"On screen", s.OnScreen.String()},
		{"Longest line", fmt.Sprintf("%d cells", s.MaxLineWidth)},
		{"Peak reading speed", fmt.Sprintf("%.1f cps", s.PeakCPS)},
		{"Overlapping items", strconv.Itoa(s.Overlaps)},
		{"Out of order positions", strconv.Itoa(s.OutOfOrder)},
		{"Ending before start", strconv.Itoa(s.Inverted)},
	}
	return renderTable(
		[]string{"Metric", "Value"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	)
}

package render

import (
	"strconv"

	"github.com/mgpai22/srtparse/internal/video"
)

func StreamTable(streams []video.SubtitleStream) string {
	rows := make([][]string, len(streams))
	for i, s := range streams {
		rows[i] = []string{
			strconv.Itoa(s.Index),
			s.Codec,
			orDash(s.Language),
			orDash(s.Title),
		}
	}
	return renderTable(
		[]string{"Stream", "Codec", "Language", "Title"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

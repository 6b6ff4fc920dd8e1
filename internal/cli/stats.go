package cli

import (
	"fmt"

	"github.com/mgpai22/srtparse/internal/render"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [subtitle_file]",
	Short: "Summarize timing and text of a subtitle file",
	Long: `Print a summary of a subtitle file: item count, time span, time on
screen, longest line, peak reading speed, and counts of overlapping,
out of order and inverted items.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().
		StringP("encoding", "e", "", "Input character set (utf-8, auto, windows-1252, ...)")
}

func runStats(cmd *cobra.Command, args []string) error {
	items, err := readSubtitles(cmd, args[0])
	if err != nil {
		return err
	}

	summary := render.Summarize(items)
	if summary.Overlaps > 0 || summary.Inverted > 0 {
		logger.Warnw("Subtitle timing problems found",
			"overlaps", summary.Overlaps,
			"inverted", summary.Inverted,
		)
	}

	fmt.Fprintln(cmd.OutOrStdout(), render.SummaryTable(summary))
	return nil
}

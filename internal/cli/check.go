package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [subtitle_file...]",
	Short: "Validate subtitle files",
	Long: `Parse each file and report whether it is well formed.

Malformed files are reported with the line the problem was found at. The
command fails if any file does not parse.

Examples:
  srtparse check movie.srt
  srtparse check season1/*.srt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().
		StringP("encoding", "e", "", "Input character set (utf-8, auto, windows-1252, ...)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	failed := 0
	for _, path := range args {
		items, err := readSubtitles(cmd, path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %v\n", err)
			continue
		}
		fmt.Fprintf(out, "ok   %s (%d items)\n", path, len(items))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(args))
	}
	return nil
}

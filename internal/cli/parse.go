package cli

import (
	"fmt"

	"github.com/mgpai22/srtparse/internal/render"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [subtitle_file]",
	Short: "Parse a subtitle file and print its items",
	Long: `Parse a SubRip file and print every item.

Output formats are text (the parsed items in display form), json and table.
A jq expression given with --query runs over the JSON view of the items.

Examples:
  srtparse parse movie.srt
  srtparse parse movie.srt -f table
  srtparse parse movie.srt --query '.[] | select(.start_ms > 60000) | .text'
  srtparse parse old.srt --encoding windows-1252 -o clean.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().
		StringP("format", "f", "", "Output format (text, json, table); defaults to the config's output_format")
	parseCmd.Flags().
		StringP("query", "q", "", "jq expression evaluated over the JSON items")
	parseCmd.Flags().
		StringP("encoding", "e", "", "Input character set (utf-8, auto, windows-1252, ...)")
}

func runParse(cmd *cobra.Command, args []string) error {
	formatStr, _ := cmd.Flags().GetString("format")
	query, _ := cmd.Flags().GetString("query")

	if formatStr == "" {
		formatStr = cfg.OutputFormat
	}
	format, err := render.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	items, err := readSubtitles(cmd, args[0])
	if err != nil {
		return err
	}

	w, closeOutput, err := openOutput(cmd)
	if err != nil {
		return err
	}

	if query != "" {
		err = render.WriteQuery(w, query, items)
	} else {
		err = render.Write(w, format, items)
	}
	if closeErr := closeOutput(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

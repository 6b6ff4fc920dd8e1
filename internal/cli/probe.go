package cli

import (
	"encoding/json"
	"fmt"

	"github.com/mgpai22/srtparse/internal/ffmpeg"
	"github.com/mgpai22/srtparse/internal/render"
	"github.com/mgpai22/srtparse/internal/video"
	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe [video_file]",
	Short: "List the subtitle streams of a video file",
	Long: `List the subtitle streams of a video file using ffprobe.

ffprobe is taken from SRTPARSE_FFPROBE_PATH or PATH.

Examples:
  srtparse probe movie.mkv
  srtparse probe movie.mkv --json`,
	Args: cobra.ExactArgs(1),
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)

	probeCmd.Flags().Bool("json", false, "Print streams as JSON")
}

func newProcessor() (*video.DefaultProcessor, error) {
	paths, err := ffmpeg.Ensure()
	if err != nil {
		return nil, err
	}
	logger.Debugw("Using ffmpeg binaries", "ffmpeg", paths.FFmpeg, "ffprobe", paths.FFprobe)
	return video.NewProcessor(paths), nil
}

func runProbe(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	asJSON, _ := cmd.Flags().GetBool("json")

	processor, err := newProcessor()
	if err != nil {
		return err
	}

	streams, err := processor.SubtitleStreams(cmd.Context(), videoPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(streams)
	}

	if len(streams) == 0 {
		fmt.Fprintf(out, "No subtitle streams in %s\n", videoPath)
		return nil
	}
	fmt.Fprintln(out, render.StreamTable(streams))
	return nil
}

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mgpai22/srtparse/internal/srt"
	"github.com/mgpai22/srtparse/internal/video"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [video_file]",
	Short: "Extract a subtitle stream from a video file",
	Long: `Extract a subtitle stream from a video file as SubRip and check that the
result parses.

Streams are numbered from 0 among the subtitle streams only, as listed by
the probe command.

Examples:
  srtparse extract movie.mkv
  srtparse extract movie.mkv --stream 1 -o movie.en.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		IntP("stream", "s", 0, "Subtitle stream number (see probe)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	videoPath := args[0]

	stream, _ := cmd.Flags().GetInt("stream")
	outputPath, _ := cmd.Flags().GetString("output")

	if !video.IsVideoFile(videoPath) {
		logger.Warnw("File extension is not a known video type", "video", videoPath)
	}
	if outputPath == "" {
		outputPath = video.DefaultSubtitlePath(videoPath, stream)
	}

	processor, err := newProcessor()
	if err != nil {
		return err
	}

	logger.Infow("Extracting subtitles",
		"video", videoPath,
		"output", outputPath,
		"stream", stream,
	)

	if err := processor.ExtractSubtitles(
		cmd.Context(),
		videoPath,
		outputPath,
		stream,
	); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	items, err := srt.FromFile(outputPath)
	if err != nil {
		return fmt.Errorf("extracted subtitles do not parse: %w", describeError(outputPath, err))
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles extracted successfully: %s (%d items)\n", absOutput, len(items))

	return nil
}

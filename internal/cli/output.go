package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mgpai22/srtparse/internal/srt"
	"github.com/spf13/cobra"
)

// writer for command output: the --output file when set, stdout otherwise.
// The returned close func must be called once writing is done.
func openOutput(cmd *cobra.Command) (io.Writer, func() error, error) {
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" || outputPath == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// --encoding when given, the config's encoding otherwise
func inputEncoding(cmd *cobra.Command) string {
	if f := cmd.Flags().Lookup("encoding"); f != nil && f.Changed {
		return f.Value.String()
	}
	if cfg != nil {
		return cfg.Encoding
	}
	return ""
}

func readSubtitles(cmd *cobra.Command, path string) ([]srt.Item, error) {
	encoding := inputEncoding(cmd)
	logger.Debugw("Parsing subtitle file", "path", path, "encoding", encoding)

	items, err := srt.FromFileWithEncoding(path, encoding)
	if err != nil {
		return nil, describeError(path, err)
	}

	logger.Debugw("Parsed subtitle file", "path", path, "items", len(items))
	return items, nil
}

// prefixes parse errors with the file and line they were found at
func describeError(path string, err error) error {
	var parseErr *srt.ParseError
	if errors.As(err, &parseErr) && parseErr.Line > 0 {
		return fmt.Errorf("%s:%d: %w", path, parseErr.Line, err)
	}
	return fmt.Errorf("%s: %w", path, err)
}

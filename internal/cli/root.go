package cli

import (
	"github.com/mgpai22/srtparse/internal/config"
	"github.com/mgpai22/srtparse/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "srtparse",
	Short: "Parse, inspect and translate SubRip subtitles",
	Long: `srtparse reads SubRip (.srt) subtitle files and reports exactly where
they are malformed.

It can print subtitles as text, JSON or a table, run jq queries over them,
summarize timing, translate them with an AI provider, and pull subtitle
tracks out of video files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if cfg.Path() != "" {
			logger.Debugw("Loaded config", "path", cfg.Path())
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringP("language", "l", "", "Language of the input subtitles (e.g., en, es, fr)")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/srtparse/config.yaml)")
}

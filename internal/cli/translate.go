package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/srtparse/internal/render"
	"github.com/mgpai22/srtparse/internal/translate"
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate [subtitle_file]",
	Short: "Translate subtitles to another language using AI",
	Long: `Translate a SubRip file to another language using AI.

Timing and positions are kept; only the caption text is translated.

The --overlay flag creates bilingual subtitles with the translated text
first, followed by the original text on the next line.

Defaults for provider, model, target language, concurrency and batch size
come from the config file when the flags are not given.

Examples:
  srtparse translate movie.srt --target-language japanese
  srtparse translate movie.srt -t ja --overlay
  srtparse translate movie.srt -l english -t spanish --provider anthropic -o movie.es.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().
		StringP("target-language", "t", "", "Target language for translation")
	translateCmd.Flags().
		Bool("overlay", false, "Overlay translated text with original (bilingual subtitles)")
	translateCmd.Flags().
		StringP("api-key", "k", "", "API key (or set GEMINI_API_KEY/OPENAI_API_KEY/ANTHROPIC_API_KEY)")
	translateCmd.Flags().
		String("model", "", "Model to use for translation (provider-specific, uses sensible defaults)")
	translateCmd.Flags().
		Bool("model-override", false, "Allow any custom model, bypassing provider model validation")
	translateCmd.Flags().
		String("provider", "", "Translation provider (gemini, openai, anthropic)")
	translateCmd.Flags().
		Int("concurrency", 0, "Number of parallel translation workers")
	translateCmd.Flags().
		Int("batch-size", 0, "Number of subtitle items per API request")
	translateCmd.Flags().
		String("prompt", "", "Additional instructions for the translator")
	translateCmd.Flags().
		StringP("encoding", "e", "", "Input character set (utf-8, auto, windows-1252, ...)")
}

// flag values resolved against the config
type translateSettings struct {
	provider    translate.Provider
	apiKey      string
	opts        translate.Options
	concurrency int
	overlay     bool
}

func translateSettingsFrom(cmd *cobra.Command) (translateSettings, error) {
	flags := cmd.Flags()
	targetLang, _ := flags.GetString("target-language")
	overlay, _ := flags.GetBool("overlay")
	apiKey, _ := flags.GetString("api-key")
	model, _ := flags.GetString("model")
	modelOverride, _ := flags.GetBool("model-override")
	providerStr, _ := flags.GetString("provider")
	concurrency, _ := flags.GetInt("concurrency")
	batchSize, _ := flags.GetInt("batch-size")
	prompt, _ := flags.GetString("prompt")
	inputLang, _ := flags.GetString("language")

	if targetLang == "" {
		targetLang = cfg.Translate.TargetLanguage
	}
	if providerStr == "" {
		providerStr = cfg.Translate.Provider
	}
	if model == "" {
		model = cfg.Translate.Model
	}
	if !flags.Changed("concurrency") {
		concurrency = cfg.Translate.Concurrency
	}
	if !flags.Changed("batch-size") {
		batchSize = cfg.Translate.BatchSize
	}

	if targetLang == "" {
		return translateSettings{}, fmt.Errorf(
			"target language is required: use --target-language or set translate.target_language in the config",
		)
	}

	if inputLang != "" &&
		strings.EqualFold(
			strings.TrimSpace(inputLang),
			strings.TrimSpace(targetLang),
		) {
		return translateSettings{}, fmt.Errorf(
			"input language %q and target language %q cannot be the same",
			inputLang,
			targetLang,
		)
	}

	provider := translate.Provider(strings.ToLower(providerStr))

	if apiKey == "" {
		apiKey = os.Getenv(provider.APIKeyEnv())
	}
	if apiKey == "" {
		return translateSettings{}, fmt.Errorf(
			"API key is required: use --api-key flag or set %s environment variable",
			provider.APIKeyEnv(),
		)
	}

	if !modelOverride {
		if err := validateModel(provider, model); err != nil {
			return translateSettings{}, err
		}
	}

	if concurrency <= 0 {
		return translateSettings{}, fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}
	if batchSize <= 0 {
		return translateSettings{}, fmt.Errorf("batch-size must be positive, got %d", batchSize)
	}

	return translateSettings{
		provider: provider,
		apiKey:   apiKey,
		opts: translate.Options{
			InputLanguage:  inputLang,
			TargetLanguage: targetLang,
			Model:          model,
			Prompt:         prompt,
			BatchSize:      batchSize,
		},
		concurrency: concurrency,
		overlay:     overlay,
	}, nil
}

func defaultTranslatePath(subtitlePath, targetLang string, overlay bool) string {
	ext := filepath.Ext(subtitlePath)
	if ext == "" {
		ext = ".srt"
	}
	baseName := strings.TrimSuffix(subtitlePath, filepath.Ext(subtitlePath))
	if overlay {
		return fmt.Sprintf("%s.%s.overlay%s", baseName, targetLang, ext)
	}
	return fmt.Sprintf("%s.%s%s", baseName, targetLang, ext)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	settings, err := translateSettingsFrom(cmd)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = defaultTranslatePath(
			subtitlePath,
			settings.opts.TargetLanguage,
			settings.overlay,
		)
		_ = cmd.Flags().Set("output", outputPath)
	}

	logger.Infow("Starting subtitle translation",
		"input", subtitlePath,
		"output", outputPath,
		"provider", settings.provider,
		"target_language", settings.opts.TargetLanguage,
		"input_language", settings.opts.InputLanguage,
		"overlay", settings.overlay,
		"model", settings.opts.Model,
	)

	items, err := readSubtitles(cmd, subtitlePath)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("subtitle file contains no items")
	}

	translator, err := translate.Factory(ctx, settings.provider, settings.apiKey, settings.opts)
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}

	requests := translate.ItemsFrom(items)

	logger.Infow("Translating subtitles",
		"items", len(requests),
		"concurrency", settings.concurrency,
		"batch_size", settings.opts.BatchSize,
	)

	var results []translate.TranslationResult
	if concurrentTranslator, ok := translator.(translate.ConcurrentTranslator); ok {
		results, err = concurrentTranslator.TranslateWithConcurrency(
			ctx,
			requests,
			settings.concurrency,
		)
	} else {
		results, err = translator.Translate(ctx, requests)
	}
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	logger.Infow("Translation complete", "results", len(results))

	translated, skipped := translate.Apply(items, results, settings.overlay)
	for _, result := range skipped {
		logger.Warnw("Skipping unusable translation",
			"index", result.Index,
			"max", len(items)-1,
		)
	}

	w, closeOutput, err := openOutput(cmd)
	if err != nil {
		return err
	}
	err = render.Text(w, translated)
	if closeErr := closeOutput(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	out := cmd.ErrOrStderr()
	fmt.Fprintf(out, "Subtitles translated successfully: %s\n", absOutput)
	fmt.Fprintf(out, "  Items: %d\n", len(items))
	fmt.Fprintf(out, "  Target language: %s\n", settings.opts.TargetLanguage)
	if settings.overlay {
		fmt.Fprintf(out, "  Mode: bilingual overlay\n")
	}

	return nil
}

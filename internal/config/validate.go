package config

import (
	"fmt"

	"github.com/mgpai22/srtparse/internal/charset"
)

var outputFormats = map[string]bool{
	"text":  true,
	"json":  true,
	"table": true,
}

var providers = map[string]bool{
	"gemini":    true,
	"openai":    true,
	"anthropic": true,
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}
	if !outputFormats[c.OutputFormat] {
		return fmt.Errorf(
			"unsupported output_format %q: use text, json, or table",
			c.OutputFormat,
		)
	}
	if c.Encoding != "" {
		if _, err := charset.Name(c.Encoding); err != nil {
			return err
		}
	}
	if !providers[c.Translate.Provider] {
		return fmt.Errorf(
			"unsupported translate.provider %q: use gemini, openai, or anthropic",
			c.Translate.Provider,
		)
	}
	if c.Translate.Concurrency < 0 {
		return fmt.Errorf(
			"translate.concurrency must be positive, got %d",
			c.Translate.Concurrency,
		)
	}
	if c.Translate.BatchSize < 0 {
		return fmt.Errorf(
			"translate.batch_size must be positive, got %d",
			c.Translate.BatchSize,
		)
	}
	return nil
}

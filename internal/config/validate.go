package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Training.validate(); err != nil {
		return fmt.Errorf("training: %w", err)
	}
	if err := c.Enrichment.validate(); err != nil {
		return fmt.Errorf("enrichment: %w", err)
	}
	return nil
}

func (t *TrainingConfig) validate() error {
	if t.DefaultSessionSize <= 0 {
		return fmt.Errorf("default_session_size must be > 0 (got %d)", t.DefaultSessionSize)
	}
	if t.MaxSessionSize < t.DefaultSessionSize {
		return fmt.Errorf("max_session_size must be >= default_session_size (got %d < %d)", t.MaxSessionSize, t.DefaultSessionSize)
	}
	if t.RetryStatusThreshold < 1 || t.RetryStatusThreshold > 7 {
		return fmt.Errorf("retry_status_threshold must be within the status ladder [1,7] (got %d)", t.RetryStatusThreshold)
	}
	return nil
}

func (e *EnrichmentConfig) validate() error {
	if e.DictionaryBaseURL == "" {
		return fmt.Errorf("dictionary_base_url must not be empty")
	}
	if e.TranslateBaseURL == "" {
		return fmt.Errorf("translate_base_url must not be empty")
	}
	if e.TargetLanguage == "" {
		return fmt.Errorf("target_language must not be empty")
	}
	if e.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %v)", e.RequestTimeout)
	}
	return nil
}

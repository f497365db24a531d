package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Training   TrainingConfig   `yaml:"training"`
	Enrichment EnrichmentConfig `yaml:"enrichment"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// TrainingConfig holds training session parameters.
type TrainingConfig struct {
	// DefaultSessionSize is the maximum number of words selected into a
	// session when the caller does not request a size.
	DefaultSessionSize int `yaml:"default_session_size" env:"TRAINING_DEFAULT_SESSION_SIZE" env-default:"10"`
	// MaxSessionSize is the hard cap for a caller-requested session size.
	MaxSessionSize int `yaml:"max_session_size" env:"TRAINING_MAX_SESSION_SIZE" env-default:"100"`
	// RetryStatusThreshold marks words at or below this status as "needs
	// retry" for the retry-incorrect-answers flow.
	RetryStatusThreshold int `yaml:"retry_status_threshold" env:"TRAINING_RETRY_STATUS_THRESHOLD" env-default:"2"`
}

// EnrichmentConfig holds dictionary/translation provider settings.
type EnrichmentConfig struct {
	DictionaryBaseURL string `yaml:"dictionary_base_url" env:"ENRICHMENT_DICTIONARY_BASE_URL" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	// TranslateBaseURL is a bare host; the translate client appends its own
	// request path.
	TranslateBaseURL string        `yaml:"translate_base_url" env:"ENRICHMENT_TRANSLATE_BASE_URL" env-default:"https://api.mymemory.translated.net"`
	TargetLanguage   string        `yaml:"target_language"    env:"ENRICHMENT_TARGET_LANGUAGE"    env-default:"uk"`
	RequestTimeout   time.Duration `yaml:"request_timeout"    env:"ENRICHMENT_REQUEST_TIMEOUT"    env-default:"10s"`
}

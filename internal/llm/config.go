package llm

import "time"

// DefaultModel is the model used for structured extraction and analysis tasks.
const DefaultModel = "gemini-2.5-flash"

// DefaultRequestTimeout bounds a single generation call.
const DefaultRequestTimeout = 60 * time.Second

// Config holds the model configuration for the application.
type Config struct {
	Model          string
	RequestTimeout time.Duration
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Model:          DefaultModel,
		RequestTimeout: DefaultRequestTimeout,
	}
}

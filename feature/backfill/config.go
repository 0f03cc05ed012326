package backfill

import "time"

// Config holds configuration for backfill runs.
type Config struct {
	// BatchSize is how many originals are rendered concurrently.
	BatchSize int `mapstructure:"batch_size" default:"10"`
	// DelayMS is the pause between batches, in milliseconds.
	DelayMS int `mapstructure:"delay_ms" default:"500"`
	// SampleSize bounds the keys listed by a dry run.
	SampleSize int `mapstructure:"sample_size" default:"20"`
	// CacheTTLSeconds caches dry-run scans served over HTTP. Zero disables it.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{BatchSize: 10, DelayMS: 500, SampleSize: 20}
}

func (c Config) batchSize() int {
	if c.BatchSize <= 0 {
		return 10
	}
	return c.BatchSize
}

func (c Config) delay() time.Duration {
	if c.DelayMS < 0 {
		return 0
	}
	return time.Duration(c.DelayMS) * time.Millisecond
}

func (c Config) sampleSize() int {
	if c.SampleSize <= 0 {
		return 20
	}
	return c.SampleSize
}

// DelegateConfig locates the remote renderer used when this binary cannot
// encode derivatives itself.
type DelegateConfig struct {
	// FunctionName is the Lambda function that handles notifications.
	FunctionName string `mapstructure:"function_name" default:""`
	// URL is the base URL of another instance of this server.
	URL string `mapstructure:"url" default:""`
	// ApiKey is sent to URL in the API key header.
	ApiKey string `mapstructure:"api_key" default:""`
	// Region overrides the AWS region for FunctionName.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds one delegated call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}

func (d DelegateConfig) timeout() time.Duration {
	if d.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(d.TimeoutSeconds) * time.Second
}

// NewInvoker returns the configured delegate, preferring the Lambda
// function over the HTTP endpoint. It returns nil when neither is set.
func (d DelegateConfig) NewInvoker() Invoker {
	switch {
	case d.FunctionName != "":
		return NewLambdaInvoker(d)
	case d.URL != "":
		return NewHTTPInvoker(d)
	default:
		return nil
	}
}

package storage

import "time"

// Config describes the S3-compatible bucket holding originals and thumbnails.
type Config struct {
	// Endpoint is host[:port], optionally prefixed with http:// or https://.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds originals and their derivatives side by side.
	Bucket string `mapstructure:"bucket" default:""`
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dial, TLS handshake and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// cacheKey identifies a connection; buckets on the same endpoint share one.
func (c Config) cacheKey() string {
	host, secure := splitEndpoint(c.Endpoint, c.UseSSL)
	scheme := "http"
	if secure {
		scheme = "https"
	}
	return scheme + "://" + host + "|" + c.AccessKey + "|" + c.Region
}

package thumbnail

// Config holds configuration for derivative generation.
type Config struct {
	// RootPrefix is the first path segment every original key lives under.
	RootPrefix string `mapstructure:"root_prefix" default:"owners"`
	// MaxSizeMB is the largest original, in MiB, that will be rendered.
	MaxSizeMB int `mapstructure:"max_size_mb" default:"20"`
	// Quality is the lossy encoder quality (0-100).
	Quality int `mapstructure:"quality" default:"85"`
	// MaxPixels is the largest width*height that will be decoded.
	MaxPixels int `mapstructure:"max_pixels" default:"89478485"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{RootPrefix: DefaultRootPrefix, MaxSizeMB: 20, Quality: DefaultQuality, MaxPixels: DefaultMaxPixels}
}

// Root returns the configured root prefix, falling back to DefaultRootPrefix.
func (c Config) Root() string {
	return c.rootPrefix()
}

// ParseKey validates key against the original addressing scheme under the
// configured root.
func (c Config) ParseKey(key string) (OwnerPath, error) {
	return parseOriginalKey(key, c.rootPrefix())
}

func (c Config) rootPrefix() string {
	if c.RootPrefix == "" {
		return DefaultRootPrefix
	}
	return c.RootPrefix
}

func (c Config) maxBytes() int64 {
	if c.MaxSizeMB <= 0 {
		return 20 << 20
	}
	return int64(c.MaxSizeMB) << 20
}

func (c Config) quality() int {
	if c.Quality <= 0 || c.Quality > 100 {
		return DefaultQuality
	}
	return c.Quality
}

func (c Config) maxPixels() int {
	if c.MaxPixels <= 0 {
		return DefaultMaxPixels
	}
	return c.MaxPixels
}

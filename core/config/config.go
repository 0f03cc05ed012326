package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"thumbnail-manager/core/database"
	"thumbnail-manager/core/logger"
	"thumbnail-manager/core/server"
	"thumbnail-manager/core/storage"
	"thumbnail-manager/feature/backfill"
	"thumbnail-manager/feature/thumbnail"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration. Every section reads from
// environment variables named after its key path, e.g. STORAGE_BUCKET.
type Config struct {
	Server    server.Config           `mapstructure:"server"`
	Storage   storage.Config          `mapstructure:"storage"`
	Log       logger.Config           `mapstructure:"log"`
	Database  database.Config         `mapstructure:"database"`
	Thumbnail thumbnail.Config        `mapstructure:"thumbnail"`
	Backfill  backfill.Config         `mapstructure:"backfill"`
	Delegate  backfill.DelegateConfig `mapstructure:"delegate"`
}

// legacyEnv maps keys to the bare environment names older deployments set.
var legacyEnv = map[string]string{
	"storage.bucket":         "BUCKET_NAME",
	"delegate.function_name": "THUMBNAIL_FUNCTION_NAME",
}

var envKey = strings.NewReplacer(".", "_")

// LoadConfig reads dir/.env, when present, then the process environment.
// Values in .env override the environment.
func LoadConfig(dir string) (*Config, error) {
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	registerDefaults(v, reflect.TypeOf(Config{}), "")
	v.SetEnvKeyReplacer(envKey)
	v.AutomaticEnv()

	// The nested name is listed first so it wins when both are set.
	for key, legacy := range legacyEnv {
		if err := v.BindEnv(key, strings.ToUpper(envKey.Replace(key)), legacy); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	return &cfg, nil
}

// registerDefaults walks mapstructure tags and sets each leaf's `default`
// tag. Leaves without one are still registered so AutomaticEnv sees them.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for i := range t.NumField() {
		f := t.Field(i)
		name := f.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}
		if f.Type.Kind() == reflect.Struct {
			registerDefaults(v, f.Type, name)
			continue
		}
		v.SetDefault(name, f.Tag.Get("default"))
	}
}

package database

import (
	"fmt"
	"net/url"
	"time"
)

// Config locates the optional run journal database.
type Config struct {
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Driver is mysql or sqlite. Empty means mysql.
	Driver   string `mapstructure:"driver" default:"mysql"`
	Host     string `mapstructure:"host" default:"localhost"`
	Port     int    `mapstructure:"port" default:"3306"`
	User     string `mapstructure:"user" default:"root"`
	Password string `mapstructure:"password" default:""`
	// Name is the schema on mysql and the file path (or :memory:) on sqlite.
	Name string `mapstructure:"name" default:"thumbnails"`
	// TimeoutSeconds bounds the dial, each read and write, and the startup ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// mysqlDSN escapes the credentials; passwords often carry '@' or '/'.
func (c Config) mysqlDSN() string {
	secs := int(c.timeout().Seconds())
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		url.UserPassword(c.User, c.Password).String(), c.Host, c.Port, c.Name, secs, secs, secs)
}

package main

import (
	"crypto/rand"
	"encoding/base64"
	"io/ioutil"
	"net/url"
	"path/filepath"

	"github.com/go-redis/redis"
	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/tvwall/multiview/pkg/db"
	"github.com/tvwall/multiview/pkg/live"
	"github.com/tvwall/multiview/pkg/model"
	"github.com/tvwall/multiview/pkg/monitor"
	"github.com/tvwall/multiview/pkg/server"
)

type Config struct {
	// Server is the web server configuration
	Server server.Config `toml:"server"`
	// Log is the optional logging configuration
	Log Log `toml:"log"`
	// Resolver controls how live pages are fetched
	Resolver live.Config `toml:"resolver"`
	// Database configuration
	Database db.Config `toml:"database"`
	// Stats is the optional outcome counters configuration
	Stats Stats `toml:"stats"`
	// Monitor periodically re-checks person channels
	Monitor monitor.Config `toml:"monitor"`
}

type Log struct {
	// Filename to write the log to (instead of stdout)
	Filename string `toml:"filename"`
	// MaxSize is the maximum size of the log file in MB
	MaxSize int `toml:"max_size"`
	// MaxBackups is the maximum number of log file backups to keep after rotation
	MaxBackups int `toml:"max_backups"`
	// MaxAge is the maximum number of days to keep the logs for
	MaxAge int `toml:"max_age"`
	// Compress old backups
	Compress bool `toml:"compress"`
}

type Stats struct {
	// RedisURL enables outcome counters, for instance redis://localhost:6379/0
	RedisURL string `toml:"redis_url"`
}

// LoadConfig loads TOML configuration from a file path
func LoadConfig(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", path)
	}

	config := Config{}
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal toml")
	}

	config.applyDefaults(path)

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	var result *multierror.Error

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		result = multierror.Append(result, errors.Errorf("invalid server port %d", c.Server.Port))
	}

	if c.Resolver.BaseURL != "" {
		parsed, err := url.Parse(c.Resolver.BaseURL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			result = multierror.Append(result, errors.Errorf("resolver base_url must be an absolute http(s) URL, got %q", c.Resolver.BaseURL))
		}
	}

	if c.Resolver.Timeout.Duration < 0 {
		result = multierror.Append(result, errors.New("resolver timeout can't be negative"))
	}

	if c.Resolver.MaxBodySize < 0 {
		result = multierror.Append(result, errors.New("resolver max_body_size can't be negative"))
	}

	if c.Stats.RedisURL != "" {
		if _, err := redis.ParseURL(c.Stats.RedisURL); err != nil {
			result = multierror.Append(result, errors.Wrap(err, "invalid stats redis_url"))
		}
	}

	if c.Monitor.Schedule != "" {
		if _, err := cron.ParseStandard(c.Monitor.Schedule); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "invalid monitor schedule %q", c.Monitor.Schedule))
		}
	}

	if c.Monitor.Concurrency < 0 {
		result = multierror.Append(result, errors.New("monitor concurrency can't be negative"))
	}

	return result.ErrorOrNil()
}

func (c *Config) applyDefaults(configPath string) {
	if c.Server.Port == 0 {
		c.Server.Port = server.DefaultPort
	}

	if c.Server.SessionSecret == "" {
		log.Warn("session_secret is not set, viewer sessions will not survive restarts")
		c.Server.SessionSecret = randToken()
	}

	if c.Log.Filename != "" {
		if c.Log.MaxSize == 0 {
			c.Log.MaxSize = model.DefaultLogMaxSize
		}
		if c.Log.MaxAge == 0 {
			c.Log.MaxAge = model.DefaultLogMaxAge
		}
		if c.Log.MaxBackups == 0 {
			c.Log.MaxBackups = model.DefaultLogMaxBackups
		}
	}

	if c.Database.Dir == "" {
		c.Database.Dir = filepath.Join(filepath.Dir(configPath), "db")
	}

	if c.Monitor.Concurrency == 0 {
		c.Monitor.Concurrency = model.DefaultConcurrency
	}
}

func randToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}

package session

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// Config represents the session configuration file structure.
type Config struct {
	// Publish configures how often new roots are handed to watchers.
	Publish *PublishConfig `yaml:"publish,omitempty"`

	// Journal configures recording of applied messages.
	Journal *JournalConfig `yaml:"journal,omitempty"`

	// Render configures outline rendering in the command line tools.
	Render *RenderConfig `yaml:"render,omitempty"`
}

type PublishConfig struct {
	// Interval is the minimum time between two publications.
	// Zero publishes only on explicit Flush.
	Interval time.Duration `yaml:"interval,omitempty"`

	// BroadcastTimeout bounds how long a watcher may block a publication
	// before it is failed.
	BroadcastTimeout time.Duration `yaml:"broadcastTimeout,omitempty"`

	// WatchBuffer is the channel capacity of watchers created by Watch.
	WatchBuffer int `yaml:"watchBuffer,omitempty"`
}

type JournalConfig struct {
	// Path of the sqlite database. Empty disables the journal.
	Path string `yaml:"path,omitempty"`
}

type RenderConfig struct {
	Color bool `yaml:"color,omitempty"`
}

// LoadConfig loads a configuration file in YAML format. Sections missing
// from the file take their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	def := DefaultConfig()
	if cfg.Publish == nil {
		cfg.Publish = def.Publish
	}
	if cfg.Journal == nil {
		cfg.Journal = def.Journal
	}
	if cfg.Render == nil {
		cfg.Render = def.Render
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Publish: &PublishConfig{
			Interval:         100 * time.Millisecond,
			BroadcastTimeout: DefaultBroadcastTimeout,
			WatchBuffer:      16,
		},
		Journal: &JournalConfig{},
		Render:  &RenderConfig{},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if p := c.Publish; p != nil {
		if p.Interval < 0 {
			return fmt.Errorf("publish.interval must not be negative, got %s", p.Interval)
		}
		if p.BroadcastTimeout < 0 {
			return fmt.Errorf("publish.broadcastTimeout must not be negative, got %s", p.BroadcastTimeout)
		}
		if p.WatchBuffer < 0 {
			return fmt.Errorf("publish.watchBuffer must not be negative, got %d", p.WatchBuffer)
		}
	}
	return nil
}

// Package config loads settings from an optional config file and
// NOTES_* environment variables (environment wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/idilsaglam/notes/internal/store"
)

// EnvPrefix is prepended to every environment key: api.base_url -> NOTES_API_BASE_URL.
const EnvPrefix = "NOTES"

type API struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type Storage struct {
	Backend string `mapstructure:"backend"` // file | sqlite | memory
	Dir     string `mapstructure:"dir"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text | json
	File   string `mapstructure:"file"`   // "-" for stderr
}

type Serve struct {
	Addr        string   `mapstructure:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type UI struct {
	Theme string `mapstructure:"theme"`
}

type Config struct {
	API     API     `mapstructure:"api"`
	Storage Storage `mapstructure:"storage"`
	Log     Log     `mapstructure:"log"`
	Serve   Serve   `mapstructure:"serve"`
	UI      UI      `mapstructure:"ui"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".notes"
	}
	return filepath.Join(home, ".notes")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "")
	v.SetDefault("api.timeout", 10*time.Second)
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.dir", defaultDir())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("serve.addr", ":8080")
	v.SetDefault("serve.cors_origins", []string{"*"})
	v.SetDefault("ui.theme", "classic")
}

// Load reads configFile when given; otherwise it looks for config.{yaml,json,toml}
// in the default data dir and the working directory. A missing file is fine.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(v.GetString("storage.dir"))
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if strings.HasPrefix(c.Storage.Dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			c.Storage.Dir = filepath.Join(home, c.Storage.Dir[2:])
		}
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(c.Storage.Dir, "notes.log")
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "file", "sqlite", "memory":
	default:
		return fmt.Errorf("storage.backend: unknown backend %q (want file, sqlite or memory)", c.Storage.Backend)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout: must not be negative")
	}
	return nil
}

// Mode is remote when a base URL is configured, local otherwise.
func (c *Config) Mode() store.Mode {
	if c.API.BaseURL != "" {
		return store.ModeRemote
	}
	return store.ModeLocal
}

// Package config loads settings from defaults, an optional YAML file, an
// optional .env file and WORTSCHATZ_* environment variables, in increasing
// order of precedence. Command-line flags are applied on top by cmd.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/wortschatz/wortschatz/internal/llm"
	"github.com/wortschatz/wortschatz/internal/session"
	"github.com/wortschatz/wortschatz/internal/store"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "WORTSCHATZ"

// Progress backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// ErrUnknownBackend is returned for a progress.backend other than json or
// sqlite.
var ErrUnknownBackend = errors.New("unknown progress backend")

// Config is the resolved application configuration.
type Config struct {
	DataDir  string   `mapstructure:"data_dir"` // vocabulary override directory; empty = embedded
	DBPath   string   `mapstructure:"db_path"`
	Progress Progress `mapstructure:"progress"`
	Log      Log      `mapstructure:"log"`
	Speed    Speed    `mapstructure:"speed"`
	Quiz     Quiz     `mapstructure:"quiz"`
	Coach    Coach    `mapstructure:"coach"`
}

type Progress struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // empty disables logging
}

type Speed struct {
	Duration time.Duration `mapstructure:"duration"`
}

type Quiz struct {
	BatchSize int `mapstructure:"batch_size"`
}

// Coach configures the optional LLM helper.
type Coach struct {
	Provider   string        `mapstructure:"provider"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Anthropic  CoachProvider `mapstructure:"anthropic"`
	OpenAI     CoachProvider `mapstructure:"openai"`
	Gemini     CoachProvider `mapstructure:"gemini"`
	OpenRouter CoachProvider `mapstructure:"openrouter"`
}

type CoachProvider struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// Load reads configuration. path is an explicit config file; when empty,
// $XDG_CONFIG_HOME/wortschatz/config.yaml is used if it exists.
func Load(path string) (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	if err := setDefaults(v); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) error {
	dataDir, err := store.DefaultDataDir()
	if err != nil {
		return err
	}
	stateDir, err := stateDir()
	if err != nil {
		return err
	}
	coach := llm.DefaultConfig()

	v.SetDefault("data_dir", "")
	v.SetDefault("db_path", filepath.Join(dataDir, "wortschatz.db"))
	v.SetDefault("progress.backend", BackendJSON)
	v.SetDefault("progress.path", filepath.Join(dataDir, "progress.json"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(stateDir, "wortschatz.log"))
	v.SetDefault("speed.duration", session.DefaultSpeedDuration)
	v.SetDefault("quiz.batch_size", session.DefaultBatchSize)

	// Every key needs a default for AutomaticEnv to reach it on Unmarshal.
	v.SetDefault("coach.provider", "")
	v.SetDefault("coach.timeout", coach.Timeout)
	for name, pc := range map[string]llm.ProviderConfig{
		"anthropic":  coach.Anthropic,
		"openai":     coach.OpenAI,
		"gemini":     coach.Gemini,
		"openrouter": coach.OpenRouter,
	} {
		v.SetDefault("coach."+name+".api_key", "")
		v.SetDefault("coach."+name+".model", pc.Model)
		v.SetDefault("coach."+name+".base_url", "")
	}
	return nil
}

// Validate checks values that would otherwise fail later.
func (c *Config) Validate() error {
	switch c.Progress.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownBackend, c.Progress.Backend, BackendJSON, BackendSQLite)
	}
	if c.Speed.Duration <= 0 {
		return fmt.Errorf("speed.duration must be positive, got %s", c.Speed.Duration)
	}
	if c.Quiz.BatchSize <= 0 {
		return fmt.Errorf("quiz.batch_size must be positive, got %d", c.Quiz.BatchSize)
	}
	return nil
}

// LLM converts the coach section for llm.NewProvider. A provider is
// discovered from the vendors' standard key variables when none is set.
func (c *Config) LLM() llm.Config {
	out := llm.DefaultConfig()
	out.Provider = c.Coach.Provider
	if c.Coach.Timeout > 0 {
		out.Timeout = c.Coach.Timeout
	}
	out.Anthropic = llm.ProviderConfig(c.Coach.Anthropic)
	out.OpenAI = llm.ProviderConfig(c.Coach.OpenAI)
	out.Gemini = llm.ProviderConfig(c.Coach.Gemini)
	out.OpenRouter = llm.ProviderConfig(c.Coach.OpenRouter)
	out.Discover()
	return out
}

func configDir() (string, error) {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, "wortschatz"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wortschatz"), nil
}

func stateDir() (string, error) {
	if d := os.Getenv("XDG_STATE_HOME"); d != "" {
		return filepath.Join(d, "wortschatz"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".local", "state", "wortschatz"), nil
}

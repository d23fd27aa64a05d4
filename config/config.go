// Package config resolves run settings from defaults, an optional TOML file,
// a .env file, and DOTLAB_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/lixenwraith/dotlab/audio"
	"github.com/lixenwraith/dotlab/game"
	"github.com/lixenwraith/dotlab/geom"
	"github.com/lixenwraith/dotlab/input"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

const (
	EnvPrefix   = "DOTLAB"
	DefaultFile = "dotlab" // dotlab.toml in the working directory
	envFile     = ".env"
)

// Config is the resolved, validated run configuration
type Config struct {
	Scene      game.SceneKind
	FPS        int
	InputMode  input.Mode
	KeyTimeout time.Duration
	Clamp      geom.ClampMode
	Step       int
	SavePath   string
	Debug      bool
	LogDir     string
	Audio      audio.Config
}

func setDefaults(v *viper.Viper) {
	ad := audio.DefaultConfig()
	v.SetDefault("scene", "circle")
	v.SetDefault("fps", 20)
	v.SetDefault("input", "accumulate")
	v.SetDefault("key_timeout", "600ms")
	v.SetDefault("clamp", "legacy")
	v.SetDefault("step", 0)
	v.SetDefault("save_path", "game_save")
	v.SetDefault("debug", false)
	v.SetDefault("log_dir", "logs")
	v.SetDefault("audio.enabled", ad.Enabled)
	v.SetDefault("audio.volume", ad.Volume)
	v.SetDefault("audio.sample_rate", ad.SampleRate)
}

// Load resolves configuration
// An empty path searches for dotlab.toml and tolerates its absence; an explicit path must exist
func Load(path string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(DefaultFile)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	scene, err := game.ParseSceneKind(v.GetString("scene"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	mode, ok := input.ParseMode(v.GetString("input"))
	if !ok {
		return nil, fmt.Errorf("%w: input mode %q", ErrInvalid, v.GetString("input"))
	}
	clamp, ok := geom.ParseClampMode(v.GetString("clamp"))
	if !ok {
		return nil, fmt.Errorf("%w: clamp mode %q", ErrInvalid, v.GetString("clamp"))
	}

	cfg := &Config{
		Scene:      scene,
		FPS:        v.GetInt("fps"),
		InputMode:  mode,
		KeyTimeout: v.GetDuration("key_timeout"),
		Clamp:      clamp,
		Step:       v.GetInt("step"),
		SavePath:   v.GetString("save_path"),
		Debug:      v.GetBool("debug"),
		LogDir:     v.GetString("log_dir"),
		Audio: audio.Config{
			Enabled:    v.GetBool("audio.enabled"),
			Volume:     v.GetFloat64("audio.volume"),
			SampleRate: v.GetInt("audio.sample_rate"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges that parsing alone cannot
func (c *Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	case c.KeyTimeout <= 0:
		return fmt.Errorf("%w: key_timeout must be positive, got %s", ErrInvalid, c.KeyTimeout)
	case c.Step < 0:
		return fmt.Errorf("%w: step must not be negative, got %d", ErrInvalid, c.Step)
	case c.SavePath == "":
		return fmt.Errorf("%w: save_path is empty", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be within 0-1, got %g", ErrInvalid, c.Audio.Volume)
	}
	return nil
}

// GameOptions projects the config onto the frame driver's options
func (c *Config) GameOptions() game.Options {
	return game.Options{
		Scene:      c.Scene,
		FPS:        c.FPS,
		InputMode:  c.InputMode,
		KeyTimeout: c.KeyTimeout,
		Clamp:      c.Clamp,
		Step:       c.Step,
		SavePath:   c.SavePath,
	}
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	RestartAuto   = "auto"
	RestartManual = "manual"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
	Redis    Redis  `yaml:"redis"`
}

type Game struct {
	RestartMode      string        `yaml:"restart-mode" env:"GAME_RESTART_MODE" env-default:"auto"`
	OpponentDelay    time.Duration `yaml:"opponent-delay" env:"GAME_OPPONENT_DELAY" env-default:"300ms"`
	CountdownSeconds int           `yaml:"countdown-seconds" env:"GAME_COUNTDOWN_SECONDS" env-default:"3"`
	CountdownTick    time.Duration `yaml:"countdown-tick" env:"GAME_COUNTDOWN_TICK" env-default:"1s"`
	Seed             int64         `yaml:"seed" env:"GAME_SEED" env-default:"0"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"REDIS_CHANNEL" env-default:"tictactoe:session"`
}

// MustLoad - load all configurations from the yml file, env variables override it.
// A missing file is not an error: env variables and defaults are used instead.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	err := cleanenv.ReadConfig(path, config)
	if errors.Is(err, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, err
	}

	if err = config.Game.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// IsAutoRestart - reports whether a finished game restarts by itself after the countdown.
func (that *Game) IsAutoRestart() bool {
	return that.RestartMode == RestartAuto
}

func (that *Game) validate() error {
	if that.RestartMode != RestartAuto && that.RestartMode != RestartManual {
		return fmt.Errorf("unknown restart-mode %q", that.RestartMode)
	}

	if that.CountdownSeconds < 1 {
		return fmt.Errorf("countdown-seconds must be positive, got %d", that.CountdownSeconds)
	}

	if that.OpponentDelay < 0 || that.CountdownTick <= 0 {
		return fmt.Errorf("invalid game timings: opponent-delay %s, countdown-tick %s", that.OpponentDelay, that.CountdownTick)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

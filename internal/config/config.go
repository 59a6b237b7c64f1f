package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeServer  = "server"
	ModeConsole = "console"
)

var ErrUnknownMode = errors.New("unknown mode")

type Config struct {
	LogLevel       string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode           string        `yaml:"mode" env:"MODE" env-default:"server"`
	HTTPPort       string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort     string        `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis          Redis         `yaml:"redis"`
	SnapshotTTL    time.Duration `yaml:"snapshot-ttl" env:"SNAPSHOT_TTL" env-default:"0s"`
	ConsoleSession string        `yaml:"console-session" env:"CONSOLE_SESSION" env-default:"local"`
	// AllowedOrigins limits websocket handshakes by Origin header. Empty allows any origin.
	AllowedOrigins []string      `yaml:"allowed-origins" env:"ALLOWED_ORIGINS" env-separator:","`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Mode {
	case ModeServer, ModeConsole:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, that.Mode)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath            = "config.yml"
	DefaultPort            = "3000"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultRequestsPerMin  = 0
	DefaultSampleRatio     = 1.0
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Store   StoreConfig   `yaml:"store"`
	Tracing TracingConfig `yaml:"tracing"`
}

type ServerConfig struct {
	Port            string          `yaml:"port"`
	Host            string          `yaml:"host"`
	ReadTimeout     time.Duration   `yaml:"read_timeout"`
	WriteTimeout    time.Duration   `yaml:"write_timeout"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout"`
	Timezone        string          `yaml:"timezone"` // пусто - локальное время сервера
	CORS            CORSConfig      `yaml:"cors"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type RateLimitConfig struct {
	// 0 отключает ограничение
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

type LoggingConfig struct {
	Development bool `yaml:"development"`
}

type TracingConfig struct {
	Enabled bool `yaml:"enabled"`
	// доля новых трасс, попадающих в лог; входящий traceparent имеет приоритет
	SampleRatio float64 `yaml:"sample_ratio"`
}

type StoreConfig struct {
	// true - повторный id при создании отклоняется (409)
	UniqueIDs bool `yaml:"unique_ids"`
}

// Load читает YAML поверх значений по умолчанию; отсутствие файла не ошибка
func Load(path string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("не могу открыть %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ошибка парсинга %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("конфигурация %s: %w", path, err)
	}

	return cfg, nil
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            DefaultPort,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			CORS: CORSConfig{
				AllowedOrigins: []string{"*"},
			},
			RateLimit: RateLimitConfig{
				RequestsPerMinute: DefaultRequestsPerMin,
			},
		},
		Logging: LoggingConfig{
			Development: true,
		},
		Tracing: TracingConfig{
			Enabled:     true,
			SampleRatio: DefaultSampleRatio,
		},
	}
}

func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("server.port %q должен быть числом в диапазоне [1, 65535]", c.Server.Port)
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server: таймауты не могут быть отрицательными")
	}
	if c.Server.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("server.rate_limit.requests_per_minute не может быть отрицательным")
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing.sample_ratio %v должен быть в диапазоне [0, 1]", c.Tracing.SampleRatio)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// пустой timezone - time.Local
func (c *Config) Location() (*time.Location, error) {
	if c.Server.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Server.Timezone)
	if err != nil {
		return nil, fmt.Errorf("server.timezone %q: %w", c.Server.Timezone, err)
	}
	return loc, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type API struct {
	BaseURL string        `yaml:"baseURL"` // "http://localhost:8000", без /api
	Timeout time.Duration `yaml:"timeout"` // "30s"
}

type Session struct {
	TokenDir string `yaml:"tokenDir"` // пусто — os.UserConfigDir()/corkroom
}

type Logging struct {
	Env       string `yaml:"env"`       // dev|stage|prod
	Service   string `yaml:"service"`   // "corkctl"
	Version   string `yaml:"version"`   // "0.1.0"
	AddSource bool   `yaml:"addSource"` // true/false
	Backend   string `yaml:"backend"`   // "std"|"zap"
	Debug     bool   `yaml:"debug"`     // включает подробные логи
}

type Config struct {
	API     API     `yaml:"api"`
	Session Session `yaml:"session"`
	Logging Logging `yaml:"logging"`
}

func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = filepath.Join("internal", "config", "config.yaml")
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal yaml: %w", err)
		}
	case os.IsNotExist(err) && os.Getenv("CONFIG_PATH") == "":
		// файла нет и его не требовали явно — работаем на дефолтах
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	// API_URL перекрывает файл — тот же оверрайд, что у веб-клиента.
	if v := os.Getenv("API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:8000"
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 30 * time.Second
	}
	if cfg.Logging.Service == "" {
		cfg.Logging.Service = "corkctl"
	}

	return &cfg, nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	xdgAppName = "chore"
	configFile = "config.yaml"
	dataFile   = "tasks.txt"

	DefaultCalendar = "Tasks"
)

type Config struct {
	DataFile      string `yaml:"data_file"`
	Calendar      string `yaml:"calendar"`
	RemindOverdue bool   `yaml:"remind_overdue"`
}

// Dir returns ~/.config/chore, where the config, data file and calendar
// state live by default.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", xdgAppName), nil
}

func GetConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Default returns the configuration used when no file exists.
func Default() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return &Config{
		DataFile:      filepath.Join(dir, dataFile),
		Calendar:      DefaultCalendar,
		RemindOverdue: true,
	}, nil
}

// Load reads the config at path, or at GetConfigPath when path is empty.
// Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		if path, err = GetConfigPath(); err != nil {
			return nil, err
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if cfg.Calendar == "" {
		cfg.Calendar = DefaultCalendar
	}
	if cfg.DataFile, err = expandHome(cfg.DataFile); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path, or to GetConfigPath when path is empty.
func Save(path string, cfg *Config) error {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, b, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

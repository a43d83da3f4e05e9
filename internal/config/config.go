package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// HomeEnv overrides the data directory (default ~/.devboard).
const HomeEnv = "DEVBOARD_HOME"

type Config struct {
	DefaultSort     string   `toml:"default_sort"`
	LogLevel        string   `toml:"log_level"`
	CurrentMember   string   `toml:"current_member"`
	ExtraCategories []string `toml:"extra_categories"`
	ExtraTechTags   []string `toml:"extra_tech_tags"`
}

func DefaultConfig() *Config {
	return &Config{
		DefaultSort:     "latest",
		LogLevel:        "info",
		CurrentMember:   "1",
		ExtraCategories: []string{},
		ExtraTechTags:   []string{},
	}
}

func DevboardDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return expandPath(dir), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".devboard"), nil
}

func ConfigPath() (string, error) {
	dir, err := DevboardDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func DatabasePath() (string, error) {
	dir, err := DevboardDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "db", "devboard.sqlite"), nil
}

func LogPath() (string, error) {
	dir, err := DevboardDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "devboard.log"), nil
}

func EnsureDirectories() error {
	dir, err := DevboardDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	dbDir := filepath.Join(dir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return err
	}

	return nil
}

func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()

	// First run: write the defaults so there is a file to edit
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := EnsureDirectories(); err != nil {
			return nil, err
		}
		if err := Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

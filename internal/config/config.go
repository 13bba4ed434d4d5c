package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWikiPath  = "~/vimwiki"
	DefaultRoot      = "index"
	DefaultExtension = ".wiki"
	DefaultDiaryDir  = "diary"
	DefaultFiletype  = "wiki"
)

// Config holds the settings shared by the wikimap binaries
type Config struct {
	WikiPath  string `yaml:"wiki_path"`
	Root      string `yaml:"root"`
	Extension string `yaml:"extension"`
	DiaryDir  string `yaml:"diary_dir"`
	Filetype  string `yaml:"filetype"`
	LogLevel  string `yaml:"log_level"`
	LogJSON   bool   `yaml:"log_json"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		WikiPath:  DefaultWikiPath,
		Root:      DefaultRoot,
		Extension: DefaultExtension,
		DiaryDir:  DefaultDiaryDir,
		Filetype:  DefaultFiletype,
		LogLevel:  "info",
	}
}

// Load reads the config file at DefaultPath, then applies environment
// overrides. A missing file is not an error.
func Load() (Config, error) {
	return LoadFile(DefaultPath())
}

// LoadFile reads the YAML config at path over the defaults, then applies
// environment overrides
func LoadFile(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/wikimap/config.yaml, or the
// WIKIMAP_CONFIG env var when set
func DefaultPath() string {
	if env := os.Getenv("WIKIMAP_CONFIG"); env != "" {
		return env
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "wikimap", "config.yaml")
}

// WikiPath returns the wiki path from the WIKIMAP_WIKI env var,
// falling back to DefaultWikiPath.
func WikiPath() string {
	if env := os.Getenv("WIKIMAP_WIKI"); env != "" {
		return env
	}
	return DefaultWikiPath
}

func (c *Config) applyEnv() {
	if env := os.Getenv("WIKIMAP_WIKI"); env != "" {
		c.WikiPath = env
	}
	if env := os.Getenv("WIKIMAP_ROOT"); env != "" {
		c.Root = env
	}
	if env := os.Getenv("WIKIMAP_EXT"); env != "" {
		c.Extension = env
	}
	if env := os.Getenv("WIKIMAP_DIARY_DIR"); env != "" {
		c.DiaryDir = env
	}
	if env := os.Getenv("WIKIMAP_FILETYPE"); env != "" {
		c.Filetype = env
	}
	if env := os.Getenv("WIKIMAP_LOG_LEVEL"); env != "" {
		c.LogLevel = env
	}
	if env := os.Getenv("WIKIMAP_LOG_JSON"); env != "" {
		if b, err := strconv.ParseBool(env); err == nil {
			c.LogJSON = b
		}
	}
}

func (c *Config) normalize() {
	defaults := Default()
	if strings.TrimSpace(c.WikiPath) == "" {
		c.WikiPath = defaults.WikiPath
	}
	if strings.TrimSpace(c.Root) == "" {
		c.Root = defaults.Root
	}
	if c.Extension == "" {
		c.Extension = defaults.Extension
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
	if strings.TrimSpace(c.DiaryDir) == "" {
		c.DiaryDir = defaults.DiaryDir
	}
	c.Filetype = strings.TrimPrefix(c.Filetype, ".")
	if c.Filetype == "" {
		c.Filetype = defaults.Filetype
	}
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"solcfmt/internal/termstyle"
)

const (
	configFileName = "solcfmt.toml"
	defaultLogName = "solcstd"
)

type projectConfigFile struct {
	Path   string
	Root   string
	Config projectConfig
	meta   toml.MetaData
}

type projectConfig struct {
	Input  inputConfig  `toml:"input"`
	Output outputConfig `toml:"output"`
}

type inputConfig struct {
	Log string `toml:"log"`
}

type outputConfig struct {
	Color   string `toml:"color"`
	Summary bool   `toml:"summary"`
}

// defines reports whether the file set the given key.
func (c *projectConfigFile) defines(key ...string) bool {
	return c != nil && c.meta.IsDefined(key...)
}

func findConfigFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfigFile reads explicit, or the nearest solcfmt.toml when explicit
// is empty. A missing implicit file is not an error and yields nil.
func loadConfigFile(explicit, startDir string) (*projectConfigFile, error) {
	path := explicit
	if path == "" {
		found, ok, err := findConfigFile(startDir)
		if err != nil || !ok {
			return nil, err
		}
		path = found
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	cfg, meta, err := loadProjectConfig(abs)
	if err != nil {
		return nil, err
	}
	return &projectConfigFile{
		Path:   abs,
		Root:   filepath.Dir(abs),
		Config: cfg,
		meta:   meta,
	}, nil
}

func loadProjectConfig(path string) (projectConfig, toml.MetaData, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, meta, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return projectConfig{}, meta, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("input", "log") && strings.TrimSpace(cfg.Input.Log) == "" {
		return projectConfig{}, meta, fmt.Errorf("%s: [input].log must not be empty", path)
	}
	if meta.IsDefined("output", "color") {
		if _, err := termstyle.ParseMode(cfg.Output.Color); err != nil {
			return projectConfig{}, meta, fmt.Errorf("%s: [output].color: %w", path, err)
		}
	}
	return cfg, meta, nil
}

// logPath picks the log to read: the command-line argument, then [input].log
// relative to the config file, then solcstd in the working directory.
func logPath(args []string, cfg *projectConfigFile) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if cfg.defines("input", "log") {
		p := filepath.FromSlash(strings.TrimSpace(cfg.Config.Input.Log))
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(cfg.Root, p)
	}
	return defaultLogName
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Config struct {
	APIKey             string        `toml:"api_key"`
	APIURL             string        `toml:"api_url"`
	ProjectID          int           `toml:"project_id"`
	RegionID           int           `toml:"region_id"`
	Tools              string        `toml:"tools"`
	Transport          string        `toml:"transport"`
	Port               int           `toml:"port"`
	ReadOnly           bool          `toml:"read_only"`
	DisableDestructive bool          `toml:"disable_destructive"`
	LogLevel           string        `toml:"log_level"`
	Safety             SafetyConfig  `toml:"safety"`
	Timeouts           TimeoutConfig `toml:"timeouts"`
	Cache              CacheConfig   `toml:"cache"`
}

type SafetyConfig struct {
	AllowDestructiveTools []string `toml:"allow_destructive_tools"`
}

type TimeoutConfig struct {
	DefaultSeconds int            `toml:"default_seconds"`
	MaxSeconds     int            `toml:"max_seconds"`
	PerTool        map[string]int `toml:"per_tool"`
}

type CacheConfig struct {
	ResponseTTLSeconds int `toml:"response_ttl_seconds"`
}

type Overrides struct {
	APIKey             *string
	APIURL             *string
	Tools              *string
	Transport          *string
	Port               *int
	ReadOnly           *bool
	DisableDestructive *bool
	LogLevel           *string
}

func DefaultConfig() Config {
	return Config{
		APIURL:    "https://api.gcore.com",
		Transport: "stdio",
		Port:      8000,
		LogLevel:  "info",
		Timeouts: TimeoutConfig{
			DefaultSeconds: 30,
			MaxSeconds:     120,
		},
		Cache: CacheConfig{
			ResponseTTLSeconds: 30,
		},
	}
}

// Load merges, in increasing precedence: defaults, the main config file,
// drop-in files from dir (lexical order), GCORE_* environment variables, and
// explicit overrides from flags.
func Load(path string, dir string, overrides Overrides) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		fileCfg, err := readFile(path)
		if err != nil {
			return cfg, err
		}
		merge(&cfg, fileCfg)
	}

	if dir != "" {
		files, err := dropInFiles(dir)
		if err != nil {
			return cfg, err
		}
		for _, file := range files {
			fileCfg, err := readFile(file)
			if err != nil {
				return cfg, err
			}
			merge(&cfg, fileCfg)
		}
	}

	applyEnv(&cfg)
	applyOverrides(&cfg, overrides)
	return cfg, nil
}

func readFile(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); err != nil {
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func dropInFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func merge(dst *Config, src Config) {
	if src.APIKey != "" {
		dst.APIKey = src.APIKey
	}
	if src.APIURL != "" {
		dst.APIURL = src.APIURL
	}
	if src.ProjectID != 0 {
		dst.ProjectID = src.ProjectID
	}
	if src.RegionID != 0 {
		dst.RegionID = src.RegionID
	}
	if src.Tools != "" {
		dst.Tools = src.Tools
	}
	if src.Transport != "" {
		dst.Transport = src.Transport
	}
	if src.Port != 0 {
		dst.Port = src.Port
	}
	if src.ReadOnly {
		dst.ReadOnly = src.ReadOnly
	}
	if src.DisableDestructive {
		dst.DisableDestructive = src.DisableDestructive
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if len(src.Safety.AllowDestructiveTools) > 0 {
		dst.Safety.AllowDestructiveTools = append([]string{}, src.Safety.AllowDestructiveTools...)
	}
	if src.Timeouts.DefaultSeconds != 0 {
		dst.Timeouts.DefaultSeconds = src.Timeouts.DefaultSeconds
	}
	if src.Timeouts.MaxSeconds != 0 {
		dst.Timeouts.MaxSeconds = src.Timeouts.MaxSeconds
	}
	if len(src.Timeouts.PerTool) > 0 {
		dst.Timeouts.PerTool = map[string]int{}
		for tool, seconds := range src.Timeouts.PerTool {
			dst.Timeouts.PerTool[tool] = seconds
		}
	}
	if src.Cache.ResponseTTLSeconds != 0 {
		dst.Cache.ResponseTTLSeconds = src.Cache.ResponseTTLSeconds
	}
}

func applyEnv(cfg *Config) {
	if value := os.Getenv("GCORE_API_KEY"); value != "" {
		cfg.APIKey = value
	}
	if value := os.Getenv("GCORE_API_URL"); value != "" {
		cfg.APIURL = value
	}
	if value := os.Getenv("GCORE_CLOUD_PROJECT_ID"); value != "" {
		if id, err := strconv.Atoi(value); err == nil {
			cfg.ProjectID = id
		}
	}
	if value := os.Getenv("GCORE_CLOUD_REGION_ID"); value != "" {
		if id, err := strconv.Atoi(value); err == nil {
			cfg.RegionID = id
		}
	}
	if value := os.Getenv("GCORE_TOOLS"); value != "" {
		cfg.Tools = value
	}
	if value := os.Getenv("GCORE_TRANSPORT"); value != "" {
		cfg.Transport = value
	}
	if value := os.Getenv("GCORE_PORT"); value != "" {
		if port, err := strconv.Atoi(value); err == nil {
			cfg.Port = port
		}
	}
}

func applyOverrides(cfg *Config, overrides Overrides) {
	if overrides.APIKey != nil {
		cfg.APIKey = *overrides.APIKey
	}
	if overrides.APIURL != nil {
		cfg.APIURL = *overrides.APIURL
	}
	if overrides.Tools != nil {
		cfg.Tools = *overrides.Tools
	}
	if overrides.Transport != nil {
		cfg.Transport = *overrides.Transport
	}
	if overrides.Port != nil {
		cfg.Port = *overrides.Port
	}
	if overrides.ReadOnly != nil {
		cfg.ReadOnly = *overrides.ReadOnly
	}
	if overrides.DisableDestructive != nil {
		cfg.DisableDestructive = *overrides.DisableDestructive
	}
	if overrides.LogLevel != nil {
		cfg.LogLevel = *overrides.LogLevel
	}
}

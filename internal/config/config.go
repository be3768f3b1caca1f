package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// EnvProduction is the environment name that selects the production host.
	EnvProduction = "production"

	// DefaultLocalURL is the Goal Service root used outside production.
	DefaultLocalURL = "http://localhost:3001/"
)

// Config holds all goaltrack configuration.
type Config struct {
	API        APIConfig        `toml:"api"`
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
	Server     ServerConfig     `toml:"server"`
}

// APIConfig selects the Goal Service host.
type APIConfig struct {
	Environment string `toml:"environment"`
	BaseURL     string `toml:"base_url,omitempty"`
	ProdHost    string `toml:"prod_host,omitempty"`
	LocalURL    string `toml:"local_url,omitempty"`
}

// GeneralConfig holds view preferences.
type GeneralConfig struct {
	DefaultCategory string `toml:"default_category,omitempty"`
	DefaultTab      string `toml:"default_tab,omitempty"`
	DBPath          string `toml:"db_path,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig controls the diagnostic log.
type LogConfig struct {
	File  string `toml:"file,omitempty"`
	Level string `toml:"level"`
}

// ServerConfig configures `goaltrack serve`.
type ServerConfig struct {
	Addr   string `toml:"addr"`
	DBPath string `toml:"db_path,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Environment: "development",
			LocalURL:    DefaultLocalURL,
		},
		General: GeneralConfig{
			DefaultTab: "all",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:3001",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "goaltrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "goaltrack")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "goaltrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "goaltrack")
}

// CacheDir returns the XDG-compliant cache directory, home of the log file.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "goaltrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "goaltrack")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// Environment returns GOALTRACK_ENV, falling back to api.environment.
func Environment(cfg Config) string {
	if env := os.Getenv("GOALTRACK_ENV"); env != "" {
		return strings.ToLower(strings.TrimSpace(env))
	}
	return strings.ToLower(strings.TrimSpace(cfg.API.Environment))
}

// GetProdHost returns the production host from env var or config, in that order.
func GetProdHost(cfg Config) string {
	if host := os.Getenv("GOALTRACK_PROD_API_HOST"); host != "" {
		return host
	}
	return cfg.API.ProdHost
}

// BaseURL resolves the Goal Service root. An explicit override (the
// --api-url flag) wins, then api.base_url, then the environment selection:
// https://<prod host>/ in production, the local URL otherwise.
func BaseURL(cfg Config, override string) (string, error) {
	if u := strings.TrimSpace(override); u != "" {
		return withSlash(u), nil
	}
	if u := strings.TrimSpace(cfg.API.BaseURL); u != "" {
		return withSlash(u), nil
	}

	if Environment(cfg) == EnvProduction {
		host := strings.Trim(strings.TrimSpace(GetProdHost(cfg)), "/")
		if host == "" {
			return "", fmt.Errorf("production environment needs GOALTRACK_PROD_API_HOST or api.prod_host")
		}
		host = strings.TrimPrefix(host, "https://")
		return "https://" + host + "/", nil
	}

	if u := strings.TrimSpace(cfg.API.LocalURL); u != "" {
		return withSlash(u), nil
	}
	return DefaultLocalURL, nil
}

// DBPath returns the local database path, defaulting under DataDir.
func DBPath(cfg Config) string {
	if cfg.General.DBPath != "" {
		return cfg.General.DBPath
	}
	return filepath.Join(DataDir(), "goaltrack.db")
}

// ServerDBPath returns the dev server's database path.
func ServerDBPath(cfg Config) string {
	if cfg.Server.DBPath != "" {
		return cfg.Server.DBPath
	}
	return filepath.Join(DataDir(), "devserver.db")
}

// LogPath returns the diagnostic log file path.
func LogPath(cfg Config) string {
	if cfg.Log.File != "" {
		return cfg.Log.File
	}
	return filepath.Join(CacheDir(), "goaltrack.log")
}

func withSlash(u string) string {
	if strings.HasSuffix(u, "/") {
		return u
	}
	return u + "/"
}

// Package config loads the branding and startup settings from TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Defaults.
const (
	DefaultTitle     = "To-Do List"
	DefaultSubtitle  = "University of Oklahoma"
	DefaultTheme     = "classic"
	DefaultPrimary   = "#841617" // OU crimson
	DefaultSecondary = "#FDF5DC" // OU cream
	DefaultLogo      = " _____ \n|  _  |\n| | | |\n| |_| |\n \\___/ "
	ConfigFileName   = "crimson.toml"
	EnvConfigPath    = "CRIMSON_CONFIG"
)

// DefaultSeed is what a fresh session starts with.
var DefaultSeed = []string{
	"Complete React Native Assignment",
	"Study for Mobile Development Exam",
	"Submit project to GitHub",
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Brand holds the two brand colors.
type Brand struct {
	Primary   string `toml:"primary"`
	Secondary string `toml:"secondary"`
}

// Config is the full set of settings.
type Config struct {
	Title    string   `toml:"title"`
	Subtitle string   `toml:"subtitle"`
	Theme    string   `toml:"theme"`
	Logo     string   `toml:"logo"`
	Brand    Brand    `toml:"brand"`
	Seed     []string `toml:"seed"`
	SeedFile string   `toml:"seed_file"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads the config from path. An empty path falls back to
// $CRIMSON_CONFIG, then ./crimson.toml, then the user config dir. When no
// file exists the defaults are returned.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		if v := strings.TrimSpace(os.Getenv(EnvConfigPath)); v != "" {
			path, explicit = v, true
		} else {
			path = findConfigFile()
		}
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	fileCfg := &Config{}
	if _, err := toml.DecodeFile(path, fileCfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	merge(cfg, fileCfg)
	cfg.Path = path
	if cfg.SeedFile != "" && !filepath.IsAbs(cfg.SeedFile) {
		cfg.SeedFile = filepath.Join(filepath.Dir(path), cfg.SeedFile)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks colors and theme name.
func (c *Config) Validate() error {
	if !hexColor.MatchString(c.Brand.Primary) {
		return fmt.Errorf("brand.primary: want #RRGGBB, got %q", c.Brand.Primary)
	}
	if !hexColor.MatchString(c.Brand.Secondary) {
		return fmt.Errorf("brand.secondary: want #RRGGBB, got %q", c.Brand.Secondary)
	}
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("theme: unknown %q (classic, neon, mono)", c.Theme)
	}
	return nil
}

func setDefaults(cfg *Config) {
	cfg.Title = DefaultTitle
	cfg.Subtitle = DefaultSubtitle
	cfg.Theme = DefaultTheme
	cfg.Logo = DefaultLogo
	cfg.Brand = Brand{Primary: DefaultPrimary, Secondary: DefaultSecondary}
	cfg.Seed = append([]string(nil), DefaultSeed...)
}

// merge copies every field set in src over dst. A seed list that is present
// but empty means "start empty".
func merge(dst, src *Config) {
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.Subtitle != "" {
		dst.Subtitle = src.Subtitle
	}
	if src.Theme != "" {
		dst.Theme = src.Theme
	}
	if src.Logo != "" {
		dst.Logo = strings.TrimRight(src.Logo, "\n")
	}
	if src.Brand.Primary != "" {
		dst.Brand.Primary = src.Brand.Primary
	}
	if src.Brand.Secondary != "" {
		dst.Brand.Secondary = src.Brand.Secondary
	}
	if src.Seed != nil {
		dst.Seed = src.Seed
	}
	if src.SeedFile != "" {
		dst.SeedFile = src.SeedFile
	}
}

// findConfigFile looks in the working directory first, then the user
// config dir.
func findConfigFile() string {
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}
	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "crimson", ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

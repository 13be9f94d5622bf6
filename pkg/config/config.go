// Package config loads tabcat's settings. Three layers, later wins:
// embedded defaults, the user config file under the XDG config
// directory, and TABCAT_* environment variables.
//
// The config feeds flag defaults only; flags the user sets explicitly
// always take precedence in the command layer.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	tcerrors "github.com/wolfe-services/tabcat/pkg/errors"
)

//go:embed defaults.toml
var defaultConfig []byte

// envPrefix is the prefix for environment overrides, e.g.
// TABCAT_OUTPUT_STYLE=markdown.
const envPrefix = "TABCAT_"

// Output holds the rendering defaults
type Output struct {
	Style    string `koanf:"style"`
	Format   string `koanf:"format"`
	MaxWidth int    `koanf:"max_width"`
	Color    string `koanf:"color"`
	Theme    string `koanf:"theme"`
}

// Input holds the input parsing defaults
type Input struct {
	Delimiter string `koanf:"delimiter"`
	Header    bool   `koanf:"header"`
}

// Config is the fully resolved configuration
type Config struct {
	Output Output `koanf:"output"`
	Input  Input  `koanf:"input"`
}

// rawBytesProvider implements the koanf provider interface for
// embedded bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Path returns the user config file location.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "tabcat", "tabcat.toml")
}

// Load resolves the configuration from all layers.
func Load() (*Config, error) {
	return load(Path())
}

func load(userPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, tcerrors.Wrap(err, tcerrors.ErrConfigParse, "failed to load defaults")
	}

	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, tcerrors.Wrapf(err, tcerrors.ErrConfigLoad,
				"failed to load config from %s", userPath)
		}
	}

	// TABCAT_OUTPUT_STYLE -> output.style. Only the first underscore
	// becomes a separator so snake_case keys like max_width survive.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Join(strings.SplitN(s, "_", 2), ".")
	}), nil)
	if err != nil {
		return nil, tcerrors.Wrap(err, tcerrors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, tcerrors.Wrap(err, tcerrors.ErrConfigParse, "failed to unmarshal config")
	}
	return &cfg, nil
}

// Package styles defines the visual styling for tabcat's terminal
// output.
//
// All styles use semantic names and adaptive colors that adjust to
// light and dark terminal themes. The defaults are embedded in the
// binary; users can override them with their own YAML sheet via the
// config file's theme key.
package styles

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultSheet []byte

// ColorDef is an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config is a complete style sheet
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles. It is populated
// from the embedded sheet at init and can be replaced with LoadFile.
var Registry map[string]lipgloss.Style

// renderer is pinned to the ANSI profile so styled output does not
// depend on the terminal the process is attached to.
var renderer = lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.ANSI))

func init() {
	reg, err := build(defaultSheet)
	if err != nil {
		// The embedded sheet is validated by tests; an error here is a
		// packaging bug, fall back to an empty registry.
		reg = map[string]lipgloss.Style{}
	}
	Registry = reg
}

// Get returns the style registered under name, or a zero style when
// the name is unknown.
func Get(name string) lipgloss.Style {
	if s, ok := Registry[name]; ok {
		return s
	}
	return renderer.NewStyle()
}

// LoadFile replaces the registry with the sheet at path.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read style sheet: %w", err)
	}
	reg, err := build(data)
	if err != nil {
		return err
	}
	Registry = reg
	return nil
}

func build(data []byte) (map[string]lipgloss.Style, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse style sheet: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	reg := make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style := renderer.NewStyle()
		if def.Bold {
			style = style.Bold(true)
		}
		if def.Italic {
			style = style.Italic(true)
		}
		if def.Underline {
			style = style.Underline(true)
		}
		if def.Foreground != "" {
			style = style.Foreground(resolveColor(colors, def.Foreground))
		}
		if def.Background != "" {
			style = style.Background(resolveColor(colors, def.Background))
		}
		reg[name] = style
	}
	return reg, nil
}

// resolveColor maps a named color from the sheet's palette, falling
// back to treating the value as a literal color.
func resolveColor(colors map[string]lipgloss.AdaptiveColor, value string) lipgloss.TerminalColor {
	if c, ok := colors[value]; ok {
		return c
	}
	return lipgloss.Color(value)
}

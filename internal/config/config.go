package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// colorNameMap maps user-friendly color names to ANSI 16-color values
var colorNameMap = map[string]string{
	// Standard colors (0-7)
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	// Bright colors (8-15)
	"bright-black":   "8",
	"gray":           "8", // alias for bright-black
	"bright-red":     "9",
	"bright-green":   "10",
	"bright-yellow":  "11",
	"bright-blue":    "12",
	"bright-magenta": "13",
	"bright-cyan":    "14",
	"bright-white":   "15",
}

// resolveColorValue converts color names to ANSI numbers. Hex colors, ANSI
// numbers and 256-color codes are passed through for lipgloss to handle.
func resolveColorValue(colorInput string) string {
	if colorInput == "" {
		return colorInput
	}
	if ansiValue, exists := colorNameMap[strings.ToLower(colorInput)]; exists {
		return ansiValue
	}
	return colorInput
}

// ColorScheme holds the palette used by the terminal output
type ColorScheme struct {
	Title    string `toml:"title"`
	Year     string `toml:"year"`
	Month    string `toml:"month"`
	Entry    string `toml:"entry"`
	Success  string `toml:"success"`
	Error    string `toml:"error"`
	Warning  string `toml:"warning"`
	Info     string `toml:"info"`
	Muted    string `toml:"muted"`
	Label    string `toml:"label"`
	Active   string `toml:"active"`   // streak dot for a written day
	Inactive string `toml:"inactive"` // streak dot for a missed day
	Padding  string `toml:"padding"`  // grid cells outside the range
}

// Config is the per-user configuration in ~/.config/jerd/config.toml
type Config struct {
	Editor    string      `toml:"editor"`
	Journal   string      `toml:"journal"`    // journal used when none is found from the working directory
	ColorMode string      `toml:"color_mode"` // "light", "dark", or empty for dark
	GitPush   bool        `toml:"git_push"`
	Colors    ColorScheme `toml:"colors"`
}

// Path returns the location of the user config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "jerd", "config.toml"), nil
}

// Load reads the user config file if there is one, then applies environment
// overrides and defaults. A missing file is not an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom is Load with an explicit file path
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		cfg.Journal = expandEnv(cfg.Journal)
		cfg.Editor = expandEnv(cfg.Editor)
	}

	// Environment variables override the file
	if dir := os.Getenv("JERD_DIR"); dir != "" {
		cfg.Journal = expandEnv(dir)
	}
	if editor := os.Getenv("EDITOR"); editor != "" && cfg.Editor == "" {
		cfg.Editor = editor
	}
	if mode := os.Getenv("JERD_COLOR_MODE"); mode != "" {
		cfg.ColorMode = mode
	}
	if push := os.Getenv("JERD_GIT_PUSH"); push != "" {
		cfg.GitPush = push == "true" || push == "1"
	}

	if cfg.Editor == "" {
		cfg.Editor = DefaultEditor()
	}

	cfg.initializeColors()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as TOML, creating the directory if needed
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}

// DefaultEditor is $EDITOR, else the platform's simple terminal editor
func DefaultEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "nano"
}

func expandEnv(s string) string {
	if s == "" {
		return s
	}
	if strings.HasPrefix(s, "~/") {
		home, _ := os.UserHomeDir()
		s = filepath.Join(home, s[2:])
	}
	// Replace $HOME with actual home directory
	if strings.Contains(s, "$HOME") {
		home, _ := os.UserHomeDir()
		s = strings.ReplaceAll(s, "$HOME", home)
	}
	return os.ExpandEnv(s)
}

// Validate checks the values a user can get wrong in the file
func (c *Config) Validate() error {
	switch strings.ToLower(c.ColorMode) {
	case "", "light", "dark":
	default:
		return fmt.Errorf("invalid color_mode %q: use \"light\" or \"dark\"", c.ColorMode)
	}
	if strings.TrimSpace(c.Editor) == "" {
		return errors.New("editor must not be empty")
	}
	return nil
}

// DefaultColors returns the built-in palette for "light" or "dark" mode.
// Any other mode gets the dark palette.
func DefaultColors(mode string) ColorScheme {
	if strings.ToLower(mode) == "light" {
		// Tuned for light terminal backgrounds
		return ColorScheme{
			Title:    "5",       // Magenta
			Year:     "3",       // Yellow
			Month:    "4",       // Blue
			Entry:    "2",       // Green
			Success:  "2",       // Green
			Error:    "1",       // Red
			Warning:  "3",       // Yellow
			Info:     "4",       // Blue
			Muted:    "8",       // Bright black
			Label:    "5",       // Magenta
			Active:   "#1a7f37", // Dark green
			Inactive: "#d0d7de", // Light gray
			Padding:  "#f6f8fa", // Near-white
		}
	}

	// Tuned for dark terminal backgrounds
	return ColorScheme{
		Title:    "13",      // Bright magenta
		Year:     "11",      // Bright yellow
		Month:    "14",      // Bright cyan
		Entry:    "10",      // Bright green
		Success:  "10",      // Bright green
		Error:    "9",       // Bright red
		Warning:  "11",      // Bright yellow
		Info:     "12",      // Bright blue
		Muted:    "#6b7280", // Gray
		Label:    "#8b5cf6", // Violet
		Active:   "#39d353", // GitHub green
		Inactive: "#161b22", // Dark gray
		Padding:  "#0d1117", // Nearly invisible
	}
}

// initializeColors fills unset palette entries from the light or dark
// defaults and resolves color names
func (c *Config) initializeColors() {
	defaults := DefaultColors(c.ColorMode)

	fill := func(value *string, fallback string) {
		if *value == "" {
			*value = fallback
		}
		*value = resolveColorValue(*value)
	}

	fill(&c.Colors.Title, defaults.Title)
	fill(&c.Colors.Year, defaults.Year)
	fill(&c.Colors.Month, defaults.Month)
	fill(&c.Colors.Entry, defaults.Entry)
	fill(&c.Colors.Success, defaults.Success)
	fill(&c.Colors.Error, defaults.Error)
	fill(&c.Colors.Warning, defaults.Warning)
	fill(&c.Colors.Info, defaults.Info)
	fill(&c.Colors.Muted, defaults.Muted)
	fill(&c.Colors.Label, defaults.Label)
	fill(&c.Colors.Active, defaults.Active)
	fill(&c.Colors.Inactive, defaults.Inactive)
	fill(&c.Colors.Padding, defaults.Padding)
}

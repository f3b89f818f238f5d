package config

import "time"

// Config is the complete linkdraw configuration.
type Config struct {
	Editor EditorConfig `toml:"editor" yaml:"editor"`
	Theme  ThemeConfig  `toml:"theme" yaml:"theme"`
	Spring SpringConfig `toml:"spring" yaml:"spring"`
	Log    LogConfig    `toml:"log" yaml:"log"`

	// path is the file the config was loaded from, if any.
	path string
}

// EditorConfig holds interaction settings.
type EditorConfig struct {
	// NodeRadius is the node hit radius in diagram units.
	NodeRadius float64 `toml:"node_radius" yaml:"node_radius"`

	// ArrowLength is the arrowhead length in diagram units.
	ArrowLength float64 `toml:"arrow_length" yaml:"arrow_length"`

	// LinkTolerance is how close the pointer must be to hover a link.
	LinkTolerance float64 `toml:"link_tolerance" yaml:"link_tolerance"`

	// DoubleClickMS is the maximum interval between clicks of a double click.
	DoubleClickMS int `toml:"double_click_ms" yaml:"double_click_ms"`

	// StartPolicy is "supersede" or "reject".
	StartPolicy string `toml:"start_policy" yaml:"start_policy"`

	// Scene is a Lua scene script to load at startup. Empty uses the
	// built-in example.
	Scene string `toml:"scene" yaml:"scene"`
}

// DoubleClickTime returns DoubleClickMS as a duration.
func (e EditorConfig) DoubleClickTime() time.Duration {
	return time.Duration(e.DoubleClickMS) * time.Millisecond
}

// ThemeConfig holds hex colors. Empty values keep the built-in colors.
type ThemeConfig struct {
	Node          string `toml:"node" yaml:"node"`
	NodeHighlight string `toml:"node_highlight" yaml:"node_highlight"`
	Link          string `toml:"link" yaml:"link"`
	LinkMarked    string `toml:"link_marked" yaml:"link_marked"`
	LinkHover     string `toml:"link_hover" yaml:"link_hover"`
	Lasso         string `toml:"lasso" yaml:"lasso"`
}

// SpringConfig tunes the link hover animation.
type SpringConfig struct {
	Stiffness float64 `toml:"stiffness" yaml:"stiffness"`
	Damping   float64 `toml:"damping" yaml:"damping"`
	Precision float64 `toml:"precision" yaml:"precision"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`

	// File receives log output. Empty disables logging, since the
	// terminal is owned by the editor.
	File string `toml:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			NodeRadius:    10,
			ArrowLength:   8,
			LinkTolerance: 4,
			DoubleClickMS: 400,
			StartPolicy:   "supersede",
		},
		Spring: SpringConfig{
			Stiffness: 170,
			Damping:   26,
			Precision: 0.01,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Path returns the file the config was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

// Clone returns a copy of the config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// Package config loads and saves the editor's drawing parameters.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Drawing holds the tunable drawing constants of the editor.
type Drawing struct {
	Canvas      CanvasConfig      `toml:"canvas"`
	Vertex      VertexConfig      `toml:"vertex"`
	Edge        EdgeConfig        `toml:"edge"`
	Interaction InteractionConfig `toml:"interaction"`
}

// CanvasConfig controls the drawing area.
type CanvasConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

// VertexConfig controls vertex defaults. An empty Color means every
// new vertex gets a random fill color.
type VertexConfig struct {
	Radius     float64 `toml:"radius"`
	Color      string  `toml:"color"`
	ShowLabels bool    `toml:"show_labels"`
}

// EdgeConfig controls edge defaults and the arrow tip geometry for
// directed edges: the length taken on the edge and half the spread
// between the two barbs.
type EdgeConfig struct {
	Color          string  `toml:"color"`
	ArrowTipWidth  float64 `toml:"arrow_tip_width"`
	ArrowTipHeight float64 `toml:"arrow_tip_height"`
}

// InteractionConfig tunes the pointer behavior: the pixel distance
// within which a click hits an edge, and the displacement below which
// a press-release counts as a click rather than a drag.
type InteractionConfig struct {
	EdgeHitSlack   float64 `toml:"edge_hit_slack"`
	ClickThreshold float64 `toml:"click_threshold"`
}

// Default returns the default drawing parameters.
func Default() *Drawing {
	return &Drawing{
		Canvas: CanvasConfig{Width: 600, Height: 400, Background: "#ffffff"},
		Vertex: VertexConfig{Radius: 20, ShowLabels: true},
		Edge:   EdgeConfig{Color: "#000000", ArrowTipWidth: 15, ArrowTipHeight: 8},
		Interaction: InteractionConfig{
			EdgeHitSlack:   10,
			ClickThreshold: 10,
		},
	}
}

// ConfigDir returns the graphed config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "graphed")
}

func configPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, falling back to defaults if it doesn't
// exist. Fields missing from the file keep their default values, and
// non-positive sizes are reset so a broken file cannot produce a
// degenerate canvas.
func Load() *Drawing {
	cfg := Default()
	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	_ = toml.Unmarshal(data, cfg)
	def := Default()
	if cfg.Canvas.Width <= 0 {
		cfg.Canvas.Width = def.Canvas.Width
	}
	if cfg.Canvas.Height <= 0 {
		cfg.Canvas.Height = def.Canvas.Height
	}
	if cfg.Canvas.Background == "" {
		cfg.Canvas.Background = def.Canvas.Background
	}
	if cfg.Vertex.Radius <= 0 {
		cfg.Vertex.Radius = def.Vertex.Radius
	}
	if cfg.Edge.Color == "" {
		cfg.Edge.Color = def.Edge.Color
	}
	if cfg.Interaction.EdgeHitSlack <= 0 {
		cfg.Interaction.EdgeHitSlack = def.Interaction.EdgeHitSlack
	}
	if cfg.Interaction.ClickThreshold <= 0 {
		cfg.Interaction.ClickThreshold = def.Interaction.ClickThreshold
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg *Drawing) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// EnsureExists creates the config file with defaults if it doesn't exist.
func EnsureExists() error {
	path := configPath()
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return Save(Default())
}

// Package config provides YAML-based runtime configuration for brickfall.
// Gameplay constants are part of the game's identity and stay compiled in;
// only presentation and storage knobs live here.
package config

// Config contains the runtime configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
}

// DisplayConfig defines how the game is presented.
type DisplayConfig struct {
	// FPS is the render frame rate. The simulation always runs at a
	// fixed 60 ticks per second regardless of this value.
	FPS int `yaml:"fps"`

	// Color enables colored rendering.
	Color bool `yaml:"color"`
}

// StorageConfig defines where scores are persisted.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			FPS:   60,
			Color: true,
		},
		Storage: StorageConfig{
			DBPath: "~/.brickfall/scores.db",
		},
	}
}

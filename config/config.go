// Package config loads the YAML run configuration. Compile-time defaults live in
// parameter; a file only needs the keys it overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/fps-proto/parameter"
)

// DefaultPath is read when no -config flag is given
const DefaultPath = "fps-proto.yaml"

var (
	ErrInvalidTickRate    = errors.New("sim.tick_rate must be positive")
	ErrInvalidSpeed       = errors.New("player.speed must be positive")
	ErrInvalidSensitivity = errors.New("player.sensitivity must be positive")
	ErrInvalidDamping     = errors.New("movement.damping must be in (0, 1]")
	ErrUnknownMode        = errors.New("movement.mode must be velocity or kinematic")
	ErrInvalidHoldWindow  = errors.New("input.hold_window must be positive and not exceed input.initial_hold_window")
	ErrInvalidCellScale   = errors.New("input.mouse_cell_scale must be positive")
	ErrInvalidVolume      = errors.New("audio.volume must be in [0, 1]")
	ErrUnknownLevel       = errors.New("logging.level is not a known level")
	ErrUnknownFormat      = errors.New("logging.format must be console or json")
)

type Config struct {
	Sim      SimConfig      `yaml:"sim"`
	Player   PlayerConfig   `yaml:"player"`
	Movement MovementConfig `yaml:"movement"`
	Input    InputConfig    `yaml:"input"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type SimConfig struct {
	TickRate int `yaml:"tick_rate"`
}

type PlayerConfig struct {
	Speed       float64           `yaml:"speed"`
	Sensitivity SensitivityConfig `yaml:"sensitivity"`
}

type SensitivityConfig struct {
	Yaw   float64 `yaml:"yaw"`
	Pitch float64 `yaml:"pitch"`
}

type MovementConfig struct {
	Mode              string  `yaml:"mode"`
	Damping           float64 `yaml:"damping"`
	TimeScaledDamping bool    `yaml:"time_scaled_damping"`
}

type InputConfig struct {
	InitialHoldWindow time.Duration `yaml:"initial_hold_window"`
	HoldWindow        time.Duration `yaml:"hold_window"`
	MouseCellScale    float64       `yaml:"mouse_cell_scale"`
	ArrowLookStep     float64       `yaml:"arrow_look_step"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File enables logging when set; empty discards unless -debug is given
	File string `yaml:"file"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Sim: SimConfig{TickRate: parameter.DefaultTickRate},
		Player: PlayerConfig{
			Speed: parameter.DefaultMoveSpeed,
			Sensitivity: SensitivityConfig{
				Yaw:   parameter.DefaultSensitivityYaw,
				Pitch: parameter.DefaultSensitivityPitch,
			},
		},
		Movement: MovementConfig{
			Mode:    "velocity",
			Damping: parameter.DampingFactor,
		},
		Input: InputConfig{
			InitialHoldWindow: parameter.DefaultInitialHoldWindow,
			HoldWindow:        parameter.DefaultHoldWindow,
			MouseCellScale:    parameter.DefaultMouseCellScale,
			ArrowLookStep:     parameter.DefaultArrowLookStep,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.JumpChirpVolume,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults and validates the result.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field
func (c *Config) Validate() error {
	switch {
	case c.Sim.TickRate <= 0:
		return fmt.Errorf("%w: %d", ErrInvalidTickRate, c.Sim.TickRate)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, c.Player.Speed)
	case c.Player.Sensitivity.Yaw <= 0 || c.Player.Sensitivity.Pitch <= 0:
		return fmt.Errorf("%w: yaw=%v pitch=%v", ErrInvalidSensitivity, c.Player.Sensitivity.Yaw, c.Player.Sensitivity.Pitch)
	case c.Movement.Damping <= 0 || c.Movement.Damping > 1:
		return fmt.Errorf("%w: %v", ErrInvalidDamping, c.Movement.Damping)
	case c.Movement.Mode != "velocity" && c.Movement.Mode != "kinematic":
		return fmt.Errorf("%w: %q", ErrUnknownMode, c.Movement.Mode)
	case c.Input.HoldWindow <= 0 || c.Input.InitialHoldWindow < c.Input.HoldWindow:
		return fmt.Errorf("%w: initial=%v repeat=%v", ErrInvalidHoldWindow, c.Input.InitialHoldWindow, c.Input.HoldWindow)
	case c.Input.MouseCellScale <= 0:
		return fmt.Errorf("%w: %v", ErrInvalidCellScale, c.Input.MouseCellScale)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: %v", ErrInvalidVolume, c.Audio.Volume)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLevel, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Logging.Format)
	}
	return nil
}

// TickInterval converts the tick rate to a duration
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Sim.TickRate)
}

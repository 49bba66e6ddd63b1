package pageflip

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("pageflip: invalid config")

// Config is the yaml-loadable setup of an effect and its progress driver.
//
//	effect:
//	  radius: 100
//	  anchor: [0, 0]
//	  scroll_angle: 30
//	  level: 4
//	driver:
//	  easing: in-out-sine
//	  timing: linear
//	  duration: 1.5
//	  revert_on_deactivate: true
//	log:
//	  level: info
//	  file: ""
type Config struct {
	Effect EffectConfig `yaml:"effect"`
	Driver DriverConfig `yaml:"driver"`
	Log    LogConfig    `yaml:"log"`
}

// EffectConfig holds the starting effect parameters.
type EffectConfig struct {
	Radius      float64    `yaml:"radius"`
	Anchor      [2]float64 `yaml:"anchor"`
	ScrollAngle float64    `yaml:"scroll_angle"`
	Level       int        `yaml:"level"`
}

// DriverConfig holds the progress driver and playback settings.
type DriverConfig struct {
	// Easing names the curve blending the angle during the rolling phase.
	Easing string `yaml:"easing"`
	// Timing names the curve ProgressTween plays progress with.
	Timing string `yaml:"timing"`
	// Duration is the playback length of a full flip, in seconds.
	Duration           float64 `yaml:"duration"`
	RevertOnDeactivate bool    `yaml:"revert_on_deactivate"`
}

// LogConfig selects the process logger built by programs embedding the
// effect. The library itself only logs through SetLogger.
type LogConfig struct {
	Level string `yaml:"level"`
	// File enables a rotated log file when not empty.
	File string `yaml:"file"`
}

// DefaultConfig returns the configuration matching NewEffect and
// NewProgressDriver defaults.
func DefaultConfig() *Config {
	return &Config{
		Effect: EffectConfig{
			Radius: DefaultRadius,
			Level:  DefaultSubdivisionLevel,
		},
		Driver: DriverConfig{
			Easing:             "linear",
			Timing:             "linear",
			Duration:           1,
			RevertOnDeactivate: true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// ParseConfig decodes yaml data on top of DefaultConfig and validates it.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		Logger().Warn("rejected config", zap.Error(err))
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the yaml file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes c as yaml.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	e := c.Effect
	switch {
	case math.IsNaN(e.Radius) || e.Radius <= 0:
		return fmt.Errorf("%w: effect.radius must be positive, got %v", ErrInvalidConfig, e.Radius)
	case math.IsNaN(e.Anchor[0]) || math.IsNaN(e.Anchor[1]) ||
		e.Anchor[0] < 0 || e.Anchor[0] > 1 || e.Anchor[1] < 0 || e.Anchor[1] > 1:
		return fmt.Errorf("%w: effect.anchor must lie in [0,1]², got %v", ErrInvalidConfig, e.Anchor)
	case math.IsNaN(e.ScrollAngle) || e.ScrollAngle < -180 || e.ScrollAngle > 180:
		return fmt.Errorf("%w: effect.scroll_angle must lie in [-180,180], got %v", ErrInvalidConfig, e.ScrollAngle)
	case e.Level < 0 || e.Level > MaxSubdivisionLevel:
		return fmt.Errorf("%w: effect.level must lie in [0,%d], got %d", ErrInvalidConfig, MaxSubdivisionLevel, e.Level)
	case math.IsNaN(c.Driver.Duration) || c.Driver.Duration < 0:
		return fmt.Errorf("%w: driver.duration must not be negative, got %v", ErrInvalidConfig, c.Driver.Duration)
	}
	if _, err := TweenByName(c.Driver.Easing); err != nil {
		return fmt.Errorf("%w: driver.easing: %w", ErrInvalidConfig, err)
	}
	if _, err := TweenByName(c.Driver.Timing); err != nil {
		return fmt.Errorf("%w: driver.timing: %w", ErrInvalidConfig, err)
	}
	if _, err := zapcore.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Params returns the configured starting parameters.
func (e EffectConfig) Params() EffectParameters {
	return EffectParameters{
		Radius:         e.Radius,
		CylinderAnchor: mgl64.Vec2{e.Anchor[0], e.Anchor[1]},
		ScrollAngle:    e.ScrollAngle,
	}.Clamp()
}

// Apply configures effect and driver. Either may be nil. c must be valid.
func (c *Config) Apply(effect *Effect, driver *ProgressDriver) error {
	if effect != nil {
		effect.Params = c.Effect.Params()
		effect.SetLevel(c.Effect.Level)
	}
	if driver != nil {
		fn, err := EasingByName(c.Driver.Easing)
		if err != nil {
			return err
		}
		driver.SetEase(fn)
		driver.SetRevertOnDeactivate(c.Driver.RevertOnDeactivate)
	}
	return nil
}

// NewTween returns a ProgressTween playing from from to to with the
// configured timing curve and duration.
func (c *Config) NewTween(from, to float64) (*ProgressTween, error) {
	fn, err := TweenByName(c.Driver.Timing)
	if err != nil {
		return nil, err
	}
	return NewProgressTween(from, to, float32(c.Driver.Duration), fn), nil
}

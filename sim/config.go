package sim

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Default operating parameters: an eight-hour business day with service
// times between two and three minutes.
const (
	DefaultWindowMinutes int64 = 480
	DefaultServiceMin    int64 = 2
	DefaultServiceMax    int64 = 3
)

// Config holds every parameter of a branch simulation. Start from
// DefaultConfig and override, or load from YAML via LoadConfig; call
// Validate before handing it to NewSimulator.
type Config struct {
	Lambda        float64 `yaml:"lambda"`         // mean customer arrivals per minute
	Tellers       int     `yaml:"tellers"`        // number of service slots (>= 1)
	WindowMinutes int64   `yaml:"window_minutes"` // minutes the door stays open (0 = closed all day)
	ServiceMin    int64   `yaml:"service_min"`    // shortest service duration, minutes
	ServiceMax    int64   `yaml:"service_max"`    // longest service duration, minutes
	Seed          int64   `yaml:"seed"`           // master RNG seed; same seed replays the run exactly
}

// DefaultConfig returns the canonical single-teller branch: an eight-hour
// window, one arrival every two minutes on average, two-to-three minute
// service times.
func DefaultConfig() Config {
	return Config{
		Lambda:        0.5,
		Tellers:       1,
		WindowMinutes: DefaultWindowMinutes,
		ServiceMin:    DefaultServiceMin,
		ServiceMax:    DefaultServiceMax,
		Seed:          1,
	}
}

// Validate checks that the configuration describes a runnable simulation.
func (c Config) Validate() error {
	if math.IsNaN(c.Lambda) || math.IsInf(c.Lambda, 0) {
		return fmt.Errorf("lambda must be a finite number, got %f", c.Lambda)
	}
	if c.Lambda < 0 {
		return fmt.Errorf("lambda must be non-negative, got %f", c.Lambda)
	}
	if c.Tellers < 1 {
		return fmt.Errorf("tellers must be at least 1, got %d", c.Tellers)
	}
	if c.WindowMinutes < 0 {
		return fmt.Errorf("window_minutes must be non-negative, got %d", c.WindowMinutes)
	}
	if c.ServiceMin < 1 {
		return fmt.Errorf("service_min must be at least 1 minute, got %d", c.ServiceMin)
	}
	if c.ServiceMax < c.ServiceMin {
		return fmt.Errorf("service_max %d is below service_min %d", c.ServiceMax, c.ServiceMin)
	}
	return nil
}

// LoadConfig reads and parses a YAML simulation configuration file. Fields
// left out of the file keep their DefaultConfig values, so a scenario only
// has to state what it changes. Uses strict parsing: unrecognized keys
// (typos) are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading simulation config: %w", err)
	}
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing simulation config: %w", err)
	}
	return &cfg, nil
}

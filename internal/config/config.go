package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orrery/internal/solar"
)

const (
	DefaultTimeFactor = solar.DefaultTimeFactor
	DefaultFPS        = 60
	DefaultWidth      = 1280
	DefaultHeight     = 720
	DefaultTitle      = "orrery"
	DefaultZoom       = solar.DefaultZoom
	DefaultLogLevel   = "info"
	DefaultDataDir    = ".orrery"
	DefaultTheme      = "minimal"
)

var (
	ErrFPS         = errors.New("config: fps must be positive")
	ErrWindow      = errors.New("config: window size must be positive")
	ErrMoonCount   = errors.New("config: moon count must not be negative")
	ErrUnknownBody = errors.New("config: unknown planet")
)

// ValidationError reports which field failed validation.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

type Config struct {
	TimeFactor float64                 `yaml:"time_factor"`
	FPS        int                     `yaml:"fps"`
	Window     WindowConfig            `yaml:"window"`
	Camera     CameraConfig            `yaml:"camera"`
	Moons      map[string]int          `yaml:"moons,omitempty"`
	Planets    map[string]PlanetConfig `yaml:"planets,omitempty"`
	Log        LogConfig               `yaml:"log"`
	DataDir    string                  `yaml:"data_dir"`
	Theme      string                  `yaml:"theme"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraConfig struct {
	Zoom      float64 `yaml:"zoom"`
	RotationX float64 `yaml:"rotation_x"`
	RotationY float64 `yaml:"rotation_y"`
}

// PlanetConfig overrides the display values of one planet. Unset fields keep
// the built-in value.
type PlanetConfig struct {
	Distance    *float64 `yaml:"distance,omitempty"`
	Radius      *float64 `yaml:"radius,omitempty"`
	Period      *float64 `yaml:"period,omitempty"`
	Inclination *float64 `yaml:"inclination,omitempty"`
}

func (o PlanetConfig) apply(p *solar.PlanetSpec) {
	if o.Distance != nil {
		p.Distance = *o.Distance
	}
	if o.Radius != nil {
		p.Radius = *o.Radius
	}
	if o.Period != nil {
		p.Period = *o.Period
	}
	if o.Inclination != nil {
		p.InclinationDeg = *o.Inclination
	}
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

func DefaultConfig() *Config {
	return &Config{
		TimeFactor: DefaultTimeFactor,
		FPS:        DefaultFPS,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
		},
		Camera: CameraConfig{
			Zoom: DefaultZoom,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		DataDir: DefaultDataDir,
		Theme:   DefaultTheme,
	}
}

// Load reads a yaml file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a yaml file on top of base and validates the result. Keys
// missing from the file keep their value in base.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, err
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.TimeFactor <= 0 {
		return &ValidationError{Field: "time_factor", Err: solar.ErrTimeFactor}
	}
	if c.FPS <= 0 {
		return &ValidationError{Field: "fps", Err: ErrFPS}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return &ValidationError{Field: "window", Err: ErrWindow}
	}
	if c.Camera.Zoom <= 0 {
		return &ValidationError{Field: "camera.zoom", Err: solar.ErrZoom}
	}
	for name, n := range c.Moons {
		if !knownPlanet(name) {
			return &ValidationError{Field: "moons." + name, Err: ErrUnknownBody}
		}
		if n < 0 {
			return &ValidationError{Field: "moons." + name, Err: ErrMoonCount}
		}
	}
	for name := range c.Planets {
		if !knownPlanet(name) {
			return &ValidationError{Field: "planets." + name, Err: ErrUnknownBody}
		}
	}
	for _, p := range c.PlanetSpecs() {
		if err := p.Validate(); err != nil {
			return &ValidationError{Field: "planets." + p.Name, Err: err}
		}
	}
	return nil
}

// PlanetSpecs returns the built-in planet table with the configured
// overrides applied.
func (c *Config) PlanetSpecs() [8]solar.PlanetSpec {
	specs := solar.DefaultPlanets
	for i := range specs {
		if o, ok := c.Planets[specs[i].Name]; ok {
			o.apply(&specs[i])
		}
	}
	return specs
}

// State converts the config into an initial simulation state. Pitch goes
// through the same clamp as interactive rotation.
func (c *Config) State() (solar.SimulationState, error) {
	st := solar.DefaultState()
	if err := st.SetTimeFactor(c.TimeFactor); err != nil {
		return st, &ValidationError{Field: "time_factor", Err: err}
	}
	if err := st.SetZoom(c.Camera.Zoom); err != nil {
		return st, &ValidationError{Field: "camera.zoom", Err: err}
	}
	st.RotationY = c.Camera.RotationY
	st.RotationX = c.Camera.RotationX
	st.Rotate(0, 0)
	return st, nil
}

// Apply seeds the configured moons onto a freshly built system.
func (c *Config) Apply(sys *solar.SolarSystem) {
	for name, n := range c.Moons {
		if p := sys.Planet(name); p != nil {
			p.SetNumberOfMoons(n)
		}
	}
}

func knownPlanet(name string) bool {
	for _, p := range solar.DefaultPlanets {
		if p.Name == name {
			return true
		}
	}
	return false
}

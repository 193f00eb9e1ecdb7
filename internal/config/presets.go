package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"fast": withDefaults(func(c *Config) {
		c.TimeFactor = 10
	}),
	"inner": withDefaults(func(c *Config) {
		c.Camera.Zoom = 2.5
		c.Camera.RotationX = -30
	}),
	"outer": withDefaults(func(c *Config) {
		c.TimeFactor = 40
		c.Camera.Zoom = 0.8
	}),
	"moons": withDefaults(func(c *Config) {
		c.Moons = map[string]int{
			"Earth":   1,
			"Mars":    2,
			"Jupiter": 4,
			"Saturn":  5,
			"Uranus":  3,
			"Neptune": 2,
		}
	}),
	"edge-on": withDefaults(func(c *Config) {
		c.Camera.RotationX = 90
		c.Camera.Zoom = 1.2
	}),
}

func withDefaults(fn func(*Config)) *Config {
	c := DefaultConfig()
	fn(c)
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	if p.Moons != nil {
		cp.Moons = make(map[string]int, len(p.Moons))
		for k, v := range p.Moons {
			cp.Moons[k] = v
		}
	}
	if p.Planets != nil {
		cp.Planets = make(map[string]PlanetConfig, len(p.Planets))
		for k, v := range p.Planets {
			cp.Planets[k] = v
		}
	}
	return &cp
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

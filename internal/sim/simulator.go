package sim

import (
	"context"

	"github.com/san-kum/orrery/internal/solar"
)

// Simulator drives a SolarSystem through update/render cycles without a
// window. Each cycle is one frame: update, render, then observers and
// metrics in registration order.
type Simulator struct {
	sys       *solar.SolarSystem
	metrics   []Metric
	observers []Observer
}

func New(sys *solar.SolarSystem) *Simulator {
	return &Simulator{
		sys:       sys,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) System() *solar.SolarSystem { return s.sys }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	every := cfg.Every
	if every == 0 {
		every = 1
	}

	result := &Result{
		Samples:    make([]Sample, 0, (cfg.Frames/every+1)*s.sys.PlanetCount()),
		Metrics:    make(map[string]float64),
		TimeFactor: s.sys.TimeFactor(),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result.Samples = append(result.Samples, Snapshot(s.sys)...)

	for i := 1; i <= cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			s.finish(result)
			return result, ctx.Err()
		default:
		}

		s.step()
		result.Frames++

		if i%every == 0 {
			result.Samples = append(result.Samples, Snapshot(s.sys)...)
		}
	}

	s.finish(result)
	return result, nil
}

// RunWithCallback steps until frames are exhausted, the context ends or
// callback returns false.
func (s *Simulator) RunWithCallback(ctx context.Context, frames int, callback func(frame int, sys *solar.SolarSystem) bool) error {
	if frames <= 0 {
		return ErrFrames
	}
	for i := 1; i <= frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.step()
		if !callback(i, s.sys) {
			return nil
		}
	}
	return nil
}

func (s *Simulator) step() {
	s.sys.Update()
	s.sys.Render()

	frame := s.sys.Frames()
	for _, obs := range s.observers {
		obs.OnFrame(frame, s.sys)
	}
	for _, m := range s.metrics {
		m.Observe(frame, s.sys)
	}
}

func (s *Simulator) finish(result *Result) {
	result.Elapsed = s.sys.Elapsed()
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func validateConfig(cfg Config) error {
	if cfg.Frames <= 0 {
		return ErrFrames
	}
	if cfg.Every < 0 {
		return ErrEvery
	}
	return nil
}

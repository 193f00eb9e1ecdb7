package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/orrery/internal/sim"
)

type ExportData struct {
	Preset     string             `json:"preset"`
	TimeFactor float64            `json:"time_factor"`
	Frames     int                `json:"frames"`
	Elapsed    float64            `json:"elapsed"`
	Samples    []ExportSample     `json:"samples"`
	Metrics    map[string]float64 `json:"metrics"`
}

type ExportSample struct {
	Frame int     `json:"frame"`
	Time  float64 `json:"time"`
	Body  string  `json:"body"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

func newExportData(info RunInfo, result *sim.Result) ExportData {
	data := ExportData{
		Preset:     info.Preset,
		TimeFactor: info.TimeFactor,
		Frames:     result.Frames,
		Elapsed:    result.Elapsed,
		Samples:    make([]ExportSample, len(result.Samples)),
		Metrics:    result.Metrics,
	}
	for i, s := range result.Samples {
		data.Samples[i] = ExportSample(s)
	}
	return data
}

func WriteJSON(w io.Writer, info RunInfo, result *sim.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(info, result))
}

// ExportJSON writes the run to path, or to stdout when path is "-".
func ExportJSON(path string, info RunInfo, result *sim.Result) error {
	if path == "-" {
		return WriteJSON(os.Stdout, info, result)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, info, result)
}

// ExportCSV writes samples to path, or to stdout when path is "-".
func ExportCSV(path string, samples []sim.Sample) error {
	if path == "-" {
		return WriteCSV(os.Stdout, samples)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(file, samples)
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"cylinderize/internal/params"
)

// Config holds a batch run: shared settings plus the job list.
type Config struct {
	OutputDir string `json:"output_dir"`
	Workers   int    `json:"workers"`
	Jobs      []Job  `json:"jobs"`
}

// Job describes one warp invocation in a batch file. Zero-valued numeric
// fields keep the documented defaults.
type Job struct {
	Name       string `json:"name"`
	Source     string `json:"source"`
	Background string `json:"background,omitempty"`
	Output     string `json:"output,omitempty"`

	Mode         string   `json:"mode,omitempty"`
	Radius       float64  `json:"radius,omitempty"`
	Length       float64  `json:"length,omitempty"`
	Wrap         float64  `json:"wrap,omitempty"`
	Angle        float64  `json:"angle,omitempty"`
	Pitch        float64  `json:"pitch,omitempty"`
	Exaggeration float64  `json:"exaggeration,omitempty"`
	Narrow       *float64 `json:"narrow,omitempty"` // pointer: an explicit 0 collapses the far edge
	Resize       float64  `json:"resize,omitempty"`
	Offset       string   `json:"offset,omitempty"`
	Fill         string   `json:"fill,omitempty"`
	Boundary     string   `json:"boundary,omitempty"`
	BgColor      string   `json:"background_color,omitempty"`
	Trim         bool     `json:"trim,omitempty"`
}

// Load reads a JSON batch file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override batch file settings.
type Flags struct {
	OutputDir string
	Workers   int
}

// Resolve fills empty fields with defaults. CLI flags take priority.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if c.OutputDir == "" {
		c.OutputDir = "warped"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Parameters converts a Job's textual fields into a validated-ready
// Parameters value. Unset fields keep the documented defaults.
func (j Job) Parameters() (params.Parameters, error) {
	p := params.Default()

	axis, err := params.ParseAxis(j.Mode)
	if err != nil {
		return p, err
	}
	p.Axis = axis

	if j.Radius != 0 {
		p.Radius = j.Radius
	}
	if j.Length != 0 {
		p.Length = j.Length
	}
	if j.Wrap != 0 {
		p.Wrap = j.Wrap
	}
	p.Angle = j.Angle
	p.Pitch = j.Pitch
	if j.Exaggeration != 0 {
		p.Exaggeration = j.Exaggeration
	}
	if j.Narrow != nil {
		p.Narrow = *j.Narrow
	}
	if j.Resize != 0 {
		p.Resize = j.Resize
	}
	p.Trim = j.Trim

	if p.OffsetX, p.OffsetY, err = params.ParseOffset(j.Offset); err != nil {
		return p, err
	}
	if p.FillColor, err = params.ParseColor(j.Fill); err != nil {
		return p, err
	}
	bg, err := params.ParseColor(j.BgColor)
	if err != nil {
		return p, err
	}
	if p.Boundary, err = params.ParseBoundary(j.Boundary, bg); err != nil {
		return p, err
	}
	return p, nil
}

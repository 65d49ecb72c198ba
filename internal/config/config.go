// Package config loads gmtool job files.
//
// A job lists the ground models to load and the derived quantities to
// report for each of them:
//
//	models:
//	  - name: site-a
//	    file: site-a.txt
//	  - name: layered
//	    thickness: [2, 3, 0]
//	    vp: [300, 600, 900]
//	    vs: [100, 200, 300]
//	    density: [2000, 2000, 2100]
//	  - name: merged
//	    simple:
//	      vp: {thickness: [4, 0], values: [400, 800]}
//	      vs: {thickness: [2, 3, 0], values: [100, 200, 300]}
//	      rh: {thickness: [0], values: [2000]}
//	depths: [30, 100]
//	discretize:
//	  dmax: 30
//	  dy: 0.5
//	  parameters: [vs, pr]
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	groundmodel "github.com/flywave/go-groundmodel"
)

type Job struct {
	Models     []Model     `yaml:"models"`
	Depths     []float64   `yaml:"depths,omitempty"`
	Discretize *Discretize `yaml:"discretize,omitempty"`
}

// Model describes one ground model source. Exactly one of File, the
// explicit layer arrays or Simple must be set.
type Model struct {
	Name      string    `yaml:"name"`
	File      string    `yaml:"file,omitempty"`
	Thickness []float64 `yaml:"thickness,omitempty"`
	Vp        []float64 `yaml:"vp,omitempty"`
	Vs        []float64 `yaml:"vs,omitempty"`
	Density   []float64 `yaml:"density,omitempty"`
	Simple    *Simple   `yaml:"simple,omitempty"`
}

type Simple struct {
	Vp groundmodel.SimpleProfile `yaml:"vp"`
	Vs groundmodel.SimpleProfile `yaml:"vs"`
	Rh groundmodel.SimpleProfile `yaml:"rh"`
}

type Discretize struct {
	Dmax       float64  `yaml:"dmax"`
	Dy         float64  `yaml:"dy"`
	Parameters []string `yaml:"parameters,omitempty"`
}

var (
	ErrNoModels    = errors.New("config: job lists no models")
	ErrModelSource = errors.New("config: model needs exactly one of file, layer arrays or simple")
)

// Load reads, validates and applies defaults to the job file at path.
// Relative model file names are resolved against the job file directory.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	job, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i := range job.Models {
		if f := job.Models[i].File; f != "" && !filepath.IsAbs(f) {
			job.Models[i].File = filepath.Join(dir, f)
		}
	}
	return job, nil
}

// Parse decodes a job from YAML, validates it and applies defaults.
func Parse(data []byte) (*Job, error) {
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("decoding job: %w", err)
	}
	if err := job.Finalize(); err != nil {
		return nil, err
	}
	return &job, nil
}

// Finalize validates j and fills in defaults: Vs30 when no depths are
// given and vs when discretize names no parameter.
func (j *Job) Finalize() error {
	if err := j.validate(); err != nil {
		return err
	}
	if len(j.Depths) == 0 {
		j.Depths = []float64{groundmodel.DefaultVsDepth}
	}
	if d := j.Discretize; d != nil && len(d.Parameters) == 0 {
		d.Parameters = []string{string(groundmodel.Vs)}
	}
	return nil
}

func (j *Job) validate() error {
	if len(j.Models) == 0 {
		return ErrNoModels
	}
	for i, m := range j.Models {
		sources := 0
		if m.File != "" {
			sources++
		}
		if m.Thickness != nil || m.Vp != nil || m.Vs != nil || m.Density != nil {
			sources++
		}
		if m.Simple != nil {
			sources++
		}
		if sources != 1 {
			return fmt.Errorf("model %d (%s): %w", i, m.Name, ErrModelSource)
		}
	}
	for _, z := range j.Depths {
		if z <= 0 {
			return fmt.Errorf("depth %v must be positive", z)
		}
	}
	if d := j.Discretize; d != nil {
		if d.Dmax < 0 || d.Dy <= 0 {
			return fmt.Errorf("discretize: need dmax >= 0 and dy > 0, got dmax=%v dy=%v", d.Dmax, d.Dy)
		}
		for _, p := range d.Parameters {
			if _, ok := groundmodel.ParseParameter(p); !ok {
				return fmt.Errorf("discretize: unknown parameter %q", p)
			}
		}
	}
	return nil
}

// Build constructs the ground model described by m.
func (m Model) Build() (*groundmodel.GroundModel, error) {
	switch {
	case m.File != "":
		return groundmodel.FromGeopsy(m.File)
	case m.Simple != nil:
		return groundmodel.FromSimpleProfiles(m.Simple.Vp, m.Simple.Vs, m.Simple.Rh)
	default:
		return groundmodel.New(m.Thickness, m.Vp, m.Vs, m.Density)
	}
}

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	groundmodel "github.com/flywave/go-groundmodel"
	"github.com/flywave/go-groundmodel/internal/config"
	"github.com/flywave/go-groundmodel/internal/log"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

func main() {
	cfgFile := flag.String("config", "", "Path to a YAML job file")
	modelFile := flag.String("file", "", "Geopsy layered model file (first model only)")
	param := flag.String("param", "vs", "Parameter to discretize: vp, vs, rh or pr")
	dmax := flag.Float64("dmax", 30, "Maximum discretization depth in m")
	dy := flag.Float64("dy", 0.5, "Discretization step in m")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("gmtool %s\n", version)
		os.Exit(0)
	}

	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	job, err := loadJob(*cfgFile, *modelFile, *param, *dmax, *dy)
	if err != nil {
		log.Errorf("Failed to load job: %v", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, job); err != nil {
		log.Errorf("gmtool: %v", err)
		os.Exit(1)
	}
}

func loadJob(cfgFile, modelFile, param string, dmax, dy float64) (*config.Job, error) {
	if cfgFile != "" {
		filename, _ := filepath.Abs(cfgFile)
		return config.Load(filename)
	}
	if modelFile == "" {
		return nil, fmt.Errorf("one of -config or -file is required")
	}
	job := &config.Job{
		Models:     []config.Model{{Name: filepath.Base(modelFile), File: modelFile}},
		Discretize: &config.Discretize{Dmax: dmax, Dy: dy, Parameters: []string{param}},
	}
	if err := job.Finalize(); err != nil {
		return nil, err
	}
	return job, nil
}

func run(w io.Writer, job *config.Job) error {
	for _, m := range job.Models {
		log.Debugf("building model %s", m.Name)
		gm, err := m.Build()
		if err != nil {
			return fmt.Errorf("model %s: %w", m.Name, err)
		}
		log.Infow("model loaded", "name", m.Name, "layers", gm.Len(), "depth", gm.TotalThickness())
		if err := report(w, m.Name, gm, job); err != nil {
			return fmt.Errorf("model %s: %w", m.Name, err)
		}
	}
	return nil
}

func report(w io.Writer, name string, gm *groundmodel.GroundModel, job *config.Job) error {
	fmt.Fprintf(w, "# %s\n", name)
	if err := gm.WriteModel(w, 1, 0); err != nil {
		return err
	}
	for _, z := range job.Depths {
		vsz, err := gm.TimeAveragedVs(z)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Vs%g = %.2f m/s\n", z, vsz)
	}
	if pr, err := gm.PoissonsRatio(); err != nil {
		log.Infof("Poisson's ratio unavailable for %s: %v", name, err)
	} else {
		fmt.Fprintf(w, "PR = %v\n", pr)
	}

	d := job.Discretize
	if d == nil {
		return nil
	}
	for _, ps := range d.Parameters {
		p, ok := groundmodel.ParseParameter(ps)
		if !ok {
			return fmt.Errorf("unknown parameter %q", ps)
		}
		depth, values, err := gm.Discretize(d.Dmax, d.Dy, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "depth %s\n", p)
		for i := range depth {
			fmt.Fprintf(w, "%g %g\n", depth[i], values[i])
		}
	}
	return nil
}

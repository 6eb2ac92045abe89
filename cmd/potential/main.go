// Command potential solves a scenario and prints the probe table.
//
// Usage:
//
//	potential [-config scenario.yaml] [-iterations n] [-workers n]
//	          [-csv samples.csv] [-cols n] [-rows n] [-normalize] [-v]
//
// Without -config the reference 20×16 dipole board is used. With -csv and a
// sample section in the scenario (or -cols/-rows), the dense sample grid is
// written as CSV.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/katalvlaran/laplace/internal/config"
	"github.com/katalvlaran/laplace/potential"
	"github.com/katalvlaran/laplace/probe"
)

func main() {
	var (
		configPath = flag.String("config", "", "Scenario YAML file (default: reference dipole board)")
		iterations = flag.Int("iterations", -1, "Override the number of Jacobi sweeps")
		workers    = flag.Int("workers", 0, "Override the number of sweep goroutines")
		csvPath    = flag.String("csv", "", "Write the sample grid to this CSV file")
		cols       = flag.Int("cols", 0, "Sample columns (overrides the scenario)")
		rows       = flag.Int("rows", 0, "Sample rows (overrides the scenario)")
		normalize  = flag.Bool("normalize", false, "Map samples into [0,1] using the scenario min/max")
		verbose    = flag.Bool("v", false, "Debug logging on stderr")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	potential.SetLogger(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("load scenario", "err", err)
		os.Exit(1)
	}
	if *iterations >= 0 {
		cfg.Iterations = *iterations
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	overrideSample(&cfg, *cols, *rows)

	opts := runOptions{csvPath: *csvPath, normalize: *normalize}
	if err := run(cfg, opts, os.Stdout, logger); err != nil {
		logger.Error("solve", "err", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	return config.Load(path)
}

// overrideSample applies -cols and -rows. A flag left at 0 takes the
// scenario's value, or else follows the board's aspect ratio.
func overrideSample(cfg *config.Config, cols, rows int) {
	if cols <= 0 && rows <= 0 {
		return
	}
	s := config.Sample{Cols: cols, Rows: rows, Min: config.DefaultSampleMin, Max: config.DefaultSampleMax}
	if cfg.Sample != nil {
		s.Min, s.Max = cfg.Sample.Min, cfg.Sample.Max
		if s.Cols <= 0 {
			s.Cols = cfg.Sample.Cols
		}
		if s.Rows <= 0 {
			s.Rows = cfg.Sample.Rows
		}
	}
	w, h := cfg.Size.Width, cfg.Size.Height
	if s.Cols <= 0 {
		s.Cols = aspect(s.Rows, w, h)
	}
	if s.Rows <= 0 {
		s.Rows = aspect(s.Cols, h, w)
	}
	cfg.Sample = &s
}

// aspect scales n by num/den, rounding and never going below 1.
func aspect(n int, num, den float64) int {
	if den <= 0 || num <= 0 {
		return max(n, 1)
	}

	return max(int(math.Round(float64(n)*num/den)), 1)
}

type runOptions struct {
	csvPath   string
	normalize bool
}

// run builds, solves and reports one scenario.
func run(cfg config.Config, opts runOptions, out io.Writer, logger *slog.Logger) error {
	f, err := cfg.Build()
	if err != nil {
		return err
	}
	logger.Info("solving",
		"width", f.Width(), "height", f.Height(),
		"electrodes", len(cfg.Electrodes),
		"fixed", len(f.FixedPoints()),
		"iterations", f.Iterations())
	f.CalculatePotential()

	var tbl probe.Table
	for _, p := range cfg.Probes {
		tbl.Add(f, p.X, p.Y)
	}
	if _, err := tbl.WriteTo(out); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	if opts.csvPath == "" {
		return nil
	}
	if cfg.Sample == nil {
		return errors.New("-csv needs a sample section or -cols/-rows")
	}

	return writeSamples(f, cfg, opts, logger)
}

func writeSamples(f *potential.Field, cfg config.Config, opts runOptions, logger *slog.Logger) (err error) {
	g, err := probe.Sample(f, cfg.Size.Width, cfg.Size.Height, cfg.Sample.Cols, cfg.Sample.Rows)
	if err != nil {
		return err
	}
	if opts.normalize {
		g = g.Normalize(cfg.Sample.Min, cfg.Sample.Max)
	}

	file, err := os.Create(opts.csvPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.csvPath, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", opts.csvPath, cerr)
		}
	}()
	if err := g.WriteCSV(file); err != nil {
		return err
	}

	lo, hi := g.Range()
	logger.Info("samples written", "path", opts.csvPath,
		"cols", g.Cols(), "rows", g.Rows(), "min", lo, "max", hi)

	return nil
}

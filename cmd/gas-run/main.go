// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command gas-run drives a scene headlessly: no window, no input, just
// the core stepped in a tight loop with a structured log line per step
// (at debug level) and a summary line at the end.
// It is the headless counterpart to the teacher repo's windowed eg/
// runners.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/mariogeiger/gas/move"
	"github.com/mariogeiger/gas/scene"
)

func main() {
	scenePath := flag.String("scene", "", "path to a YAML scene file")
	steps := flag.Int("steps", 1000, "number of steps to run")
	dtMax := flag.Float64("dt-max", 1.0, "maximum time advanced per step")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "gas-run: -scene is required")
		os.Exit(2)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "gas-run: bad -log-level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	slog.SetLogLoggerLevel(level)

	runID := uuid.New()
	log := slog.Default().With("run", runID.String())

	f, err := os.Open(*scenePath)
	if err != nil {
		log.Error("open scene", "path", *scenePath, "err", err)
		os.Exit(1)
	}
	defer f.Close()

	sim, err := scene.Load(f)
	if err != nil {
		log.Error("load scene", "path", *scenePath, "err", err)
		os.Exit(1)
	}

	log.Info("starting run", "balls", len(sim.Balls()), "walls", len(sim.Walls()), "steps", *steps, "dt-max", *dtMax)

	e0 := kineticEnergy(sim)
	elapsed := 0.0
	totalWork := 0.0

	for i := 0; i < *steps; i++ {
		dt, work := sim.Step(*dtMax)
		elapsed += dt
		totalWork += work
		log.Debug("step", "i", i, "dt", dt, "work", work, "elapsed", elapsed)
	}

	e1 := kineticEnergy(sim)
	log.Info("run complete",
		"steps", *steps,
		"elapsed", elapsed,
		"work", totalWork,
		"energy_start", e0,
		"energy_end", e1,
		"energy_drift", e1-e0-totalWork,
	)
}

// kineticEnergy sums 0.5*m*v^2 over every ball, for the energy-drift
// summary printed at the end of a run.
func kineticEnergy(sim *move.Simulation) float64 {
	e := 0.0
	for _, b := range sim.Balls() {
		e += 0.5 * b.M * b.V.LenSqr()
	}
	return e
}

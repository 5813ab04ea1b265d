// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package scene loads an initial move.Simulation from a YAML document.
// This is the one place in the module where bad input is expected and
// rejected: the core packages are total functions over whatever numbers
// they are given, but a scene file is written by hand and mistakes in it
// (a negative radius, a degenerate wall) should be reported with enough
// context to fix them, not silently produce nonsense.
//
// Package scene is provided as part of the gas rigid-body simulator.
package scene

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mariogeiger/gas/math/lin"
	"github.com/mariogeiger/gas/move"
)

// mass unmarshals a YAML scalar as a float64, additionally accepting the
// bare words "inf", "Inf", "INF", "+inf" and "+Inf" as shorthand for an
// immovable body.
type mass float64

func (m *mass) UnmarshalYAML(value *yaml.Node) error {
	var f float64
	if err := value.Decode(&f); err == nil {
		*m = mass(f)
		return nil
	}

	var tag string
	if err := value.Decode(&tag); err != nil {
		return errors.Wrap(err, "mass")
	}
	switch tag {
	case "inf", "Inf", "INF", "+inf", "+Inf":
		*m = mass(math.Inf(1))
		return nil
	}
	return errors.Errorf("mass: %q is not a number or %q", tag, "inf")
}

// vec3 is the YAML shape of a lin.V3: three named components, each
// defaulting to zero when omitted.
type vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v vec3) v3() lin.V3 { return lin.V3{X: v.X, Y: v.Y, Z: v.Z} }

type ballConfig struct {
	Position vec3    `yaml:"position"`
	Velocity vec3    `yaml:"velocity"`
	Mass     mass    `yaml:"mass"`
	Radius   float64 `yaml:"radius"`
}

type wallConfig struct {
	Anchor   vec3 `yaml:"anchor"`
	Velocity vec3 `yaml:"velocity"`
	J        vec3 `yaml:"j"`
	K        vec3 `yaml:"k"`
	Mass     mass `yaml:"mass"`
}

// Config is the YAML document shape read by Load. There is deliberately
// no gravity field: external force fields are out of scope for this
// simulator, scene or no scene.
type Config struct {
	Balls []ballConfig `yaml:"balls"`
	Walls []wallConfig `yaml:"walls"`
}

// Load parses a YAML scene document into a ready-to-run move.Simulation,
// validating every ball and wall as it goes. Validation failures are
// wrapped with the offending ball or wall's index so the caller can find
// the bad entry in the source file.
func Load(r io.Reader) (*move.Simulation, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "scene: read")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "scene: decode")
	}

	sim := move.New()

	for i, b := range cfg.Balls {
		if err := validateBall(b); err != nil {
			return nil, errors.Wrapf(err, "scene: ball %d", i)
		}
		sim.AddBall(b.Position.v3(), b.Velocity.v3(), float64(b.Mass), b.Radius)
	}

	for i, w := range cfg.Walls {
		if err := validateWall(w); err != nil {
			return nil, errors.Wrapf(err, "scene: wall %d", i)
		}
		sim.AddWall(w.Anchor.v3(), w.Velocity.v3(), w.J.v3(), w.K.v3(), float64(w.Mass))
	}

	return sim, nil
}

func validateBall(b ballConfig) error {
	if b.Radius <= 0 {
		return errors.Errorf("radius must be positive, got %g", b.Radius)
	}
	if m := float64(b.Mass); m <= 0 {
		return errors.Errorf("mass must be positive or %q, got %g", "inf", m)
	}
	return nil
}

func validateWall(w wallConfig) error {
	if m := float64(w.Mass); m <= 0 {
		return errors.Errorf("mass must be positive or %q, got %g", "inf", m)
	}
	area := w.J.v3().Cross(w.K.v3()).Len()
	if area <= lin.Epsilon {
		return errors.New("j and k must span a non-degenerate parallelogram")
	}
	return nil
}

// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the decoded form of a scenario file.
type Scenario struct {
	// Name identifies the scenario in reports.
	Name string `yaml:"name"`

	// Description is free text.
	Description string `yaml:"description,omitempty"`

	// Epsilon is the tolerance of every comparison; 0 means core.DefaultEpsilon.
	Epsilon float64 `yaml:"epsilon,omitempty"`

	// Events maps a name to [ct, x, y, z].
	Events map[string][]float64 `yaml:"events,omitempty"`

	// Pipeline lists the transforms applied to every event, in order.
	Pipeline []Stage `yaml:"pipeline,omitempty"`

	// Histories maps a name to a worldline.
	Histories map[string]HistorySpec `yaml:"histories,omitempty"`

	// Searches lists root-finder runs on the histories.
	Searches []SearchSpec `yaml:"searches,omitempty"`
}

// Stage is one pipeline step. Exactly one field must be set.
type Stage struct {
	Boost        *BoostStage        `yaml:"boost,omitempty"`
	Rotation     *RotationStage     `yaml:"rotation,omitempty"`
	Reflection   *ReflectionStage   `yaml:"reflection,omitempty"`
	Displacement *DisplacementStage `yaml:"displacement,omitempty"`
}

// BoostStage is a boost with velocity [vx, vy, vz].
type BoostStage struct {
	Velocity []float64 `yaml:"velocity"`
}

// RotationStage is a rotation given either as an axis-angle vector
// [x, y, z] or as a named axis and an angle in radians.
type RotationStage struct {
	AxisAngle []float64 `yaml:"axis_angle,omitempty"`
	Axis      string    `yaml:"axis,omitempty"`
	Angle     float64   `yaml:"angle,omitempty"`
}

// ReflectionStage lists the parity of ct, x, y and z: "even" or "odd".
type ReflectionStage struct {
	Parity []string `yaml:"parity"`
}

// DisplacementStage moves events by [ct, x, y, z].
type DisplacementStage struct {
	Offset []float64 `yaml:"offset"`
}

// History kinds.
const (
	KindStationary          = "stationary"
	KindUniformVelocity     = "uniform_velocity"
	KindUniformAcceleration = "uniform_acceleration"
	KindCircular            = "circular"
	KindThereAndBack        = "there_and_back"
	KindPhoton              = "photon"
	KindMirror              = "mirror"
	KindStitched            = "stitched"
)

// HistorySpec describes one worldline. Which fields apply depends on Kind.
type HistorySpec struct {
	Kind         string    `yaml:"kind"`
	Base         []float64 `yaml:"base,omitempty"`
	Tau          float64   `yaml:"tau,omitempty"`
	Velocity     []float64 `yaml:"velocity,omitempty"`
	Turnaround   float64   `yaml:"turnaround,omitempty"`
	Axis         string    `yaml:"axis,omitempty"`
	Acceleration float64   `yaml:"acceleration,omitempty"`
	Radius       float64   `yaml:"radius,omitempty"`
	Beta         float64   `yaml:"beta,omitempty"`
	Phase        float64   `yaml:"phase,omitempty"`
	Direction    []float64 `yaml:"direction,omitempty"`
	ReflectAt    float64   `yaml:"reflect_at,omitempty"`
	Legs         []LegSpec `yaml:"legs,omitempty"`
}

// LegSpec is one leg of a stitched history. The first leg has no From.
type LegSpec struct {
	History string   `yaml:"history"`
	From    *float64 `yaml:"from,omitempty"`
}

// SearchSpec is one root-finder run.
type SearchSpec struct {
	// History names the history to search.
	History string `yaml:"history"`

	// Param is "ct" (default) or "tau"; tau needs a time-like history.
	Param string `yaml:"param,omitempty"`

	Criterion CriterionSpec `yaml:"criterion"`
	Guess     float64       `yaml:"guess"`

	// Step, Epsilon and MaxIterations override the finder defaults when set.
	Step          float64 `yaml:"step,omitempty"`
	Epsilon       float64 `yaml:"epsilon,omitempty"`
	MaxIterations int     `yaml:"max_iterations,omitempty"`
}

// CriterionSpec selects the criterion. Exactly one field must be set.
type CriterionSpec struct {
	CoordinateTime *float64  `yaml:"coordinate_time,omitempty"`
	LightCone      []float64 `yaml:"light_cone,omitempty"`
	PastLightCone  []float64 `yaml:"past_light_cone,omitempty"`
}

// Load decodes and validates a scenario. Unknown fields are errors.
func Load(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("Load: empty document: %w", ErrInvalidScenario)
		}
		return nil, fmt.Errorf("Load: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads and loads the scenario at path.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
	}
	return s, nil
}

// Validate checks the scenario by building everything it describes.
func (s *Scenario) Validate() error {
	_, err := s.compile()
	return err
}

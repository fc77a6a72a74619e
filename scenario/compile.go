// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/spacetime/core"
	"github.com/katalvlaran/spacetime/history"
	"github.com/katalvlaran/spacetime/newton"
	"github.com/katalvlaran/spacetime/transform"
)

// plan is a validated scenario, ready to run.
type plan struct {
	eps       float64
	names     []string // sorted event names
	events    map[string]core.Event
	pipeline  transform.Pipeline
	histories map[string]history.History
	searches  []search
}

type search struct {
	history   string
	param     history.LambdaParam
	h         history.History
	timelike  history.Timelike // nil for light-like histories
	criterion newton.Criterion
	text      string
	guess     float64
	step      float64
	opts      []newton.Option
}

func (s *Scenario) compile() (*plan, error) {
	var ps problems
	pl := &plan{
		eps:       core.DefaultEpsilon,
		events:    make(map[string]core.Event, len(s.Events)),
		histories: make(map[string]history.History, len(s.Histories)),
	}

	if strings.TrimSpace(s.Name) == "" {
		ps.addf("name", "required")
	}
	switch {
	case s.Epsilon < 0 || !isFinite(s.Epsilon):
		ps.addf("epsilon", "must be finite and > 0, got %g", s.Epsilon)
	case s.Epsilon > 0:
		pl.eps = s.Epsilon
	}

	for _, name := range sortedKeys(s.Events) {
		e, err := eventOf(s.Events[name])
		if err != nil {
			ps.add("events."+name, err)
			continue
		}
		pl.names = append(pl.names, name)
		pl.events[name] = e
	}

	stages := make([]transform.Transform, 0, len(s.Pipeline))
	for i, st := range s.Pipeline {
		t, err := st.build()
		if err != nil {
			ps.add(fmt.Sprintf("pipeline[%d]", i), err)
			continue
		}
		stages = append(stages, t)
	}
	pl.pipeline = transform.NewPipeline(stages...)

	s.compileHistories(pl, &ps)

	for i, sp := range s.Searches {
		sr, err := sp.build(pl.histories)
		if err != nil {
			ps.add(fmt.Sprintf("searches[%d]", i), err)
			continue
		}
		pl.searches = append(pl.searches, sr)
	}

	if err := ps.err(); err != nil {
		return nil, err
	}
	return pl, nil
}

// compileHistories builds plain histories first so stitched ones can refer
// to them.
func (s *Scenario) compileHistories(pl *plan, ps *problems) {
	names := sortedKeys(s.Histories)
	for _, name := range names {
		spec := s.Histories[name]
		if spec.Kind == KindStitched {
			continue
		}
		h, err := spec.build()
		if err != nil {
			ps.add("histories."+name, err)
			continue
		}
		pl.histories[name] = h
	}
	for _, name := range names {
		spec := s.Histories[name]
		if spec.Kind != KindStitched {
			continue
		}
		h, err := spec.stitch(pl.histories, s.Histories)
		if err != nil {
			ps.add("histories."+name, err)
			continue
		}
		pl.histories[name] = h
	}
}

func (st Stage) build() (transform.Transform, error) {
	set := 0
	for _, ok := range []bool{st.Boost != nil, st.Rotation != nil, st.Reflection != nil, st.Displacement != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("exactly one of boost, rotation, reflection, displacement is required, got %d", set)
	}

	switch {
	case st.Boost != nil:
		v, err := velocityOf(st.Boost.Velocity)
		if err != nil {
			return nil, fmt.Errorf("boost.velocity: %w", err)
		}
		return transform.NewBoost(v), nil

	case st.Rotation != nil:
		r, err := st.Rotation.build()
		if err != nil {
			return nil, fmt.Errorf("rotation: %w", err)
		}
		return r, nil

	case st.Reflection != nil:
		if len(st.Reflection.Parity) != 4 {
			return nil, fmt.Errorf("reflection.parity: want 4 entries, got %d", len(st.Reflection.Parity))
		}
		var p [4]core.Parity
		for i, name := range st.Reflection.Parity {
			var err error
			if p[i], err = core.ParseParity(name); err != nil {
				return nil, fmt.Errorf("reflection.parity[%d]: %w", i, err)
			}
		}
		return transform.NewReflection(p[0], p[1], p[2], p[3]), nil

	default:
		d, err := fourOf(st.Displacement.Offset)
		if err != nil {
			return nil, fmt.Errorf("displacement.offset: %w", err)
		}
		return transform.DisplacementOf(d), nil
	}
}

func (r RotationStage) build() (transform.Rotation, error) {
	if len(r.AxisAngle) > 0 {
		if r.Axis != "" || r.Angle != 0 {
			return transform.Rotation{}, fmt.Errorf("axis_angle excludes axis and angle")
		}
		v, err := threeOf(r.AxisAngle)
		if err != nil {
			return transform.Rotation{}, fmt.Errorf("axis_angle: %w", err)
		}
		return transform.RotationOf(core.AxisAngleOf(v))
	}
	axis, err := core.ParseAxis(r.Axis)
	if err != nil {
		return transform.Rotation{}, fmt.Errorf("axis: %w", err)
	}
	return transform.NewRotation(axis, r.Angle)
}

func (h HistorySpec) build() (history.History, error) {
	base := history.BaseAt(core.Origin(), h.Tau)
	if len(h.Base) > 0 {
		e, err := eventOf(h.Base)
		if err != nil {
			return nil, fmt.Errorf("base: %w", err)
		}
		base.Event = e
	}

	switch h.Kind {
	case KindStationary:
		return history.NewStationary(base), nil

	case KindUniformVelocity, KindThereAndBack:
		v, err := velocityOf(h.Velocity)
		if err != nil {
			return nil, fmt.Errorf("velocity: %w", err)
		}
		if h.Kind == KindUniformVelocity {
			return history.NewUniformVelocity(base, v), nil
		}
		return history.NewThereAndBack(base, v, h.Turnaround)

	case KindUniformAcceleration:
		axis, err := core.ParseAxis(h.Axis)
		if err != nil {
			return nil, fmt.Errorf("axis: %w", err)
		}
		return history.NewUniformAcceleration(base, axis, h.Acceleration)

	case KindCircular:
		axis, err := core.ParseAxis(h.Axis)
		if err != nil {
			return nil, fmt.Errorf("axis: %w", err)
		}
		return history.NewCircularMotion(base, h.Radius, h.Beta, axis, h.Phase)

	case KindPhoton, KindMirror:
		v, err := threeOf(h.Direction)
		if err != nil {
			return nil, fmt.Errorf("direction: %w", err)
		}
		dir, err := core.DirectionOf(v)
		if err != nil {
			return nil, fmt.Errorf("direction: %w", err)
		}
		if h.Kind == KindPhoton {
			return history.NewPhotonStraight(base, dir), nil
		}
		return history.NewMirrorReflection(base, dir, h.ReflectAt)

	case "":
		return nil, fmt.Errorf("kind: required")
	}
	return nil, fmt.Errorf("kind: unknown kind %q", h.Kind)
}

// stitch builds a stitched history from already-built legs. When every leg
// is time-like the result tracks proper time too.
func (h HistorySpec) stitch(built map[string]history.History, specs map[string]HistorySpec) (history.History, error) {
	if len(h.Legs) == 0 {
		return nil, fmt.Errorf("legs: at least one leg is required")
	}
	legs := make([]history.History, len(h.Legs))
	timelike := true
	for i, l := range h.Legs {
		path := fmt.Sprintf("legs[%d]", i)
		switch {
		case i == 0 && l.From != nil:
			return nil, fmt.Errorf("%s.from: the first leg starts at -inf", path)
		case i > 0 && l.From == nil:
			return nil, fmt.Errorf("%s.from: required", path)
		}
		if spec, ok := specs[l.History]; ok && spec.Kind == KindStitched {
			return nil, fmt.Errorf("%s.history: %q is itself stitched", path, l.History)
		}
		leg, ok := built[l.History]
		if !ok {
			return nil, fmt.Errorf("%s.history: unknown or invalid history %q", path, l.History)
		}
		legs[i] = leg
		if _, ok := leg.(history.Timelike); !ok {
			timelike = false
		}
	}

	if timelike {
		b := history.StartTimelike(legs[0].(history.Timelike))
		for i := 1; i < len(legs); i++ {
			if err := b.AddLeg(legs[i].(history.Timelike), *h.Legs[i].From); err != nil {
				return nil, fmt.Errorf("legs[%d]: %w", i, err)
			}
		}
		return b.Build()
	}
	b := history.Start(legs[0])
	for i := 1; i < len(legs); i++ {
		if err := b.AddLeg(legs[i], *h.Legs[i].From); err != nil {
			return nil, fmt.Errorf("legs[%d]: %w", i, err)
		}
	}
	return b.Build()
}

func (sp SearchSpec) build(histories map[string]history.History) (search, error) {
	h, ok := histories[sp.History]
	if !ok {
		return search{}, fmt.Errorf("history: unknown or invalid history %q", sp.History)
	}
	sr := search{history: sp.History, h: h, guess: sp.Guess, step: newton.DefaultStep}
	sr.timelike, _ = h.(history.Timelike)

	switch sp.Param {
	case "", "ct":
		sr.param = history.CoordinateTime
	case "tau":
		if sr.timelike == nil {
			return search{}, fmt.Errorf("param: %q has no proper time", sp.History)
		}
		sr.param = history.ProperTime
		sr.h = history.ByParam(sr.timelike, history.ProperTime)
	default:
		return search{}, fmt.Errorf("param: want ct or tau, got %q", sp.Param)
	}

	if !isFinite(sp.Guess) {
		return search{}, fmt.Errorf("guess: must be finite")
	}
	switch {
	case sp.Step < 0 || !isFinite(sp.Step):
		return search{}, fmt.Errorf("step: must be finite and > 0, got %g", sp.Step)
	case sp.Step > 0:
		sr.step = sp.Step
	}
	switch {
	case sp.Epsilon < 0 || !isFinite(sp.Epsilon):
		return search{}, fmt.Errorf("epsilon: must be finite and > 0, got %g", sp.Epsilon)
	case sp.Epsilon > 0:
		sr.opts = append(sr.opts, newton.WithEpsilon(sp.Epsilon))
	}
	switch {
	case sp.MaxIterations < 0:
		return search{}, fmt.Errorf("max_iterations: must be ≥ 1, got %d", sp.MaxIterations)
	case sp.MaxIterations > 0:
		sr.opts = append(sr.opts, newton.WithMaxIterations(sp.MaxIterations))
	}

	c, text, err := sp.Criterion.build()
	if err != nil {
		return search{}, fmt.Errorf("criterion: %w", err)
	}
	sr.criterion, sr.text = c, text
	return sr, nil
}

func (c CriterionSpec) build() (newton.Criterion, string, error) {
	set := 0
	for _, ok := range []bool{c.CoordinateTime != nil, c.LightCone != nil, c.PastLightCone != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, "", fmt.Errorf("exactly one of coordinate_time, light_cone, past_light_cone is required, got %d", set)
	}

	switch {
	case c.CoordinateTime != nil:
		ct := *c.CoordinateTime
		if !isFinite(ct) {
			return nil, "", fmt.Errorf("coordinate_time: must be finite")
		}
		return newton.CoordinateTime(ct), fmt.Sprintf("ct=%g", ct), nil
	case c.LightCone != nil:
		apex, err := eventOf(c.LightCone)
		if err != nil {
			return nil, "", fmt.Errorf("light_cone: %w", err)
		}
		return newton.OnLightCone(apex), "light cone of " + apex.String(), nil
	default:
		apex, err := eventOf(c.PastLightCone)
		if err != nil {
			return nil, "", fmt.Errorf("past_light_cone: %w", err)
		}
		return newton.PastLightCone(apex), "past light cone of " + apex.String(), nil
	}
}

func fourOf(c []float64) (core.FourVector, error) {
	if len(c) != 4 {
		return core.FourVector{}, fmt.Errorf("want 4 components [ct, x, y, z], got %d", len(c))
	}
	for _, x := range c {
		if !isFinite(x) {
			return core.FourVector{}, core.ErrNonFinite
		}
	}
	return core.NewFourVector(c[0], c[1], c[2], c[3]), nil
}

func eventOf(c []float64) (core.Event, error) {
	v, err := fourOf(c)
	if err != nil {
		return core.Event{}, err
	}
	return core.EventOf(v.Components()), nil
}

func threeOf(c []float64) (core.ThreeVector, error) {
	if len(c) != 3 {
		return core.ThreeVector{}, fmt.Errorf("want 3 components [x, y, z], got %d", len(c))
	}
	v := core.NewThreeVector(c[0], c[1], c[2])
	if !v.IsFinite() {
		return core.ThreeVector{}, core.ErrNonFinite
	}
	return v, nil
}

func velocityOf(c []float64) (core.Velocity, error) {
	v, err := threeOf(c)
	if err != nil {
		return core.Velocity{}, err
	}
	return core.VelocityOf(v)
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

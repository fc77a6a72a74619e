// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/spacetime/core"
)

// Pipeline composes transforms in order. Apply runs the stages
// left-to-right; Reverse runs them right-to-left, calling each stage's
// Reverse, so Reverse(Apply(e)) == e for any number of stages.
type Pipeline struct {
	stages []Transform
}

// NewPipeline returns the composition of ts. The slice is copied.
func NewPipeline(ts ...Transform) Pipeline {
	return Pipeline{stages: append([]Transform(nil), ts...)}
}

// Len returns the number of stages.
func (p Pipeline) Len() int { return len(p.stages) }

// Stages returns a copy of the stages in apply order.
func (p Pipeline) Stages() []Transform { return append([]Transform(nil), p.stages...) }

// Then returns a new pipeline with t appended.
func (p Pipeline) Then(t Transform) Pipeline {
	return NewPipeline(append(p.Stages(), t)...)
}

// Apply runs every stage's Apply, first to last.
func (p Pipeline) Apply(e core.Event) core.Event {
	for _, t := range p.stages {
		e = t.Apply(e)
	}
	return e
}

// Reverse runs every stage's Reverse, last to first.
func (p Pipeline) Reverse(e core.Event) core.Event {
	for i := len(p.stages) - 1; i >= 0; i-- {
		e = p.stages[i].Reverse(e)
	}
	return e
}

// String lists the stages joined by " → ".
func (p Pipeline) String() string { return joinStages(p.stages) }

// LinearPipeline composes linear transforms; it is Linear itself and so can
// transform differences between events as well as events.
type LinearPipeline struct {
	stages []Linear
}

// NewLinearPipeline returns the composition of ls. The slice is copied.
func NewLinearPipeline(ls ...Linear) LinearPipeline {
	return LinearPipeline{stages: append([]Linear(nil), ls...)}
}

// Len returns the number of stages.
func (p LinearPipeline) Len() int { return len(p.stages) }

// Stages returns a copy of the stages in apply order.
func (p LinearPipeline) Stages() []Linear { return append([]Linear(nil), p.stages...) }

// Apply runs every stage's Apply, first to last.
func (p LinearPipeline) Apply(e core.Event) core.Event {
	for _, t := range p.stages {
		e = t.Apply(e)
	}
	return e
}

// Reverse runs every stage's Reverse, last to first.
func (p LinearPipeline) Reverse(e core.Event) core.Event {
	for i := len(p.stages) - 1; i >= 0; i-- {
		e = p.stages[i].Reverse(e)
	}
	return e
}

// ApplyVector runs every stage's ApplyVector, first to last.
func (p LinearPipeline) ApplyVector(v core.FourVector) core.FourVector {
	for _, t := range p.stages {
		v = t.ApplyVector(v)
	}
	return v
}

// ReverseVector runs every stage's ReverseVector, last to first.
func (p LinearPipeline) ReverseVector(v core.FourVector) core.FourVector {
	for i := len(p.stages) - 1; i >= 0; i-- {
		v = p.stages[i].ReverseVector(v)
	}
	return v
}

// String lists the stages joined by " → ".
func (p LinearPipeline) String() string {
	ts := make([]Transform, len(p.stages))
	for i, l := range p.stages {
		ts[i] = l
	}
	return joinStages(ts)
}

func joinStages(ts []Transform) string {
	if len(ts) == 0 {
		return "identity"
	}
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = fmt.Sprint(t)
	}
	return strings.Join(parts, " → ")
}

// SPDX-License-Identifier: MIT

package scenario

import (
	"io"
	"log/slog"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/spacetime/core"
	"github.com/katalvlaran/spacetime/history"
	"github.com/katalvlaran/spacetime/newton"
)

// Runner executes scenarios.
type Runner struct {
	logger *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner returns a Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run validates s and executes it. Invalid scenarios fail with
// ErrInvalidScenario; a search that fails records its error in the report
// and does not stop the run.
func (r *Runner) Run(s *Scenario) (*Report, error) {
	pl, err := s.compile()
	if err != nil {
		return nil, err
	}
	log := r.logger.With("scenario", s.Name)
	log.Info("running scenario",
		"events", len(pl.names),
		"stages", pl.pipeline.Len(),
		"histories", len(pl.histories),
		"searches", len(pl.searches))

	rep := &Report{
		Name:      s.Name,
		Epsilon:   pl.eps,
		Pipeline:  pl.pipeline.String(),
		Events:    []EventReport{},
		Intervals: []IntervalReport{},
		Searches:  []SearchReport{},
	}

	moved := make(map[string]core.Event, len(pl.names))
	for _, name := range pl.names {
		e := pl.events[name]
		m := pl.pipeline.Apply(e)
		moved[name] = m
		er := EventReport{
			Name:         name,
			Before:       e.Components(),
			After:        m.Components(),
			SquareBefore: e.Square(),
			SquareAfter:  m.Square(),
			RoundTrip:    pl.pipeline.Reverse(m).EqualsWithTolerance(e, pl.eps),
		}
		er.SquareInvariant = same(er.SquareBefore, er.SquareAfter, pl.eps)
		if !er.RoundTrip {
			log.Warn("pipeline reverse does not undo apply", "event", name)
		}
		log.Debug("event transformed", "event", name, "before", e, "after", m)
		rep.Events = append(rep.Events, er.rounded())
	}

	for i, a := range pl.names {
		for _, b := range pl.names[i+1:] {
			ir := IntervalReport{
				From:       a,
				To:         b,
				Before:     pl.events[a].IntervalSquared(pl.events[b]),
				After:      moved[a].IntervalSquared(moved[b]),
				Separation: core.SeparationBetween(pl.events[a], pl.events[b], pl.eps).String(),
			}
			ir.Invariant = same(ir.Before, ir.After, pl.eps)
			if !ir.Invariant {
				log.Warn("interval not invariant", "from", a, "to", b, "before", ir.Before, "after", ir.After)
			}
			rep.Intervals = append(rep.Intervals, ir.rounded())
		}
	}

	for _, sr := range pl.searches {
		rep.Searches = append(rep.Searches, r.search(log, sr))
	}

	log.Info("scenario done")
	return rep, nil
}

func (r *Runner) search(log *slog.Logger, sr search) SearchReport {
	out := SearchReport{History: sr.history, Param: sr.param.String(), Criterion: sr.text, Guess: sr.guess}
	f, err := newton.New(sr.h, sr.criterion, sr.opts...)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	res, err := f.SearchWithStep(sr.guess, sr.step)
	out.Lambda = res.Lambda
	out.Iterations = res.Iterations
	out.Converged = res.Converged
	out.Event = res.Event(sr.h).Components()
	if sr.timelike != nil {
		tau := res.Lambda
		if sr.param == history.CoordinateTime {
			tau = sr.timelike.Tau(res.Lambda)
		}
		out.Tau = &tau
	}
	if err != nil {
		log.Warn("search failed", "history", sr.history, "criterion", sr.text, "err", err)
		out.Error = err.Error()
	} else {
		log.Debug("search done", "history", sr.history, "lambda", res.Lambda, "iterations", res.Iterations)
	}
	return out.rounded()
}

// same compares with an absolute tolerance near zero and a relative one
// for large values.
func same(a, b, eps float64) bool { return scalar.EqualWithinAbsOrRel(a, b, eps, eps) }

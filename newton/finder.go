// SPDX-License-Identifier: MIT

package newton

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/katalvlaran/spacetime/core"
	"github.com/katalvlaran/spacetime/history"
)

// Criterion returns 0 for the wanted event.
type Criterion func(core.Event) float64

// Result is the outcome of a search.
type Result struct {
	// Lambda is the last estimate of the root.
	Lambda float64
	// Iterations is the number of Newton steps taken.
	Iterations int
	// Residual is f(Lambda).
	Residual float64
	// Converged reports |Residual| < epsilon.
	Converged bool
}

// Event returns the event of h at the result's λ.
func (r Result) Event(h history.History) core.Event { return h.Event(r.Lambda) }

// Finder searches one history for one criterion. A Finder is not safe for
// concurrent use because it records the last iteration count.
type Finder struct {
	history   history.History
	criterion Criterion
	opts      Options
	last      int
}

// New returns a Finder for the event on h where c is zero.
func New(h history.History, c Criterion, opts ...Option) (*Finder, error) {
	if h == nil {
		return nil, fmt.Errorf("New: %w", ErrNilHistory)
	}
	if c == nil {
		return nil, fmt.Errorf("New: %w", ErrNilCriterion)
	}
	return &Finder{history: h, criterion: c, opts: gatherOptions(opts...)}, nil
}

// Iterations returns the number of Newton steps taken by the last search.
func (f *Finder) Iterations() int { return f.last }

// Search runs SearchWithStep with the configured step.
func (f *Finder) Search(guess float64) (Result, error) {
	return f.SearchWithStep(guess, f.opts.step)
}

// SearchWithStep returns the λ near guess where the criterion is zero.
//
// Algorithm Outline:
//  1. λ = guess, y = f(λ).
//  2. If |y| < epsilon, stop: converged.
//  3. If the cap is reached, stop: not converged (ErrNotConverged if strict).
//  4. d = f'(λ) by finite difference with step h. Zero or non-finite d
//     stops with ErrFlatCriterion.
//  5. λ = λ − y/d, y = f(λ); go to 2.
//
// Complexity: two criterion evaluations per step (three with a central
// difference).
func (f *Finder) SearchWithStep(guess, h float64) (Result, error) {
	if !positive(h) {
		return Result{}, fmt.Errorf("SearchWithStep(h=%g): %w", h, ErrBadStep)
	}
	if math.IsNaN(guess) || math.IsInf(guess, 0) {
		return Result{}, fmt.Errorf("SearchWithStep(guess=%g): %w", guess, ErrBadGuess)
	}

	settings := &fd.Settings{Formula: f.opts.formula, Step: h, OriginKnown: true}
	lambda := guess
	y := f.eval(lambda)
	for n := 0; ; n++ {
		f.last = n
		res := Result{Lambda: lambda, Iterations: n, Residual: y}
		if math.Abs(y) < f.opts.epsilon {
			res.Converged = true
			return res, nil
		}
		if n == f.opts.maxIterations {
			if f.opts.strict {
				return res, fmt.Errorf("SearchWithStep after %d steps (|f|=%g): %w", n, math.Abs(y), ErrNotConverged)
			}
			return res, nil
		}

		settings.OriginValue = y
		d := fd.Derivative(f.eval, lambda, settings)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return res, fmt.Errorf("SearchWithStep at λ=%g (f'=%g): %w", lambda, d, ErrFlatCriterion)
		}
		lambda -= y / d
		y = f.eval(lambda)
	}
}

func (f *Finder) eval(lambda float64) float64 {
	return f.criterion(f.history.Event(lambda))
}

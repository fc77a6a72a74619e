// Package spacetime is a toolkit for special-relativity kinematics in flat
// Minkowski space-time, with c = 1 and the metric signature (+, −, −, −).
//
// 🚀 What is in spacetime?
//
//   - Core values: events, four-vectors and three-vectors, with the interval
//     and its time-like / space-like / light-like classification
//   - Transforms: boosts, rotations, parity reflections and displacements,
//     each with an exact reverse, composed into pipelines
//   - Histories: worldlines parametrized by coordinate time or proper time,
//     from uniform velocity to hyperbolic and circular motion, stitched
//     together at branch points
//   - Search: a Newton–Raphson finder for the event on a history that
//     satisfies a criterion (a clock reading, a light cone)
//   - Physics: Γ, β, velocity addition, Doppler factor, aberration and
//     Thomas precession
//   - Scenarios: YAML files that run all of the above and report on it
//
// Everything is organized under these packages:
//
//	core/       Event, FourVector, ThreeVector, Velocity, Direction, axes
//	transform/  Boost, Rotation, Reflection, Displacement, Pipeline
//	history/    History, Timelike, Moveable, the worldlines, Stitched
//	newton/     Finder and the standard criteria
//	physics/    closed-form formulas
//	scenario/   scenario files, the runner and its reports
//	cmd/spacetime  the command-line front end
//
// Quick ASCII example (the twin paradox):
//
//	ct
//	10 ●        reunion: home aged 10, traveller aged 6
//	   │ ╲
//	 5 │  ● turnaround at x = 4
//	   │ ╱
//	 0 ●────── x
//
// See examples/ for ready-to-run scenarios:
//
//	go run ./cmd/spacetime run examples/twin-paradox.yaml
package spacetime

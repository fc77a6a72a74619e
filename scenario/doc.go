// SPDX-License-Identifier: MIT

// Package scenario runs kinematics scenarios described in YAML.
//
// A scenario names a set of events, a pipeline of transforms, a set of
// histories and a list of root-finder searches on those histories:
//
//	name: twin
//	epsilon: 1e-9
//	events:
//	  a: [10, 1, 2, 1]
//	  b: [15, 3, 2, 5]
//	pipeline:
//	  - boost: {velocity: [0.5, 0.1, 0.3]}
//	  - rotation: {axis_angle: [0.1, 0.4, 0.5]}
//	  - reflection: {parity: [odd, odd, odd, odd]}
//	  - displacement: {offset: [1, -2, -3, 4]}
//	histories:
//	  traveller: {kind: there_and_back, velocity: [0.6, 0, 0], turnaround: 10}
//	searches:
//	  - history: traveller
//	    criterion: {past_light_cone: [18, 0, 0, 0]}
//	    guess: 12
//
// Load decodes strictly: unknown fields are errors. Validate builds every
// object the scenario describes and reports all problems at once, each
// prefixed with its field path and wrapped in ErrInvalidScenario.
//
// Runner.Run transforms every event with the pipeline, checks that the
// pipeline's reverse undoes it, compares the interval² of every pair of
// events before and after, and runs every search. The Report is written as
// aligned text or indented JSON; numbers in it are rounded to six decimals
// so the output is stable across platforms.
//
// History kinds:
//
//	stationary            base
//	uniform_velocity      base, velocity
//	uniform_acceleration  base, axis, acceleration
//	circular              base, radius, beta, axis, phase
//	there_and_back        base, velocity, turnaround
//	photon                base, direction
//	mirror                base, direction, reflect_at
//	stitched              legs (each a non-stitched history, from a branch point)
//
// base is an optional event [ct, x, y, z] (the origin by default), with an
// optional proper time tau.
package scenario

// SPDX-License-Identifier: MIT

// Package cli implements the spacetime command tree:
//
//	spacetime run <scenario.yaml>     run a scenario and print its report
//	spacetime check <scenario.yaml>   validate a scenario (exit 2 if invalid)
//	spacetime boost --velocity vx,vy,vz [--reverse] <ct> <x> <y> <z>
//	spacetime version
//
// Global flags select the output format (--format text|json), turn on
// debug logging to stderr (--verbose) and override the scenario tolerance
// (--epsilon). Commands return *ExitError so main can map failures to exit
// codes.
package cli

// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spacetime/core"
	"github.com/katalvlaran/spacetime/transform"
)

// BoostOptions holds flags for the boost command.
type BoostOptions struct {
	*RootOptions
	Velocity []float64
	Reverse  bool
}

// BoostResult is the JSON payload of the boost command.
type BoostResult struct {
	Velocity  [3]float64      `json:"velocity"`
	Gamma     float64         `json:"gamma"`
	Reverse   bool            `json:"reverse"`
	Input     core.Components `json:"input"`
	Output    core.Components `json:"output"`
	RoundTrip bool            `json:"round_trip"`
}

// NewBoostCommand creates the boost command.
func NewBoostCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BoostOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "boost --velocity vx,vy,vz <ct> <x> <y> <z>",
		Short: "Boost one event into a moving frame",
		Long: `Apply a boost with the given velocity (in units of c) to one event, or its
reverse with --reverse. Put -- before the coordinates if any is negative.

Example:
  spacetime boost --velocity 0.6,0,0 10 2 0 0
  spacetime boost --velocity 0.6,0,0 --reverse -- 11 -5 0 0`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoost(opts, args, cmd)
		},
	}

	cmd.Flags().Float64SliceVar(&opts.Velocity, "velocity", nil, "velocity vx,vy,vz with |v| < 1 (required)")
	cmd.Flags().BoolVar(&opts.Reverse, "reverse", false, "apply the reverse boost")
	_ = cmd.MarkFlagRequired("velocity")

	return cmd
}

func runBoost(opts *BoostOptions, args []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	badArgument := func(msg string, err error) error {
		_ = f.Error(ErrCodeBadArgument, fmt.Sprintf("%s: %v", msg, err), nil)
		return WrapExitError(ExitCommandError, ErrCodeBadArgument+": "+msg, err)
	}

	var c core.Components
	for i, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return badArgument(fmt.Sprintf("coordinate %s", core.Axis(i)), err)
		}
		c[i] = x
	}
	if len(opts.Velocity) != 3 {
		return badArgument("velocity", fmt.Errorf("want 3 components, got %d", len(opts.Velocity)))
	}
	v, err := core.NewVelocity(opts.Velocity[0], opts.Velocity[1], opts.Velocity[2])
	if err != nil {
		return badArgument("velocity", err)
	}

	b := transform.NewBoost(v)
	in := core.EventOf(c)
	apply, undo := b.Apply, b.Reverse
	if opts.Reverse {
		apply, undo = b.Reverse, b.Apply
	}
	out := apply(in)
	eps := opts.Epsilon
	if eps == 0 {
		eps = core.DefaultEpsilon
	}
	f.VerboseLog("%s, gamma %g", b, v.Gamma())

	res := BoostResult{
		Velocity:  v.Vector().Components(),
		Gamma:     v.Gamma(),
		Reverse:   opts.Reverse,
		Input:     in.Components(),
		Output:    out.Components(),
		RoundTrip: undo(out).EqualsWithTolerance(in, eps),
	}
	if opts.Format == "json" {
		return f.Success(res)
	}
	return f.Success(formatEvent(res.Output))
}

// formatEvent prints components with ten significant digits and no
// negative zeros.
func formatEvent(c core.Components) string {
	parts := make([]string, len(c))
	for i, x := range c {
		if x == 0 {
			x = 0
		}
		parts[i] = strconv.FormatFloat(x, 'g', 10, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

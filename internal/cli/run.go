// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spacetime/scenario"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a scenario and print its report",
		Long: `Run a scenario: transform its events with the pipeline, check that the
pipeline's reverse undoes it, compare intervals before and after, and run
its searches.

Exits 1 if a round trip fails and 2 if the scenario is missing or invalid.

Example:
  spacetime run scenario/testdata/boost-x.yaml
  spacetime run --format json --epsilon 1e-6 twin.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(rootOpts, args[0], cmd)
		},
	}
}

func runScenario(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	s, err := loadScenario(opts, path, f)
	if err != nil {
		return err
	}

	runner := scenario.NewRunner(scenario.WithLogger(opts.logger(cmd.ErrOrStderr())))
	rep, err := runner.Run(s)
	if err != nil {
		_ = f.Error(ErrCodeInvalidScenario, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid scenario", err)
	}

	if opts.Format == "json" {
		err = f.Success(rep)
	} else {
		err = rep.WriteText(f.Writer)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "failed to write report", err)
	}

	for _, e := range rep.Events {
		if !e.RoundTrip {
			return NewExitError(ExitFailure, fmt.Sprintf("%s: round trip failed for event %q", ErrCodeCheckFailed, e.Name))
		}
	}
	return nil
}

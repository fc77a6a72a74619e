// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CheckResult summarizes a valid scenario.
type CheckResult struct {
	Name      string `json:"name"`
	Valid     bool   `json:"valid"`
	Events    int    `json:"events"`
	Stages    int    `json:"stages"`
	Histories int    `json:"histories"`
	Searches  int    `json:"searches"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <scenario.yaml>",
		Short: "Validate a scenario without running it",
		Long: `Decode a scenario strictly and build everything it describes, reporting
every problem with its field path. Exits 2 if the scenario is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	s, err := loadScenario(opts, path, f)
	if err != nil {
		return err
	}

	res := CheckResult{
		Name:      s.Name,
		Valid:     true,
		Events:    len(s.Events),
		Stages:    len(s.Pipeline),
		Histories: len(s.Histories),
		Searches:  len(s.Searches),
	}
	if opts.Format == "json" {
		return f.Success(res)
	}
	_, err = fmt.Fprintf(f.Writer, "✓ %s: valid (%d events, %d stages, %d histories, %d searches)\n",
		res.Name, res.Events, res.Stages, res.Histories, res.Searches)
	return err
}

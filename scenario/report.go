// SPDX-License-Identifier: MIT

package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/spacetime/core"
)

// Report is the outcome of a scenario run.
type Report struct {
	Name      string           `json:"name"`
	Epsilon   float64          `json:"epsilon"`
	Pipeline  string           `json:"pipeline"`
	Events    []EventReport    `json:"events"`
	Intervals []IntervalReport `json:"intervals"`
	Searches  []SearchReport   `json:"searches"`
}

// EventReport is one event before and after the pipeline.
type EventReport struct {
	Name            string          `json:"name"`
	Before          core.Components `json:"before"`
	After           core.Components `json:"after"`
	SquareBefore    float64         `json:"square_before"`
	SquareAfter     float64         `json:"square_after"`
	SquareInvariant bool            `json:"square_invariant"`
	RoundTrip       bool            `json:"round_trip"`
}

// IntervalReport is the interval² between two events before and after the
// pipeline.
type IntervalReport struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Before     float64 `json:"before"`
	After      float64 `json:"after"`
	Separation string  `json:"separation"`
	Invariant  bool    `json:"invariant"`
}

// SearchReport is the outcome of one search.
type SearchReport struct {
	History    string          `json:"history"`
	Param      string          `json:"param"`
	Criterion  string          `json:"criterion"`
	Guess      float64         `json:"guess"`
	Lambda     float64         `json:"lambda"`
	Tau        *float64        `json:"tau,omitempty"`
	Event      core.Components `json:"event"`
	Iterations int             `json:"iterations"`
	Converged  bool            `json:"converged"`
	Error      string          `json:"error,omitempty"`
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

// WriteText writes the report as aligned tables. Empty sections are skipped.
func (r *Report) WriteText(w io.Writer) error {
	var sb strings.Builder
	table(&sb, [][]string{
		{"scenario", r.Name},
		{"epsilon", strconv.FormatFloat(r.Epsilon, 'g', -1, 64)},
		{"pipeline", r.Pipeline},
	})

	if len(r.Events) > 0 {
		rows := [][]string{{"EVENT", "BEFORE", "AFTER", "SQUARE", "SQUARE'", "ROUND-TRIP"}}
		for _, e := range r.Events {
			rows = append(rows, []string{
				e.Name, vec(e.Before), vec(e.After),
				num(e.SquareBefore), num(e.SquareAfter) + mark(e.SquareInvariant, "", " (changed)"),
				mark(e.RoundTrip, "ok", "FAILED"),
			})
		}
		sb.WriteString("\n")
		table(&sb, rows)
	}

	if len(r.Intervals) > 0 {
		rows := [][]string{{"FROM", "TO", "INTERVAL²", "INTERVAL²'", "SEPARATION", "INVARIANT"}}
		for _, iv := range r.Intervals {
			rows = append(rows, []string{
				iv.From, iv.To, num(iv.Before), num(iv.After), iv.Separation,
				mark(iv.Invariant, "yes", "NO"),
			})
		}
		sb.WriteString("\n")
		table(&sb, rows)
	}

	if len(r.Searches) > 0 {
		rows := [][]string{{"HISTORY", "PARAM", "CRITERION", "GUESS", "LAMBDA", "TAU", "EVENT", "STEPS", "STATUS"}}
		for _, s := range r.Searches {
			tau := "-"
			if s.Tau != nil {
				tau = num(*s.Tau)
			}
			status := mark(s.Converged, "converged", "not converged")
			if s.Error != "" {
				status = s.Error
			}
			rows = append(rows, []string{
				s.History, s.Param, s.Criterion, num(s.Guess), num(s.Lambda), tau,
				vec(s.Event), strconv.Itoa(s.Iterations), status,
			})
		}
		sb.WriteString("\n")
		table(&sb, rows)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func table(sb *strings.Builder, rows [][]string) {
	tw := tabwriter.NewWriter(sb, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

func mark(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}

func num(x float64) string { return strconv.FormatFloat(x, 'f', -1, 64) }

func vec(c core.Components) string {
	return fmt.Sprintf("(%s, %s, %s, %s)", num(c[0]), num(c[1]), num(c[2]), num(c[3]))
}

// round keeps six decimals and drops negative zero.
func round(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r := math.Round(x*1e6) / 1e6
	if r == 0 {
		return 0
	}
	return r
}

func roundAll(c core.Components) core.Components {
	for i := range c {
		c[i] = round(c[i])
	}
	return c
}

func (e EventReport) rounded() EventReport {
	e.Before, e.After = roundAll(e.Before), roundAll(e.After)
	e.SquareBefore, e.SquareAfter = round(e.SquareBefore), round(e.SquareAfter)
	return e
}

func (iv IntervalReport) rounded() IntervalReport {
	iv.Before, iv.After = round(iv.Before), round(iv.After)
	return iv
}

func (s SearchReport) rounded() SearchReport {
	s.Lambda = round(s.Lambda)
	s.Event = roundAll(s.Event)
	if s.Tau != nil {
		t := round(*s.Tau)
		s.Tau = &t
	}
	return s
}

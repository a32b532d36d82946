package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/okian/skillr/pkg/skillr"
)

const credibleLevel = 0.95

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	// Keep labels such as P(draw) as written.
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	return t
}

func renderMatch(out io.Writer, m skillr.Match) {
	t := newTable(out)
	t.SetTitle("Outcome for competitor 1: %s", m.Outcome)
	t.AppendHeader(table.Row{"Competitor", "Before", "After", "Δ Location", "95% Interval", "P(result)", "Info Gain"})
	for i, s := range []skillr.Step{m.First, m.Second} {
		lo, hi := s.After.Interval(credibleLevel)
		t.AppendRow(table.Row{
			i + 1,
			s.Before.String(),
			s.After.String(),
			fmt.Sprintf("%+0.4f", s.After.Location-s.Before.Location),
			fmt.Sprintf("[%0.2f, %0.2f]", lo, hi),
			fmt.Sprintf("%0.4f", s.Probability),
			fmt.Sprintf("%0.4f", s.InformationGain),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "Spread", fmt.Sprintf("%0.4f", m.Spread)})
	t.Render()
}

func renderProbs(out io.Writer, r1, r2 skillr.Rating, ps skillr.Probabilities) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Competitor 1", "Competitor 2", "P(win)", "P(draw)", "P(loss)", "Expectation"})
	t.AppendRow(table.Row{
		r1.String(),
		r2.String(),
		fmt.Sprintf("%0.4f", ps.Win()),
		fmt.Sprintf("%0.4f", ps.Draw()),
		fmt.Sprintf("%0.4f", ps.Loss()),
		fmt.Sprintf("%+0.4f", ps.Expectation()),
	})
	t.Render()
}

func renderReplay(out io.Writer, matches []skillr.Match) {
	if len(matches) == 0 {
		return
	}
	t := newTable(out)
	t.AppendHeader(table.Row{"Match", "Outcome", "P(win)", "Competitor 1", "Competitor 2"})
	for i, m := range matches {
		t.AppendRow(table.Row{
			i + 1,
			m.Outcome.String(),
			fmt.Sprintf("%0.4f", m.Probabilities.Win()),
			m.First.After.String(),
			m.Second.After.String(),
		})
	}
	t.Render()
}

func renderMetrics(rc *runContext) error {
	samples, err := rc.metrics.Snapshot()
	if err != nil {
		return err
	}
	t := newTable(rc.out)
	t.AppendHeader(table.Row{"Metric", "Labels", "Value"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})
	for _, s := range samples {
		t.AppendRow(table.Row{s.Name, s.Labels, fmt.Sprintf("%g", s.Value)})
	}
	t.Render()
	return nil
}

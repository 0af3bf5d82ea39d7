package ui

import (
	"fmt"
	"strings"

	"cratersim/internal/core"
)

// Line is one row of the side panel.
type Line struct {
	Text   string
	Header bool
	// Value is right-aligned next to Text when non-empty.
	Value string
}

// KeyHelp lists the viewer key bindings.
var KeyHelp = []string{
	"Space  pause/resume",
	"N      single step",
	"R      reset (same seed)",
	"S      reset (new seed)",
	"Q      quit",
}

// StatusLines describes the latest step.
func StatusLines(st core.Status) []Line {
	step := "-"
	if st.Step >= 0 {
		step = fmt.Sprintf("%d", st.Step)
	}
	sat := "not detected"
	if st.Saturated {
		sat = fmt.Sprintf("step %d", st.SaturationPoint)
	}
	state := "running"
	if st.Done {
		state = "done"
	}
	return []Line{
		{Text: "Status", Header: true},
		{Text: "Step", Value: step},
		{Text: "Impacts", Value: fmt.Sprintf("%d", st.Total)},
		{Text: "Visible", Value: fmt.Sprintf("%d", st.Visible)},
		{Text: "Score", Value: fmt.Sprintf("%.3f", st.Score)},
		{Text: "Saturation", Value: sat},
		{Text: "Run", Value: state},
	}
}

// ParameterLines flattens a parameter snapshot into panel rows.
func ParameterLines(s core.ParameterSnapshot) []Line {
	var out []Line
	for _, g := range s.Groups {
		out = append(out, Line{Text: g.Name, Header: true})
		for _, p := range g.Params {
			out = append(out, Line{Text: p.Label, Value: p.Value})
		}
	}
	return out
}

// StatusText renders a one-line status summary for terminals and titles.
func StatusText(name string, st core.Status) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  step %d  impacts %d  visible %d  score %.2f", name, st.Step, st.Total, st.Visible, st.Score)
	if st.Saturated {
		fmt.Fprintf(&b, "  saturated@%d", st.SaturationPoint)
	}
	if st.Done {
		b.WriteString("  [done]")
	}
	return b.String()
}

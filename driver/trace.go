package driver

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/papier/paper"
)

// Trace runs the machine to the end, printing the sheet being worked on
// after every `every` steps, then every sheet with its result.
func (r *Runner) Trace(ctx context.Context, w io.Writer, every int) error {
	ctx = r.span(ctx)
	every = max(every, 1)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		state, err := r.Step(ctx)
		if err != nil {
			return err
		}
		if r.Machine.Finished() {
			break
		}
		if r.steps%every != 0 {
			continue
		}
		inner := r.Machine.Innermost()
		if _, err := fmt.Fprintf(w, "-- step %d depth %d ip %d: %v\n%s\n",
			r.steps, state.Depth, state.IP, state.Instruction, inner.Print(),
		); err != nil {
			return err
		}
	}
	return WritePapers(w, r.Machine)
}

// WritePapers prints m and every archived child, marking circled results.
func WritePapers(w io.Writer, m *paper.Machine) error {
	for i, p := range m.Papers() {
		if _, err := fmt.Fprintf(w, "== paper %d depth %d\n", i, p.Depth()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, markCircled(p)); err != nil {
			return err
		}
		if result, ok := p.Result(); ok {
			if _, err := fmt.Fprintf(w, "result: %s\n", strings.TrimSpace(string(result))); err != nil {
				return err
			}
		}
	}
	return nil
}

// markCircled renders the sheet with a line of carets under the circled word.
func markCircled(m *paper.Machine) string {
	lo, _, ok := m.Memory().Bounds()
	if !ok {
		return ""
	}
	circled, done := m.CircledAbsolute()
	buf := new(strings.Builder)
	lines := strings.SplitAfter(m.Print(), "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		buf.WriteString(line)
		if done && lo.Y+int64(i) == circled.Offset.Y {
			indent := max(circled.Offset.X-lo.X, 0)
			buf.WriteString(strings.Repeat(" ", int(indent)))
			buf.WriteString(strings.Repeat("^", circled.Len))
			buf.WriteString("\n")
		}
	}
	return buf.String()
}

package driver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/reusee/papier/logs"
	"github.com/reusee/papier/paper"
)

var ErrStepBudget = errors.New("step budget exhausted")

// Runner steps a machine on behalf of a user interface, with logging, a
// step budget and cancellation.
type Runner struct {
	Machine *paper.Machine
	Logger  logs.Logger
	// NewSpan, if set, opens a span for every RunToEnd or FreeRun without one.
	NewSpan logs.NewSpan
	// MaxSteps bounds the total steps. Zero means unlimited.
	MaxSteps int
	// Interval is the pause between steps of FreeRun.
	Interval time.Duration

	steps int
}

// Steps returns the number of successful steps so far.
func (r *Runner) Steps() int {
	return r.steps
}

func (r *Runner) Step(ctx context.Context) (paper.StepState, error) {
	if r.MaxSteps > 0 && r.steps >= r.MaxSteps {
		return paper.StepState{}, fmt.Errorf("%w: %d steps", ErrStepBudget, r.MaxSteps)
	}

	before := r.Machine.Innermost()
	state, err := r.Machine.Step()
	if err != nil {
		r.Logger.WarnContext(ctx, "step failed",
			"depth", state.Depth,
			"ip", state.IP,
			"fatal", paper.IsFatal(err),
			"error", err,
		)
		return state, logs.WrapSpan(ctx, err)
	}
	r.steps++

	r.Logger.DebugContext(ctx, "step",
		"depth", state.Depth,
		"ip", state.IP,
		"cursor", state.Cursor.String(),
		"instruction", state.Instruction.String(),
	)

	if before != r.Machine && before.Finished() {
		result, _ := before.Result()
		r.Logger.InfoContext(ctx, "return",
			"depth", before.Depth(),
			"result", strings.TrimSpace(string(result)),
		)
	}
	after := r.Machine.Innermost()
	if inst, _ := after.Last(); after != before && inst == nil {
		r.Logger.InfoContext(ctx, "call",
			"depth", after.Depth(),
			"instructions", len(after.Program()),
		)
	}

	if state.Status == paper.Finished && r.Machine.Finished() {
		result, _ := r.Machine.Result()
		r.Logger.InfoContext(ctx, "finished",
			"steps", r.steps,
			"result", strings.TrimSpace(string(result)),
		)
	}

	return state, nil
}

func (r *Runner) span(ctx context.Context) context.Context {
	if r.NewSpan == nil || ctx.Value(logs.SpanKey) != nil {
		return ctx
	}
	ctx, _ = r.NewSpan(ctx, "")
	return ctx
}

// RunToEnd steps until the machine finishes.
func (r *Runner) RunToEnd(ctx context.Context) error {
	ctx = r.span(ctx)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		state, err := r.Step(ctx)
		if err != nil {
			return err
		}
		if state.Status == paper.Finished && r.Machine.Finished() {
			return nil
		}
	}
}

// FreeRun steps until a BreakPoint is hit or the machine finishes, pausing
// Interval between steps.
func (r *Runner) FreeRun(ctx context.Context) (paper.StepState, error) {
	ctx = r.span(ctx)
	var timer *time.Timer
	if r.Interval > 0 {
		timer = time.NewTimer(r.Interval)
		defer timer.Stop()
	}
	for {
		if err := ctx.Err(); err != nil {
			return paper.StepState{}, err
		}
		state, err := r.Step(ctx)
		if err != nil {
			return state, err
		}
		if state.Breakpoint || r.Machine.Finished() {
			return state, nil
		}
		if timer != nil {
			timer.Reset(r.Interval)
			select {
			case <-timer.C:
			case <-ctx.Done():
				return state, ctx.Err()
			}
		}
	}
}

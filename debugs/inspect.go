package debugs

import (
	"context"
	"strings"

	"github.com/reusee/e5"
	"github.com/reusee/papier/paper"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

type cellValue struct {
	X    int64
	Y    int64
	Char string
}

// MachineSummary is the script and dump view of one sheet.
type MachineSummary struct {
	Depth    int
	IP       int
	Cursor   paper.Pos
	Next     paper.Instruction
	Finished bool
	Result   string
	Paper    string
}

func Summarize(m *paper.Machine) MachineSummary {
	ret := MachineSummary{
		Depth:    m.Depth(),
		IP:       m.IP(),
		Cursor:   m.Cursor(),
		Next:     m.Current(),
		Finished: m.Finished(),
		Paper:    m.Print(),
	}
	if result, ok := m.Result(); ok {
		ret.Result = strings.TrimSpace(string(result))
	}
	return ret
}

func cells(m *paper.Machine) (ret []cellValue) {
	for pos, r := range m.Cells {
		ret = append(ret, cellValue{
			X:    pos.X,
			Y:    pos.Y,
			Char: string(r),
		})
	}
	return
}

// Globals describes the innermost machine of m, plus every sheet, for scripts.
func Globals(m *paper.Machine) map[string]any {
	inner := m.Innermost()
	return map[string]any{
		"cursor":   inner.Cursor(),
		"ip":       inner.IP(),
		"paper":    inner.Print(),
		"cells":    cells(inner),
		"depth":    inner.Depth(),
		"finished": m.Finished(),
		"papers":   m.Papers(),
	}
}

// Inspect runs script against the state of m and returns the globals it defines.
func Inspect(ctx context.Context, m *paper.Machine, script string) (starlark.StringDict, error) {
	predeclared := make(starlark.StringDict)
	for name, value := range Globals(m) {
		predeclared[name] = ToStarlark(value)
	}

	thread := &starlark.Thread{
		Name: "inspect",
	}
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()

	globals, err := starlark.ExecFileOptions(fileOptions, thread, "inspect", script, predeclared)
	if err != nil {
		return nil, wrap(err)
	}
	return globals, nil
}

package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/papier/logs"
	"github.com/reusee/papier/paper"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
)

// Tap opens a starlark REPL over the given globals, returning when input ends.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = ToStarlark(value)
		}

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, mappings)
	}
}

// TapMachine is Tap over the globals Inspect scripts see.
type TapMachine func(ctx context.Context, m *paper.Machine)

func (Module) TapMachine(
	tap Tap,
) TapMachine {
	return func(ctx context.Context, m *paper.Machine) {
		tap(ctx, "machine", Globals(m))
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/papier/cmds"
	"github.com/reusee/papier/modes"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// action is the work selected on the command line.
type action func(ctx context.Context, scope dscope.Scope) error

var selected action

func setAction(a action) {
	if selected != nil {
		fatal(fmt.Errorf("more than one action given"))
	}
	selected = a
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "papier: %v\n", err)
	os.Exit(1)
}

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fatal(err)
	}
	if selected == nil {
		selected = runAction(programRef{})
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	if err := selected(ctx, scope); err != nil {
		fatal(err)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goforj/godump"
	"github.com/reusee/dscope"
	"github.com/reusee/papier/asm"
	"github.com/reusee/papier/cmds"
	"github.com/reusee/papier/debugs"
	"github.com/reusee/papier/driver"
	"github.com/reusee/papier/logs"
	"github.com/reusee/papier/paper"
	"github.com/reusee/papier/papierconfigs"
	"github.com/reusee/papier/programs"
	"github.com/reusee/papier/tui"
	"github.com/reusee/papier/vars"
	"golang.org/x/term"
)

var (
	traceEvery = cmds.Var[int]("-every")
	writeBack  = cmds.Switch("-w")
)

const programHint = "[program|file.paper] [args...]"

func init() {
	program := func(fn func(programRef) action) *cmds.Command {
		return cmds.Func(func(name *string, args []float64) {
			setAction(fn(programRef{
				Name: vars.DerefOrZero(name),
				Args: args,
			}))
		}).Args(programHint)
	}

	cmds.Define("run", program(runAction).
		Desc("run a program to the end and print its result"))
	cmds.Define("trace", program(traceAction).
		Desc("run a program, printing the sheet every -every steps"))
	cmds.Define("tui", program(tuiAction).
		Desc("step a program in a full screen view"))
	cmds.Define("debug", program(debugAction).
		Desc("step a program in a line debugger"))
	cmds.Define("asm", program(asmAction).
		Desc("print a program as assembly"))
	cmds.Define("dump", program(dumpAction).
		Desc("run a program and dump every sheet"))
	cmds.Define("tap", program(tapAction).
		Desc("run a program and open a starlark prompt over its state"))

	cmds.Define("inspect", cmds.Func(func(script string, name *string, args []float64) {
		setAction(inspectAction(script, programRef{
			Name: vars.DerefOrZero(name),
			Args: args,
		}))
	}).Args("<script.star> "+programHint).
		Desc("run a program, then a starlark script over its state"))

	cmds.Define("fmt", cmds.Func(func(paths []string) {
		setAction(fmtAction(paths))
	}).Args("<file.paper...>").
		Desc("reformat assembly files, in place with -w"))

	cmds.Define("list", cmds.Func(func() {
		setAction(listAction)
	}).Desc("list builtin programs"))
}

func newRunner(scope dscope.Scope, ref programRef) (runner *driver.Runner, err error) {
	scope.Call(func(
		newRunner driver.NewRunner,
		options driver.MachineOptions,
		defaultProgram papierconfigs.DefaultProgram,
		library papierconfigs.Library,
		logger logs.Logger,
	) {
		var program []paper.Instruction
		program, err = load(ref, defaultProgram, library)
		if err != nil {
			return
		}
		logger.Debug("program loaded",
			"program", ref.String(),
			"instructions", len(program),
		)
		runner = newRunner(paper.NewWithOptions(program, paper.Options(options)))
	})
	return
}

func finish(ctx context.Context, scope dscope.Scope, ref programRef) (*driver.Runner, error) {
	runner, err := newRunner(scope, ref)
	if err != nil {
		return nil, err
	}
	if err := runner.RunToEnd(ctx); err != nil {
		return nil, err
	}
	return runner, nil
}

func runAction(ref programRef) action {
	return func(ctx context.Context, scope dscope.Scope) error {
		runner, err := finish(ctx, scope, ref)
		if err != nil {
			return err
		}
		result, _ := runner.Machine.Result()
		fmt.Println(strings.TrimSpace(string(result)))
		return nil
	}
}

func traceAction(ref programRef) action {
	return func(ctx context.Context, scope dscope.Scope) error {
		runner, err := newRunner(scope, ref)
		if err != nil {
			return err
		}
		return runner.Trace(ctx, os.Stdout, *traceEvery)
	}
}

func tuiAction(ref programRef) action {
	return func(ctx context.Context, scope dscope.Scope) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("tui needs a terminal")
		}
		runner, err := newRunner(scope, ref)
		if err != nil {
			return err
		}
		return tui.NewView(runner).Run(ctx)
	}
}

func debugAction(ref programRef) action {
	return func(ctx context.Context, scope dscope.Scope) error {
		runner, err := newRunner(scope, ref)
		if err != nil {
			return err
		}
		session := &driver.Session{
			Runner: runner,
			Out:    os.Stdout,
		}
		return session.Prompt(ctx)
	}
}

func asmAction(ref programRef) action {
	return func(ctx context.Context, scope dscope.Scope) error {
		runner, err := newRunner(scope, ref)
		if err != nil {
			return err
		}
		fmt.Print(asm.Format(runner.Machine.Program()))
		return nil
	}
}

func dumpAction(ref programRef) action {
	return func(ctx context.Context, scope dscope.Scope) error {
		runner, err := finish(ctx, scope, ref)
		if err != nil {
			return err
		}
		var summaries []debugs.MachineSummary
		for _, m := range runner.Machine.Papers() {
			summaries = append(summaries, debugs.Summarize(m))
		}
		godump.Dump(summaries)
		return nil
	}
}

func tapAction(ref programRef) action {
	return func(ctx context.Context, scope dscope.Scope) error {
		runner, err := finish(ctx, scope, ref)
		if err != nil {
			return err
		}
		scope.Call(func(
			tap debugs.TapMachine,
		) {
			tap(ctx, runner.Machine)
		})
		return nil
	}
}

func inspectAction(scriptPath string, ref programRef) action {
	return func(ctx context.Context, scope dscope.Scope) error {
		script, err := os.ReadFile(scriptPath)
		if err != nil {
			return wrap(err)
		}
		runner, err := finish(ctx, scope, ref)
		if err != nil {
			return err
		}
		globals, err := debugs.Inspect(ctx, runner.Machine, string(script))
		if err != nil {
			return err
		}
		for _, name := range slices.Sorted(maps.Keys(globals)) {
			fmt.Printf("%s = %v\n", name, globals[name])
		}
		return nil
	}
}

func fmtAction(paths []string) action {
	return func(ctx context.Context, scope dscope.Scope) error {
		for _, path := range paths {
			program, err := asm.ParseFile(path)
			if err != nil {
				return err
			}
			formatted := asm.Format(program)
			if *writeBack {
				if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
					return wrap(err)
				}
				continue
			}
			if _, err := io.WriteString(os.Stdout, formatted); err != nil {
				return wrap(err)
			}
		}
		return nil
	}
}

func listAction(ctx context.Context, scope dscope.Scope) error {
	for _, name := range programs.Names() {
		program, err := programs.Lookup(name)
		if err != nil {
			return err
		}
		arity := "any"
		if program.Arity >= 0 {
			arity = fmt.Sprint(program.Arity)
		}
		fmt.Printf("%-12s %-4s %s\n", name, arity, program.Description)
	}
	scope.Call(func(
		library papierconfigs.Library,
	) {
		for _, path := range library {
			fmt.Printf("%-12s %-4s %s\n", strings.TrimSuffix(filepath.Base(path), ".paper"), "0", path)
		}
	})
	return nil
}

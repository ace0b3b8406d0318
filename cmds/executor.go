package cmds

import (
	"fmt"
	"maps"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}

	ret.Define("-h", Func(func() {
		ret.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help"))

	return ret
}

func (p *Executor) Define(name string, command *Command) {
	for _, name := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

func (p *Executor) Execute(args []string) error {
	commands := p.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := commands[name]
		if !ok {
			return unknownCommand(name, commands)
		}

		if command.Func.IsValid() {
			var err error
			args, err = call(command.Func, args)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subname, cmd := range command.Subs {
				if _, ok := commands[subname]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subname)
				}
				commands[subname] = cmd
			}
		}
	}
	return nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

// call invokes fn with arguments taken from args and returns the rest.
func call(fn reflect.Value, args []string) ([]string, error) {
	fnType := fn.Type()
	var callArgs []reflect.Value
	for i := range fnType.NumIn() {
		t := fnType.In(i)

		if isRest(t) {
			value := reflect.MakeSlice(t, 0, len(args))
			for _, arg := range args {
				elem, err := getArg(t.Elem(), []string{arg})
				if err != nil {
					return nil, err
				}
				value = reflect.Append(value, elem)
			}
			args = nil
			callArgs = append(callArgs, value)
			continue
		}

		value, err := getArg(t, args)
		if err != nil {
			return nil, err
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}

	rets := fn.Call(callArgs)
	if len(rets) > 0 && !rets[0].IsNil() {
		return nil, rets[0].Interface().(error)
	}
	return args, nil
}

func unknownCommand(name string, commands map[string]*Command) error {
	names := slices.Sorted(maps.Keys(commands))
	ranks := fuzzy.RankFindFold(name, names)
	if len(ranks) == 0 {
		return fmt.Errorf("unknown command: %s", name)
	}
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		return a.Distance - b.Distance
	})
	suggestions := make([]string, 0, min(len(ranks), 3))
	for _, rank := range ranks[:min(len(ranks), 3)] {
		suggestions = append(suggestions, rank.Target)
	}
	return fmt.Errorf("unknown command: %s, did you mean %s", name, strings.Join(suggestions, ", "))
}

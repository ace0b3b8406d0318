package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/reusee/papier/paper"
)

var ErrUnknownCommand = errors.New("unknown command")

// Session is a line oriented debugger over a Runner.
type Session struct {
	Runner *Runner
	Out    io.Writer
	last   string
}

type sessionCommand struct {
	names []string
	desc  string
	run   func(s *Session, ctx context.Context, args []string) error
}

var sessionCommands []sessionCommand

func init() {
	sessionCommands = []sessionCommand{
		{[]string{"step", "s"}, "step [n]: execute n instructions", (*Session).step},
		{[]string{"continue", "c"}, "run to the next breakpoint", (*Session).cont},
		{[]string{"run", "r"}, "run to the end", (*Session).run},
		{[]string{"print", "p"}, "print the sheet being worked on", (*Session).print},
		{[]string{"papers"}, "print every sheet", (*Session).papers},
		{[]string{"cursor"}, "show the cursor", (*Session).cursor},
		{[]string{"ip"}, "show the next instruction", (*Session).ip},
		{[]string{"where", "w"}, "show the call chain", (*Session).where},
		{[]string{"result"}, "show the result", (*Session).result},
		{[]string{"help", "h"}, "list commands", (*Session).help},
	}
}

// Exec runs one command line. An empty line repeats the previous command.
// quit is set by "quit" or "q".
func (s *Session) Exec(ctx context.Context, line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		line = s.last
	}
	if line == "" {
		return false, nil
	}
	s.last = line

	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]
	if name == "quit" || name == "q" {
		return true, nil
	}
	for _, cmd := range sessionCommands {
		if slices.Contains(cmd.names, name) {
			return false, cmd.run(s, ctx, args)
		}
	}
	return false, fmt.Errorf("%w: %s, try help", ErrUnknownCommand, name)
}

func (s *Session) printState(state paper.StepState) {
	mark := ""
	if state.Breakpoint {
		mark = " (breakpoint)"
	}
	fmt.Fprintf(s.Out, "[%d] depth %d ip %d at %v: %v%s\n",
		s.Runner.Steps(), state.Depth, state.IP, state.Cursor, state.Instruction, mark)
}

func (s *Session) step(ctx context.Context, args []string) error {
	n := 1
	if len(args) > 0 {
		var err error
		n, err = strconv.Atoi(args[0])
		if err != nil {
			return err
		}
	}
	for range n {
		state, err := s.Runner.Step(ctx)
		if err != nil {
			return err
		}
		s.printState(state)
		if s.Runner.Machine.Finished() {
			break
		}
	}
	return nil
}

func (s *Session) cont(ctx context.Context, args []string) error {
	state, err := s.Runner.FreeRun(ctx)
	if err != nil {
		return err
	}
	s.printState(state)
	return nil
}

func (s *Session) run(ctx context.Context, args []string) error {
	if err := s.Runner.RunToEnd(ctx); err != nil {
		return err
	}
	return s.result(ctx, nil)
}

func (s *Session) print(ctx context.Context, args []string) error {
	_, err := io.WriteString(s.Out, s.Runner.Machine.Innermost().Print())
	return err
}

func (s *Session) papers(ctx context.Context, args []string) error {
	return WritePapers(s.Out, s.Runner.Machine)
}

func (s *Session) cursor(ctx context.Context, args []string) error {
	_, err := fmt.Fprintln(s.Out, s.Runner.Machine.Innermost().Cursor())
	return err
}

func (s *Session) ip(ctx context.Context, args []string) error {
	m := s.Runner.Machine.Innermost()
	_, err := fmt.Fprintf(s.Out, "%d: %v\n", m.IP(), m.Current())
	return err
}

func (s *Session) where(ctx context.Context, args []string) error {
	for m := s.Runner.Machine; m != nil; m = m.Child() {
		if _, err := fmt.Fprintf(s.Out, "depth %d ip %d cursor %v: %v\n",
			m.Depth(), m.IP(), m.Cursor(), m.Current()); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) result(ctx context.Context, args []string) error {
	result, ok := s.Runner.Machine.Result()
	if !ok {
		_, err := fmt.Fprintln(s.Out, "not finished")
		return err
	}
	_, err := fmt.Fprintln(s.Out, strings.TrimSpace(string(result)))
	return err
}

func (s *Session) help(ctx context.Context, args []string) error {
	for _, cmd := range sessionCommands {
		fmt.Fprintf(s.Out, "%-16s %s\n", strings.Join(cmd.names, ", "), cmd.desc)
	}
	fmt.Fprintf(s.Out, "%-16s %s\n", "quit, q", "leave")
	return nil
}

func complete(line string) (ret []string) {
	for _, cmd := range sessionCommands {
		for _, name := range cmd.names {
			if strings.HasPrefix(name, line) {
				ret = append(ret, name)
			}
		}
	}
	return
}

func historyPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "papier", "debug-history"), nil
}

func (s *Session) saveHistory(line *liner.State, path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		s.Runner.Logger.Warn("create history dir error", "err", err)
		return
	}
	f, err := os.Create(path)
	if err != nil {
		s.Runner.Logger.Warn("create history file error", "err", err)
		return
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		s.Runner.Logger.Warn("write history error", "err", err)
	}
}

// Prompt reads commands from the terminal until quit, end of input or Ctrl-C.
func (s *Session) Prompt(ctx context.Context) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(complete)

	path, err := historyPath()
	if err != nil {
		s.Runner.Logger.Warn("get history path error", "err", err)
	} else {
		if f, err := os.Open(path); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
		defer s.saveHistory(line, path)
	}

	for {
		input, err := line.Prompt(fmt.Sprintf("papier[%d]> ", s.Runner.Steps()))
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		quit, err := s.Exec(ctx, input)
		if err != nil {
			fmt.Fprintf(s.Out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

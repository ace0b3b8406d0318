package driver

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/papier/programs"
)

func TestSession(t *testing.T) {
	out := new(strings.Builder)
	s := &Session{
		Runner: newRunner(programs.GCDMain(12, 8), new(bytes.Buffer)),
		Out:    out,
	}
	ctx := context.Background()

	exec := func(line string) string {
		t.Helper()
		out.Reset()
		quit, err := s.Exec(ctx, line)
		if err != nil {
			t.Fatalf("%s: %v", line, err)
		}
		if quit {
			t.Fatalf("%s: quit", line)
		}
		return out.String()
	}

	if got := exec("step"); !strings.HasPrefix(got, "[1] depth 0 ip 0") {
		t.Fatalf("got %q", got)
	}
	// repeat
	if got := exec(""); !strings.HasPrefix(got, "[2] depth 0 ip 1") {
		t.Fatalf("got %q", got)
	}
	if got := exec("p"); got != "12         8\n" {
		t.Fatalf("got %q", got)
	}
	if got := exec("cursor"); got != "(20, 0)\n" {
		t.Fatalf("got %q", got)
	}
	if got := exec("result"); got != "not finished\n" {
		t.Fatalf("got %q", got)
	}
	if got := exec("c"); !strings.Contains(got, "(breakpoint)") {
		t.Fatalf("got %q", got)
	}
	if got := exec("where"); strings.Count(got, "depth") != 2 {
		t.Fatalf("got %q", got)
	}
	if got := exec("run"); got != "4\n" {
		t.Fatalf("got %q", got)
	}
	if got := exec("papers"); !strings.Contains(got, "== paper 1 depth 1") {
		t.Fatalf("got %q", got)
	}
	if got := exec("help"); !strings.Contains(got, "continue, c") {
		t.Fatalf("got %q", got)
	}

	quit, err := s.Exec(ctx, "q")
	if err != nil {
		t.Fatal(err)
	}
	if !quit {
		t.Fatal("should quit")
	}
}

func TestSessionUnknownCommand(t *testing.T) {
	s := &Session{
		Runner: newRunner(programs.GCDMain(12, 8), new(bytes.Buffer)),
		Out:    new(bytes.Buffer),
	}
	_, err := s.Exec(context.Background(), "foo")
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("got %v", err)
	}
	_, err = s.Exec(context.Background(), "step x")
	if err == nil {
		t.Fatal("should fail")
	}
}

func TestComplete(t *testing.T) {
	got := complete("c")
	if len(got) != 3 || got[0] != "continue" || got[1] != "c" || got[2] != "cursor" {
		t.Fatalf("got %v", got)
	}
}

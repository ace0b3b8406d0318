package papierconfigs

import (
	"bytes"
	"testing"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/papier/cmds"
	"github.com/reusee/papier/configs"
	"github.com/reusee/papier/logs"
	"github.com/reusee/papier/modes"
)

func withConfig(t *testing.T, path string) dscope.Scope {
	return dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(t),
	).Fork(
		func() logs.Writer {
			return new(bytes.Buffer)
		},
		func() configs.Loader {
			return configs.NewLoader([]string{path}, Schema)
		},
	)
}

func TestConfigFile(t *testing.T) {
	withConfig(t, "testdata/papier.cue").Call(func(
		maxSteps MaxSteps,
		interval FreeRunInterval,
		keep KeepFinished,
		program DefaultProgram,
	) {
		if maxSteps != 500 {
			t.Fatalf("got %v", maxSteps)
		}
		if time.Duration(interval) != 10*time.Millisecond {
			t.Fatalf("got %v", interval)
		}
		if keep {
			t.Fatal()
		}
		if program.Name != "sort" || len(program.Args) != 3 {
			t.Fatalf("got %+v", program)
		}
	})
}

func TestDefaults(t *testing.T) {
	withConfig(t, "testdata/empty.cue").Call(func(
		maxSteps MaxSteps,
		interval FreeRunInterval,
		keep KeepFinished,
		program DefaultProgram,
	) {
		if maxSteps != DefaultMaxSteps {
			t.Fatalf("got %v", maxSteps)
		}
		if interval != DefaultFreeRunInterval {
			t.Fatalf("got %v", interval)
		}
		if !keep {
			t.Fatal()
		}
		if program.Name != "gcd-mod" {
			t.Fatalf("got %+v", program)
		}
	})
}

func TestFlagsOverrideConfig(t *testing.T) {
	cmds.MustExecute([]string{
		"-max-steps", "0",
		"-interval", "1s",
		"-discard-finished",
	})
	defer cmds.MustExecute([]string{
		"-max-steps.",
		"-interval.",
		"!-discard-finished",
	})
	withConfig(t, "testdata/empty.cue").Call(func(
		maxSteps MaxSteps,
		interval FreeRunInterval,
		keep KeepFinished,
	) {
		if maxSteps != 0 {
			t.Fatalf("got %v", maxSteps)
		}
		if time.Duration(interval) != time.Second {
			t.Fatalf("got %v", interval)
		}
		if keep {
			t.Fatal()
		}
	})
}

func TestBadConfig(t *testing.T) {
	loader := configs.NewLoader([]string{"testdata/bad.cue"}, Schema)
	var n int
	if err := loader.AssignFirst("max_steps", &n); err == nil {
		t.Fatal("should fail")
	}
}

func TestConfigPaths(t *testing.T) {
	cmds.MustExecute([]string{"-config", "testdata/papier.cue"})
	defer cmds.MustExecute([]string{"-config."})
	paths := ConfigPaths()
	if len(paths) == 0 || paths[0] != "testdata/papier.cue" {
		t.Fatalf("got %v", paths)
	}
}

func TestLibrary(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(t),
	).Fork(
		func() logs.Writer {
			return new(bytes.Buffer)
		},
		func() configs.Loader {
			return configs.NewLoader([]string{
				"testdata/library.cue",
				"testdata/papier.cue",
			}, Schema)
		},
	).Call(func(
		library Library,
	) {
		if len(library) != 3 {
			t.Fatalf("got %v", library)
		}
		path, ok := library.Find("fib")
		if !ok || path != "more/fib.paper" {
			t.Fatalf("got %v %v", path, ok)
		}
		if _, ok := library.Find("gcd-mod"); ok {
			t.Fatal("should not find")
		}
	})
}

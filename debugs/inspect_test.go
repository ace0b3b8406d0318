package debugs

import (
	"context"
	"testing"

	"github.com/reusee/papier/paper"
	"github.com/reusee/papier/programs"
	"go.starlark.net/starlark"
)

func TestInspect(t *testing.T) {
	m := paper.New(programs.GCDMain(12, 8))
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	globals, err := Inspect(context.Background(), m, `
x = cursor["x"]
n = len(papers)
result = papers[0]["Result"]
digits = "".join([c["Char"] for c in cells if c["Y"] == 0])
`)
	if err != nil {
		t.Fatal(err)
	}

	check := func(name string, expected starlark.Value) {
		t.Helper()
		equal, err := starlark.Equal(globals[name], expected)
		if err != nil {
			t.Fatal(err)
		}
		if !equal {
			t.Fatalf("%s: got %v", name, globals[name])
		}
	}
	check("x", starlark.MakeInt(30))
	check("n", starlark.MakeInt(2))
	check("result", starlark.String("4"))
	check("digits", starlark.String("1284"))
}

func TestInspectError(t *testing.T) {
	m := paper.New(nil)
	_, err := Inspect(context.Background(), m, "x = missing")
	if err == nil {
		t.Fatal("should fail")
	}
}

func TestInspectCanceled(t *testing.T) {
	m := paper.New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Inspect(ctx, m, `
while True:
    pass
`)
	if err == nil {
		t.Fatal("should fail")
	}
}

func TestGlobals(t *testing.T) {
	m := paper.New(programs.GCDMain(12, 8))
	for range 3 {
		if _, err := m.Step(); err != nil {
			t.Fatal(err)
		}
	}
	globals := Globals(m)
	if globals["depth"] != 1 {
		t.Fatalf("got %v", globals["depth"])
	}
	if globals["finished"] != false {
		t.Fatal()
	}
	if globals["ip"] != 0 {
		t.Fatalf("got %v", globals["ip"])
	}
}

func TestToStarlarkPaper(t *testing.T) {
	d, ok := ToStarlark(paper.W(1, 2, 3)).(*starlark.Dict)
	if !ok {
		t.Fatal()
	}
	v, found, err := d.Get(starlark.String("len"))
	if err != nil || !found {
		t.Fatalf("got %v %v", found, err)
	}
	if equal, _ := starlark.Equal(v, starlark.MakeInt(3)); !equal {
		t.Fatalf("got %v", v)
	}

	if got := ToStarlark(paper.Jump{Offset: 3}); got != starlark.String(paper.Jump{Offset: 3}.String()) {
		t.Fatalf("got %v", got)
	}
	if got := ToStarlark((*paper.Machine)(nil)); got != starlark.None {
		t.Fatalf("got %v", got)
	}
}

package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	if str := First[string](loader, "str"); str != "bar" {
		t.Fatalf("got %v", str)
	}
	if steps := First[int](loader, "steps"); steps != 42 {
		t.Fatalf("got %v", steps)
	}
	if list := First[[]int](loader, "list"); len(list) != 3 || list[2] != 3 {
		t.Fatalf("got %v", list)
	}
}

func TestFirstMissing(t *testing.T) {
	loader := NewLoader([]string{"testdata/test2.cue"}, testSchema)
	if steps := First[int](loader, "steps"); steps != 0 {
		t.Fatalf("got %v", steps)
	}
}

func TestFirstBadFile(t *testing.T) {
	loader := NewLoader([]string{"testdata/bad.cue"}, testSchema)
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	First[string](loader, "str")
}

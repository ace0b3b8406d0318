package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("run", Func(func(string, []float64) {}).
		Desc("run a program").
		Args("<program> [args...]"))
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))

	buf := new(bytes.Buffer)
	executor.WriteUsage(buf)
	usage := buf.String()
	for _, expected := range []string{
		"run <program> [args...]",
		"run a program",
		"-h (help, -help, --help)",
		"  bar",
		"    qux",
	} {
		if !strings.Contains(usage, expected) {
			t.Fatalf("%q not in %s", expected, usage)
		}
	}
	// aliases are not listed separately
	if strings.Count(usage, "print this usage") != 1 {
		t.Fatalf("got %s", usage)
	}
}

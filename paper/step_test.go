package paper

import (
	"errors"
	"math"
	"testing"
)

const fw = FieldWidth

func TestArithmetic(t *testing.T) {
	for _, c := range []struct {
		name string
		inst func(a, b Word) Instruction
		want float64
	}{
		{"add", func(a, b Word) Instruction { return Add{a, b} }, 17},
		{"sub", func(a, b Word) Instruction { return Sub{a, b} }, 3},
		{"mod", func(a, b Word) Instruction { return Mod{a, b} }, 3},
	} {
		t.Run(c.name, func(t *testing.T) {
			m := New([]Instruction{
				Write{Number(10)},
				Write{Number(7)},
				c.inst(W(-2*fw, 0, fw), W(-fw, 0, fw)),
				Circle{W(-fw, 0, fw)},
			})
			if err := m.Run(); err != nil {
				t.Fatal(err)
			}
			got, _, err := ResultAs[float64](m)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Fatalf("got %v", got)
			}
		})
	}
}

func TestArithmeticFractionalResult(t *testing.T) {
	for _, c := range []struct {
		a, b float64
		inst func(a, b Word) Instruction
		want float64
	}{
		{0.1, 0.2, func(a, b Word) Instruction { return Add{a, b} }, 0.3},
		{1, 3, func(a, b Word) Instruction { return Sub{a, b} }, -2},
		{0.5, 1.0 / 3, func(a, b Word) Instruction { return Add{a, b} }, 0.83333333},
		{7.5, 0.2, func(a, b Word) Instruction { return Mod{a, b} }, 0.1},
	} {
		m := New([]Instruction{
			Write{Number(c.a)},
			Write{Number(c.b)},
			c.inst(W(-2*fw, 0, fw), W(-fw, 0, fw)),
			Circle{W(-fw, 0, fw)},
		})
		if err := m.Run(); err != nil {
			t.Fatalf("%v %v: %v", c.a, c.b, err)
		}
		got, _, err := ResultAs[float64](m)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-c.want) > 1e-7 {
			t.Fatalf("%v %v: got %v", c.a, c.b, got)
		}
	}
}

func TestCopyAndTrimmedCopy(t *testing.T) {
	m := New([]Instruction{
		Write{Text("a b\tc")},
		Write{Text("\n")},
		Copy{W(0, -1, 5)},
		Write{Text("\n")},
		TrimmedCopy{W(0, -2, 5)},
		Circle{W(-3, 0, 3)},
	})
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	if got := string(m.Read(W(-3, -1, 5))); got != "a b\tc" {
		t.Fatalf("got %q", got)
	}
	s, _, _ := ResultAs[string](m)
	if s != "abc" {
		t.Fatalf("got %q", s)
	}
}

func TestJump(t *testing.T) {
	m := New([]Instruction{
		Jump{2},
		Stop{},
		Write{Text("ok")},
		Circle{W(-2, 0, 2)},
	})
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	s, _, _ := ResultAs[string](m)
	if s != "ok" {
		t.Fatalf("got %q", s)
	}
}

func TestJumpRelIfLoop(t *testing.T) {
	// count down from 3, writing each value on its own row
	m := New([]Instruction{
		Write{Number(3)},
		Write{Number(1)},
		Write{Text("\n")},
		Sub{W(0, -1, fw), W(fw, -1, fw)},
		JumpRelIf{W(-fw, 0, fw), Equal, 0, 4},
		Copy{W(0, -1, fw)},
		Write{Text("\n")},
		Jump{-4},
		Circle{W(-fw, 0, fw)},
	})
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	got, _, err := ResultAs[float64](m)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Fatalf("got %v", got)
	}
	if m.Cursor().Y != 3 {
		t.Fatalf("got %v", m.Cursor())
	}
}

func TestJumpRelIfEqualTolerance(t *testing.T) {
	m := New([]Instruction{
		Write{Number(0.3000001)},
		JumpRelIf{W(-fw, 0, fw), Equal, 0.3, 2},
		Stop{},
		Circle{W(-fw, 0, fw)},
	})
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}

	m = New([]Instruction{
		Write{Number(0.3001)},
		JumpRelIf{W(-fw, 0, fw), Equal, 0.3, 2},
		Stop{},
		Circle{W(-fw, 0, fw)},
	})
	if err := m.Run(); !errors.Is(err, ErrHalt) {
		t.Fatalf("got %v", err)
	}
}

func TestJumpRelCmp(t *testing.T) {
	for _, c := range []struct {
		a, b     float64
		ordering Ordering
		jumped   bool
	}{
		{1, 2, Less, true},
		{2, 1, Less, false},
		{2, 1, Greater, true},
		{2, 2, Equal, true},
		{2, 2, Greater, false},
	} {
		m := New([]Instruction{
			Write{Number(c.a)},
			Write{Number(c.b)},
			JumpRelCmp{W(-2*fw, 0, fw), W(-fw, 0, fw), c.ordering, 3},
			Write{Text("n")},
			Jump{2},
			Write{Text("y")},
			Circle{W(-1, 0, 1)},
		})
		if err := m.Run(); err != nil {
			t.Fatal(err)
		}
		s, _, _ := ResultAs[string](m)
		if (s == "y") != c.jumped {
			t.Fatalf("%v %v %v: got %q", c.a, c.ordering, c.b, s)
		}
	}
}

func TestJumpRelIfStrAndMoveCursor(t *testing.T) {
	// walk right until a blank cell is under the cursor
	m := New([]Instruction{
		Write{Text("xxx")},
		MoveCursor{-3, 0},
		JumpRelIfStr{W(0, 0, 1), " ", 3},
		MoveCursor{1, 0},
		Jump{-2},
		Write{Text("!")},
		Circle{W(-4, 0, 4)},
	})
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	s, _, _ := ResultAs[string](m)
	if s != "xxx!" {
		t.Fatalf("got %q", s)
	}
}

func TestStepFinishedOnlyAtCircle(t *testing.T) {
	m := New([]Instruction{
		Write{Text("a")},
		BreakPoint{},
		Circle{W(-1, 0, 1)},
	})

	state, err := m.Step()
	if err != nil || state.Status != Running || state.Breakpoint {
		t.Fatalf("got %+v %v", state, err)
	}
	if m.Finished() {
		t.Fatal()
	}

	state, err = m.Step()
	if err != nil || state.Status != Running || !state.Breakpoint {
		t.Fatalf("got %+v %v", state, err)
	}

	state, err = m.Step()
	if err != nil || state.Status != Finished {
		t.Fatalf("got %+v %v", state, err)
	}
	if !m.Finished() {
		t.Fatal()
	}

	if _, err := m.Step(); !errors.Is(err, ErrAlreadyFinished) {
		t.Fatalf("got %v", err)
	}
	if err := m.Run(); !errors.Is(err, ErrAlreadyFinished) {
		t.Fatalf("got %v", err)
	}
}

func TestStepState(t *testing.T) {
	m := New([]Instruction{
		Write{Text("ab")},
		Copy{W(-2, 0, 2)},
		Circle{W(-2, 0, 2)},
	})
	if _, err := m.Step(); err != nil {
		t.Fatal(err)
	}
	state, err := m.Step()
	if err != nil {
		t.Fatal(err)
	}
	if state.IP != 1 || state.Cursor != (Pos{X: 2}) || state.Depth != 0 {
		t.Fatalf("got %+v", state)
	}
	if _, ok := state.Instruction.(Copy); !ok {
		t.Fatalf("got %T", state.Instruction)
	}
	last, cursor := m.Last()
	if last.String() != "Copy (-2, 0, 2)" || cursor != (Pos{X: 2}) {
		t.Fatalf("got %v %v", last, cursor)
	}
	if _, ok := m.Current().(Circle); !ok {
		t.Fatal()
	}
}

func TestStop(t *testing.T) {
	m := New([]Instruction{
		Stop{},
	})
	_, err := m.Step()
	if !errors.Is(err, ErrHalt) {
		t.Fatalf("got %v", err)
	}
	if !IsFatal(err) {
		t.Fatal()
	}
	if m.IP() != 0 {
		t.Fatal("failed step must not advance")
	}
}

func TestOutOfBounds(t *testing.T) {
	for _, program := range [][]Instruction{
		nil,
		{Write{Text("a")}},
		{Jump{-1}},
	} {
		err := New(program).Run()
		var outOfBounds *OutOfBoundsError
		if !errors.As(err, &outOfBounds) {
			t.Fatalf("got %v", err)
		}
		if !IsFatal(err) {
			t.Fatal()
		}
	}
}

func TestConversionErrorIsRecoverable(t *testing.T) {
	m := New([]Instruction{
		Write{Text("abc")},
		Add{W(-3, 0, 3), W(-3, 0, 3)},
		Circle{W(-3, 0, 3)},
	})
	if _, err := m.Step(); err != nil {
		t.Fatal(err)
	}
	_, err := m.Step()
	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("got %v", err)
	}
	if IsFatal(err) {
		t.Fatal()
	}
	if m.IP() != 1 || m.Cursor() != (Pos{X: 3}) {
		t.Fatal("failed step must not mutate")
	}
}

func TestSumOverflowIsConversionError(t *testing.T) {
	m := New([]Instruction{
		Write{Number(9999999999)},
		Add{W(-fw, 0, fw), W(-fw, 0, fw)},
		Circle{W(-fw, 0, fw)},
	})
	err := m.Run()
	if !errors.Is(err, ErrFieldOverflow) {
		t.Fatalf("got %v", err)
	}
}

func TestUnknownInstruction(t *testing.T) {
	m := New([]Instruction{nil})
	if _, err := m.Step(); err == nil {
		t.Fatal("should fail")
	}
}

func TestOperands(t *testing.T) {
	a, b := W(1, 2, 3), W(4, 5, 6)
	if got := Operands(Add{a, b}); len(got) != 2 || got[1] != b {
		t.Fatalf("got %v", got)
	}
	if got := Operands(Call{Args: []Word{a}}); len(got) != 1 {
		t.Fatalf("got %v", got)
	}
	if got := Operands(Jump{1}); got != nil {
		t.Fatalf("got %v", got)
	}
	if !a.Contains(Pos{X: 3, Y: 2}) || a.Contains(Pos{X: 4, Y: 2}) {
		t.Fatal()
	}
}

func TestInstructionString(t *testing.T) {
	for _, c := range []struct {
		inst Instruction
		want string
	}{
		{Write{Text("\n  b")}, "Write `  b'"},
		{Call{Program: make([]Instruction, 3), Args: []Word{W(1, 0, 2), W(0, -1, 10)}}, "Call prog[3]([(1, 0, 2) (0, -1, 10)])"},
		{JumpRelIf{W(-10, 0, 10), Equal, 0, 3}, "JumpRelIf (-10, 0, 10) Equal 0 3"},
		{JumpRelIfStr{W(0, 0, 1), " ", 3}, `JumpRelIfStr (0, 0, 1) " " 3`},
		{MoveCursor{-1, 2}, "MoveCursor -1 2"},
		{Stop{}, "STOP"},
		{BreakPoint{}, "BreakPoint"},
	} {
		if got := c.inst.String(); got != c.want {
			t.Fatalf("got %q, want %q", got, c.want)
		}
	}
}

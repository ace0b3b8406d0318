package paper

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestWriteCursor(t *testing.T) {
	m := New(nil)
	if err := m.Write(Text("ab\ncd")); err != nil {
		t.Fatal(err)
	}
	for _, c := range []struct {
		x, y int64
		want rune
	}{
		{0, 0, 'a'},
		{1, 0, 'b'},
		{0, 1, 'c'},
		{1, 1, 'd'},
	} {
		if got := m.At(c.x, c.y); got != c.want {
			t.Fatalf("(%d, %d): got %q", c.x, c.y, got)
		}
	}
	if m.Cursor() != (Pos{X: 2, Y: 1}) {
		t.Fatalf("got %v", m.Cursor())
	}
}

func TestWriteBlankSkip(t *testing.T) {
	m := New(nil)
	if err := m.Write(Text(" x")); err != nil {
		t.Fatal(err)
	}
	if m.Memory().Has(Pos{}) {
		t.Fatal("blank must not populate")
	}
	if m.At(0, 0) != Blank {
		t.Fatal()
	}
	if m.At(1, 0) != 'x' {
		t.Fatal()
	}
	if m.Cursor() != (Pos{X: 2, Y: 0}) {
		t.Fatalf("got %v", m.Cursor())
	}
}

func TestReadRelativeToCursor(t *testing.T) {
	m := New(nil)
	if err := m.Write(Text("abcdef")); err != nil {
		t.Fatal(err)
	}
	word := W(-2, 0, 2)
	if got := string(m.Read(word)); got != "ef" {
		t.Fatalf("got %q", got)
	}
	if err := m.Write(Text("\n  ")); err != nil {
		t.Fatal(err)
	}
	// cursor is now (2, 1)
	if got := string(m.Read(W(-2, -1, 3))); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if got := string(m.Read(word)); got != "  " {
		t.Fatalf("got %q", got)
	}
	if got := word.Resolve(m.Cursor()); got != W(0, 1, 2) {
		t.Fatalf("got %v", got)
	}
}

func TestReadAs(t *testing.T) {
	m := New(nil)
	if err := m.Write(Number(12.5)); err != nil {
		t.Fatal(err)
	}
	f, err := ReadAs[float64](m, W(-FieldWidth, 0, FieldWidth))
	if err != nil {
		t.Fatal(err)
	}
	if f != 12.5 {
		t.Fatalf("got %v", f)
	}
	_, err = ReadAs[int64](m, W(-FieldWidth, 0, FieldWidth))
	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("got %v", err)
	}
}

func TestPrint(t *testing.T) {
	m := New(nil)
	if m.Print() != "" {
		t.Fatal()
	}
	if err := m.Write(Text(" a\nb  c")); err != nil {
		t.Fatal(err)
	}
	if got := m.Print(); got != " a  \nb  c\n" {
		t.Fatalf("got %q", got)
	}
	view := m.View(Pos{X: -1, Y: 0}, 3, 3)
	if len(view) != 3 || view[0] != "  a" || view[1] != " b " || view[2] != "   " {
		t.Fatalf("got %q", view)
	}
}

func TestResultBeforeFinish(t *testing.T) {
	m := New([]Instruction{
		Write{Text("x")},
		Circle{W(-1, 0, 1)},
	})
	if _, ok := m.Result(); ok {
		t.Fatal()
	}
	if _, ok, err := ResultAs[string](m); ok || err != nil {
		t.Fatal()
	}
	if _, ok := m.CircledAbsolute(); ok {
		t.Fatal()
	}
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	s, ok, err := ResultAs[string](m)
	if err != nil || !ok || s != "x" {
		t.Fatalf("got %q %v %v", s, ok, err)
	}
	word, ok := m.CircledAbsolute()
	if !ok || word != W(0, 0, 1) {
		t.Fatalf("got %v", word)
	}
}

func TestCells(t *testing.T) {
	m := New(nil)
	if err := m.Write(Text("b\na c")); err != nil {
		t.Fatal(err)
	}
	var got []string
	for pos, r := range m.Cells {
		got = append(got, fmt.Sprintf("%v%c", pos, r))
	}
	if s := strings.Join(got, " "); s != "(0, 0)b (0, 1)a (2, 1)c" {
		t.Fatalf("got %s", s)
	}
}

func TestWriteNilValue(t *testing.T) {
	m := New([]Instruction{
		Write{Text("ab")},
		Write{nil},
	})
	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	if m.Cursor() != (Pos{X: 2}) {
		t.Fatalf("got %v", m.Cursor())
	}
	if got := string(m.Read(W(-2, 0, 2))); got != "ab" {
		t.Fatalf("got %q", got)
	}
}

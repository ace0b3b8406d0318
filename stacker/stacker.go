// Package stacker compiles a line oriented program notation into paper
// instructions. Positions are counted in fields, not characters, and every
// line ends with a newline.
package stacker

import (
	"strings"

	"github.com/reusee/papier/paper"
)

const (
	cpf  = paper.FieldWidth
	cpfi = int64(paper.FieldWidth)
)

// Pos addresses a field relative to the cursor: X in fields, Y in rows.
type Pos struct {
	X, Y int64
}

func (p Pos) Word() paper.Word {
	return paper.W(p.X*cpfi, p.Y, cpf)
}

type Line []Instr

type Instr interface {
	compile() paper.Instruction
}

// Text writes a left aligned label padded to a field.
type Text string

// Write writes a number.
type Write float64

type Copy struct {
	Pos Pos
}

type Add struct {
	A, B Pos
}

type Sub struct {
	A, B Pos
}

type Mod struct {
	A, B Pos
}

type Jump struct {
	Offset int
}

type JumpRelIf struct {
	Pos      Pos
	Ordering paper.Ordering
	Value    float64
	Offset   int
}

// JumpEmpty jumps when the field at Pos is blank.
type JumpEmpty struct {
	Pos    Pos
	Offset int
}

type JumpRelCmp struct {
	A, B     Pos
	Ordering paper.Ordering
	Offset   int
}

// Ret circles the field at Pos.
type Ret struct {
	Pos Pos
}

type Break struct{}

// Call runs Substack on its own sheet with the fields at Inputs as arguments.
type Call struct {
	Substack []Line
	Inputs   []Pos
}

func box(s string) string {
	runes := []rune(s)
	if len(runes) > cpf {
		runes = runes[:cpf]
	}
	return string(runes) + strings.Repeat(" ", cpf-len(runes))
}

func (t Text) compile() paper.Instruction {
	return paper.Write{Value: paper.Text(box(string(t)))}
}

func (w Write) compile() paper.Instruction {
	return paper.Write{Value: paper.Number(w)}
}

func (c Copy) compile() paper.Instruction {
	return paper.Copy{Src: c.Pos.Word()}
}

func (a Add) compile() paper.Instruction {
	return paper.Add{A: a.A.Word(), B: a.B.Word()}
}

func (s Sub) compile() paper.Instruction {
	return paper.Sub{A: s.A.Word(), B: s.B.Word()}
}

func (m Mod) compile() paper.Instruction {
	return paper.Mod{A: m.A.Word(), B: m.B.Word()}
}

func (j Jump) compile() paper.Instruction {
	return paper.Jump{Offset: j.Offset}
}

func (j JumpRelIf) compile() paper.Instruction {
	return paper.JumpRelIf{
		Word:     j.Pos.Word(),
		Ordering: j.Ordering,
		Value:    j.Value,
		Offset:   j.Offset,
	}
}

func (j JumpEmpty) compile() paper.Instruction {
	return paper.JumpRelIfStr{
		Word:   j.Pos.Word(),
		Text:   box(""),
		Offset: j.Offset,
	}
}

func (j JumpRelCmp) compile() paper.Instruction {
	return paper.JumpRelCmp{
		A:        j.A.Word(),
		B:        j.B.Word(),
		Ordering: j.Ordering,
		Offset:   j.Offset,
	}
}

func (r Ret) compile() paper.Instruction {
	return paper.Circle{Word: r.Pos.Word()}
}

func (Break) compile() paper.Instruction {
	return paper.BreakPoint{}
}

func (c Call) compile() paper.Instruction {
	program := []paper.Instruction{
		paper.Write{Value: paper.Text("\n")},
	}
	program = append(program, Compile(c.Substack)...)
	args := make([]paper.Word, 0, len(c.Inputs))
	for _, input := range c.Inputs {
		args = append(args, input.Word())
	}
	return paper.Call{
		Program: program,
		Args:    args,
	}
}

// Compile flattens lines into a program. Jump offsets count the newline
// written at the end of every line.
func Compile(lines []Line) []paper.Instruction {
	var ret []paper.Instruction
	for _, line := range lines {
		for _, instr := range line {
			ret = append(ret, instr.compile())
		}
		ret = append(ret, paper.Write{Value: paper.Text("\n")})
	}
	return ret
}

// Inputs is a line writing values side by side.
func Inputs(values ...float64) Line {
	line := make(Line, 0, len(values))
	for _, v := range values {
		line = append(line, Write(v))
	}
	return line
}

package paper

import (
	"fmt"
	"strings"
)

// Instruction is one of the operations listed in this file. The set is closed.
type Instruction interface {
	fmt.Stringer
	instruction()
}

// Write puts the characters of Value at the cursor.
type Write struct {
	Value Value
}

// Copy writes the raw characters of Src at the cursor.
type Copy struct {
	Src Word
}

// TrimmedCopy is Copy with every whitespace character removed.
type TrimmedCopy struct {
	Src Word
}

type Add struct {
	A, B Word
}

type Sub struct {
	A, B Word
}

type Mod struct {
	A, B Word
}

type Jump struct {
	Offset int
}

// JumpRelIf jumps when the number read from Word relates to Value by Ordering.
type JumpRelIf struct {
	Word     Word
	Ordering Ordering
	Value    float64
	Offset   int
}

// JumpRelCmp jumps when the number read from A relates to the one read from B by Ordering.
type JumpRelCmp struct {
	A, B     Word
	Ordering Ordering
	Offset   int
}

// JumpRelIfStr jumps when the raw characters of Word equal Text.
type JumpRelIfStr struct {
	Word   Word
	Text   string
	Offset int
}

type MoveCursor struct {
	DX, DY int64
}

// Call runs Program on a fresh sheet, with Args copied onto its first row.
type Call struct {
	Program []Instruction
	Args    []Word
}

// Circle marks the result and finishes the machine.
type Circle struct {
	Word Word
}

type BreakPoint struct{}

type Stop struct{}

func (Write) instruction()        {}
func (Copy) instruction()         {}
func (TrimmedCopy) instruction()  {}
func (Add) instruction()          {}
func (Sub) instruction()          {}
func (Mod) instruction()          {}
func (Jump) instruction()         {}
func (JumpRelIf) instruction()    {}
func (JumpRelCmp) instruction()   {}
func (JumpRelIfStr) instruction() {}
func (MoveCursor) instruction()   {}
func (Call) instruction()         {}
func (Circle) instruction()       {}
func (BreakPoint) instruction()   {}
func (Stop) instruction()         {}

func (i Write) String() string {
	var text string
	if i.Value != nil {
		text = strings.ReplaceAll(i.Value.String(), "\n", "")
	}
	return fmt.Sprintf("Write `%s'", text)
}

func (i Copy) String() string {
	return fmt.Sprintf("Copy %v", i.Src)
}

func (i TrimmedCopy) String() string {
	return fmt.Sprintf("TrimmedCopy %v", i.Src)
}

func (i Add) String() string {
	return fmt.Sprintf("Add %v %v", i.A, i.B)
}

func (i Sub) String() string {
	return fmt.Sprintf("Sub %v %v", i.A, i.B)
}

func (i Mod) String() string {
	return fmt.Sprintf("Mod %v %v", i.A, i.B)
}

func (i Jump) String() string {
	return fmt.Sprintf("Jump %d", i.Offset)
}

func (i JumpRelIf) String() string {
	return fmt.Sprintf("JumpRelIf %v %v %v %d", i.Word, i.Ordering, Number(i.Value), i.Offset)
}

func (i JumpRelCmp) String() string {
	return fmt.Sprintf("JumpRelCmp %v %v %v %d", i.A, i.B, i.Ordering, i.Offset)
}

func (i JumpRelIfStr) String() string {
	return fmt.Sprintf("JumpRelIfStr %v %q %d", i.Word, i.Text, i.Offset)
}

func (i MoveCursor) String() string {
	return fmt.Sprintf("MoveCursor %d %d", i.DX, i.DY)
}

func (i Call) String() string {
	args := make([]string, 0, len(i.Args))
	for _, arg := range i.Args {
		args = append(args, arg.String())
	}
	return fmt.Sprintf("Call prog[%d]([%s])", len(i.Program), strings.Join(args, " "))
}

func (i Circle) String() string {
	return fmt.Sprintf("Circle %v", i.Word)
}

func (BreakPoint) String() string {
	return "BreakPoint"
}

func (Stop) String() string {
	return "STOP"
}

// Operands returns the words an instruction addresses, relative to the
// cursor it executes at.
func Operands(inst Instruction) []Word {
	switch inst := inst.(type) {
	case Copy:
		return []Word{inst.Src}
	case TrimmedCopy:
		return []Word{inst.Src}
	case Add:
		return []Word{inst.A, inst.B}
	case Sub:
		return []Word{inst.A, inst.B}
	case Mod:
		return []Word{inst.A, inst.B}
	case JumpRelIf:
		return []Word{inst.Word}
	case JumpRelCmp:
		return []Word{inst.A, inst.B}
	case JumpRelIfStr:
		return []Word{inst.Word}
	case Call:
		return inst.Args
	case Circle:
		return []Word{inst.Word}
	}
	return nil
}

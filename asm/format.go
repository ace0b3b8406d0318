package asm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reusee/papier/paper"
)

// Format renders a program in the form Parse reads.
func Format(program []paper.Instruction) string {
	buf := new(strings.Builder)
	format(buf, program, 0)
	return buf.String()
}

func format(buf *strings.Builder, program []paper.Instruction, depth int) {
	indent := strings.Repeat("\t", depth)
	for _, inst := range program {
		buf.WriteString(indent)
		switch inst := inst.(type) {

		case paper.Write:
			buf.WriteString("write ")
			switch v := inst.Value.(type) {
			case paper.Number:
				buf.WriteString(formatFloat(float64(v)))
			case paper.Int:
				buf.WriteString("int " + strconv.FormatInt(int64(v), 10))
			case nil:
				buf.WriteString(`""`)
			default:
				buf.WriteString(strconv.Quote(v.String()))
			}

		case paper.Copy:
			fmt.Fprintf(buf, "copy %v", inst.Src)

		case paper.TrimmedCopy:
			fmt.Fprintf(buf, "trim %v", inst.Src)

		case paper.Add:
			fmt.Fprintf(buf, "add %v %v", inst.A, inst.B)

		case paper.Sub:
			fmt.Fprintf(buf, "sub %v %v", inst.A, inst.B)

		case paper.Mod:
			fmt.Fprintf(buf, "mod %v %v", inst.A, inst.B)

		case paper.Jump:
			fmt.Fprintf(buf, "jump %d", inst.Offset)

		case paper.JumpRelIf:
			fmt.Fprintf(buf, "jumpif %v %s %s %d", inst.Word, ordering(inst.Ordering), formatFloat(inst.Value), inst.Offset)

		case paper.JumpRelCmp:
			fmt.Fprintf(buf, "jumpcmp %v %v %s %d", inst.A, inst.B, ordering(inst.Ordering), inst.Offset)

		case paper.JumpRelIfStr:
			fmt.Fprintf(buf, "jumpstr %v %s %d", inst.Word, strconv.Quote(inst.Text), inst.Offset)

		case paper.MoveCursor:
			fmt.Fprintf(buf, "move %d %d", inst.DX, inst.DY)

		case paper.Call:
			buf.WriteString("call [")
			for i, arg := range inst.Args {
				if i > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(arg.String())
			}
			buf.WriteString("] {\n")
			format(buf, inst.Program, depth+1)
			buf.WriteString(indent + "}")

		case paper.Circle:
			fmt.Fprintf(buf, "circle %v", inst.Word)

		case paper.BreakPoint:
			buf.WriteString("break")

		case paper.Stop:
			buf.WriteString("stop")

		default:
			fmt.Fprintf(buf, "# %T", inst)

		}
		buf.WriteString("\n")
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func ordering(o paper.Ordering) string {
	switch o {
	case paper.Less:
		return "lt"
	case paper.Greater:
		return "gt"
	}
	return "eq"
}

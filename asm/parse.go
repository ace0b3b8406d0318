// Package asm reads and writes paper programs in a line oriented text form.
//
//	write "\n         b"
//	copy (0, -2, 10)
//	jumpif (-10, 0, 10) eq 0 3
//	call [(10, -1, 10) (0, -1, 10)] {
//		sub (-20, 0, 10) (-10, 0, 10)
//		circle (-10, 0, 10)
//	}
//	circle (10, -1, 10)
package asm

import (
	"fmt"
	"os"

	"github.com/reusee/papier/paper"
)

// Parse reads a program. name is used in error positions.
func Parse(name string, src string) ([]paper.Instruction, error) {
	f, err := parser.ParseString(name, src)
	if err != nil {
		return nil, wrap(err)
	}
	ret, err := lower(f.Instructions)
	if err != nil {
		return nil, wrap(err)
	}
	return ret, nil
}

// ParseFile reads a program from a file.
func ParseFile(path string) ([]paper.Instruction, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(err)
	}
	return Parse(path, string(content))
}

func lower(insts []*instruction) ([]paper.Instruction, error) {
	ret := make([]paper.Instruction, 0, len(insts))
	for _, inst := range insts {
		lowered, err := inst.lower()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", inst.Pos, err)
		}
		ret = append(ret, lowered)
	}
	return ret, nil
}

func (w *word) word() paper.Word {
	return paper.W(w.X, w.Y, w.Len)
}

var orderings = map[string]paper.Ordering{
	"lt": paper.Less,
	"eq": paper.Equal,
	"gt": paper.Greater,
}

func (i *instruction) lower() (paper.Instruction, error) {
	switch {

	case i.Write != nil:
		switch {
		case i.Write.Text != nil:
			return paper.Write{Value: paper.Text(*i.Write.Text)}, nil
		case i.Write.Int != nil:
			return paper.Write{Value: paper.Int(*i.Write.Int)}, nil
		default:
			return paper.Write{Value: paper.Number(*i.Write.Number)}, nil
		}

	case i.Copy != nil:
		return paper.Copy{Src: i.Copy.word()}, nil

	case i.Trim != nil:
		return paper.TrimmedCopy{Src: i.Trim.word()}, nil

	case i.Add != nil:
		return paper.Add{A: i.Add.A.word(), B: i.Add.B.word()}, nil

	case i.Sub != nil:
		return paper.Sub{A: i.Sub.A.word(), B: i.Sub.B.word()}, nil

	case i.Mod != nil:
		return paper.Mod{A: i.Mod.A.word(), B: i.Mod.B.word()}, nil

	case i.Jump != nil:
		return paper.Jump{Offset: *i.Jump}, nil

	case i.JumpIf != nil:
		return paper.JumpRelIf{
			Word:     i.JumpIf.Word.word(),
			Ordering: orderings[i.JumpIf.Ordering],
			Value:    i.JumpIf.Value,
			Offset:   i.JumpIf.Offset,
		}, nil

	case i.JumpCmp != nil:
		return paper.JumpRelCmp{
			A:        i.JumpCmp.A.word(),
			B:        i.JumpCmp.B.word(),
			Ordering: orderings[i.JumpCmp.Ordering],
			Offset:   i.JumpCmp.Offset,
		}, nil

	case i.JumpStr != nil:
		return paper.JumpRelIfStr{
			Word:   i.JumpStr.Word.word(),
			Text:   i.JumpStr.Text,
			Offset: i.JumpStr.Offset,
		}, nil

	case i.Move != nil:
		return paper.MoveCursor{DX: i.Move.DX, DY: i.Move.DY}, nil

	case i.Call != nil:
		body, err := lower(i.Call.Body)
		if err != nil {
			return nil, err
		}
		args := make([]paper.Word, 0, len(i.Call.Args))
		for _, arg := range i.Call.Args {
			args = append(args, arg.word())
		}
		return paper.Call{Program: body, Args: args}, nil

	case i.Circle != nil:
		return paper.Circle{Word: i.Circle.word()}, nil

	case i.Break:
		return paper.BreakPoint{}, nil

	case i.Stop:
		return paper.Stop{}, nil

	}
	return nil, fmt.Errorf("empty instruction")
}

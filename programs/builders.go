package programs

import "github.com/reusee/papier/paper"

const (
	cpf  = paper.FieldWidth
	cpfi = int64(paper.FieldWidth)
)

func field(x, y int64) paper.Word {
	return paper.W(x, y, cpf)
}

func write(v paper.Value) paper.Instruction {
	return paper.Write{Value: v}
}

func text(s string) paper.Instruction {
	return paper.Write{Value: paper.Text(s)}
}

func num(f float64) paper.Instruction {
	return paper.Write{Value: paper.Number(f)}
}

func copyWord(w paper.Word) paper.Instruction {
	return paper.Copy{Src: w}
}

func jumpIf(w paper.Word, ordering paper.Ordering, value float64, offset int) paper.Instruction {
	return paper.JumpRelIf{
		Word:     w,
		Ordering: ordering,
		Value:    value,
		Offset:   offset,
	}
}

func jumpIfBlank(w paper.Word, offset int) paper.Instruction {
	return paper.JumpRelIfStr{
		Word:   w,
		Text:   " ",
		Offset: offset,
	}
}

func move(dx, dy int64) paper.Instruction {
	return paper.MoveCursor{DX: dx, DY: dy}
}

// CallStatic writes inputs side by side, calls program with one argument
// per input and circles the returnSize characters the call leaves behind.
func CallStatic(program []paper.Instruction, inputs []paper.Value, returnSize int) ([]paper.Instruction, error) {
	var main []paper.Instruction
	var offsets []int64
	var sizes []int
	var total int64
	for _, input := range inputs {
		chars, err := input.Chars()
		if err != nil {
			return nil, err
		}
		offsets = append(offsets, total)
		sizes = append(sizes, len(chars))
		total += int64(len(chars))
		main = append(main, write(input))
	}

	args := make([]paper.Word, 0, len(inputs))
	for i, offset := range offsets {
		args = append(args, paper.W(offset-total, 0, sizes[i]))
	}

	main = append(main,
		paper.Call{
			Program: program,
			Args:    args,
		},
		paper.Circle{Word: paper.W(-int64(returnSize), 0, returnSize)},
	)
	return main, nil
}

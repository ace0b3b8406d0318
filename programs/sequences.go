package programs

import "github.com/reusee/papier/paper"

// Fibonacci writes the sequence down the first column until a term no
// longer fits a field.
func Fibonacci() []paper.Instruction {
	return []paper.Instruction{
		num(1),
		move(-cpfi, 1),
		num(1),
		move(-cpfi, 1),
		paper.Add{
			A: field(0, -1),
			B: field(0, -2),
		},
		move(-cpfi, 1),
		paper.Jump{Offset: -2},
	}
}

// PascalsTriangle lays out one row of the triangle per pass, each row
// shifted half a field to the left of the one above. It stops at a
// BreakPoint after every row.
func PascalsTriangle() []paper.Instruction {
	half := cpfi / 2
	return []paper.Instruction{
		num(1),
		paper.BreakPoint{},
		// below the last entry of the row above
		move(-cpfi-half, 1),
		// walk left to the start of the new row
		jumpIfBlank(paper.W(half-1, -1, 1), 3),
		move(-cpfi, 0),
		paper.Jump{Offset: -2},
		num(1),
		// sum the two entries above until the row above runs out
		jumpIfBlank(paper.W(cpfi+half-1, -1, 1), 3),
		paper.Add{
			A: field(-half, -1),
			B: field(half, -1),
		},
		paper.Jump{Offset: -2},
		num(1),
		paper.Jump{Offset: -10},
	}
}

// Sort sorts the numbers on the row above the cursor with odd-even
// transposition: every row is one pass over the row above it. It stops at
// a BreakPoint after every pass; n passes sort n numbers.
func Sort() []paper.Instruction {
	var program []paper.Instruction
	program = append(program, text("\n"))
	program = append(program, comparePairs()...)
	program = append(program,
		paper.BreakPoint{},
		text("\n"),
		copyWord(field(0, -1)),
	)
	program = append(program, comparePairs()...)
	program = append(program, paper.BreakPoint{})
	program = append(program, paper.Jump{Offset: -len(program)})
	return program
}

// comparePairs copies the row above pair by pair, swapping pairs that are
// out of order.
func comparePairs() []paper.Instruction {
	return []paper.Instruction{
		// row above ends
		jumpIfBlank(paper.W(cpfi-1, -1, 1), 10),
		// odd element out
		jumpIfBlank(paper.W(2*cpfi-1, -1, 1), 8),
		paper.JumpRelCmp{
			A:        field(0, -1),
			B:        field(cpfi, -1),
			Ordering: paper.Greater,
			Offset:   4,
		},
		copyWord(field(0, -1)),
		copyWord(field(0, -1)),
		paper.Jump{Offset: -5},
		copyWord(field(cpfi, -1)),
		copyWord(field(-cpfi, -1)),
		paper.Jump{Offset: -8},
		copyWord(field(0, -1)),
	}
}

// SortMain writes values on the first row and sorts them.
func SortMain(values []float64) []paper.Instruction {
	var program []paper.Instruction
	for _, v := range values {
		program = append(program, num(v))
	}
	return append(program, Sort()...)
}

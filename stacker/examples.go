package stacker

import "github.com/reusee/papier/paper"

// GCD computes the greatest common divisor of the two numbers on the row
// two lines above by repeated subtraction.
func GCD() []Line {
	return []Line{
		{Text("a"), Text("b")},
		{
			Copy{Pos{0, -2}},
			Copy{Pos{0, -2}},
		},
		{
			JumpRelCmp{Pos{0, -1}, Pos{1, -1}, paper.Equal, 8},
			JumpRelCmp{Pos{0, -1}, Pos{1, -1}, paper.Less, 4},
			// a > b
			Sub{Pos{0, -1}, Pos{1, -1}},
			Copy{Pos{0, -1}},
			// back to the newline ending the line above
			Jump{-5},
			// a < b
			Copy{Pos{0, -1}},
			Sub{Pos{0, -1}, Pos{-1, -1}},
			Jump{-8},
			Break{},
			Ret{Pos{0, -1}},
		},
	}
}

func GCDMain(a, b float64) []Line {
	return append([]Line{Inputs(a, b)}, GCD()...)
}

// Sort sorts the numbers on the row above with odd-even transposition, one
// pass per line, stopping at a Break after every pass.
func Sort() []Line {
	even := transpose()
	odd := append(Line{
		Break{},
		Copy{Pos{0, -1}},
	}, transpose()...)
	return []Line{
		even,
		odd,
		{
			Break{},
			Jump{-(len(even) + 1 + len(odd) + 1 + 1)},
		},
	}
}

func transpose() Line {
	return Line{
		// end of row, to the newline
		JumpEmpty{Pos{0, -1}, 10},
		JumpEmpty{Pos{1, -1}, 8},
		JumpRelCmp{Pos{0, -1}, Pos{1, -1}, paper.Greater, 4},
		Copy{Pos{0, -1}},
		Copy{Pos{0, -1}},
		Jump{-5},
		// swap
		Copy{Pos{1, -1}},
		Copy{Pos{-1, -1}},
		Jump{-8},
		Copy{Pos{0, -1}},
	}
}

func SortMain(values ...float64) []Line {
	return append([]Line{Inputs(values...)}, Sort()...)
}

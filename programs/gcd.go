package programs

import "github.com/reusee/papier/paper"

// GCDMain computes gcd(a, b) by calling GCD.
func GCDMain(a, b float64) []paper.Instruction {
	return []paper.Instruction{
		num(a),
		num(b),
		paper.Call{
			Program: GCD(),
			Args: []paper.Word{
				field(-cpfi*2, 0),
				field(-cpfi, 0),
			},
		},
		paper.Circle{Word: field(-cpfi, 0)},
	}
}

// GCD runs Euclid's algorithm on a table with columns b, a and t, one row
// per iteration, using the Mod instruction.
func GCD() []paper.Instruction {
	return euclid(paper.Mod{
		A: field(cpfi, -1),
		B: field(0, -1),
	})
}

// GCDWithMod is GCD with every remainder computed on its own sheet by Modulo.
func GCDWithMod() []paper.Instruction {
	return euclid(paper.Call{
		Program: Modulo(),
		Args: []paper.Word{
			field(cpfi, -1),
			field(0, -1),
		},
	})
}

func euclid(remainder paper.Instruction) []paper.Instruction {
	return []paper.Instruction{
		text("\n         b"),
		text("         a"),
		text("         t\n"),
		copyWord(field(0, -2)),
		copyWord(field(0, -2)),
		// t := b
		copyWord(field(-2*cpfi, 0)),
		text("\n"),
		// b := a % b
		remainder,
		jumpIf(field(-cpfi, 0), paper.Equal, 0, 3),
		// a := t
		copyWord(field(cpfi, -1)),
		paper.Jump{Offset: -5},
		paper.BreakPoint{},
		paper.Circle{Word: field(cpfi, -1)},
	}
}

// Modulo computes a % b for the two numbers on the first row by repeated
// subtraction, one subtraction per row.
func Modulo() []paper.Instruction {
	return []paper.Instruction{
		text("\n"),
		paper.TrimmedCopy{Src: field(0, -1)},
		text(" % "),
		paper.TrimmedCopy{Src: field(cpfi-3, -1)},
		text("\n"),
		copyWord(field(0, -2)),
		text(" - "),
		copyWord(field(-3, -2)),
		text(" = "),
		paper.Sub{
			A: field(-(cpfi*2 + 6), 0),
			B: field(-(cpfi + 3), 0),
		},
		jumpIf(field(-cpfi, 0), paper.Less, 0, 9),
		text("\n"),
		copyWord(field(cpfi*2+6, -1)),
		text(" - "),
		copyWord(field(0, -1)),
		text(" = "),
		paper.Sub{
			A: field(-(cpfi*2 + 6), 0),
			B: field(-(cpfi + 3), 0),
		},
		jumpIf(field(-cpfi, 0), paper.Greater, 0, -6),
		paper.Circle{Word: field(-cpfi, -1)},
		text("\n"),
		paper.Circle{Word: field(0, -1)},
	}
}

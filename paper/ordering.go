package paper

import (
	"fmt"
	"math"
)

type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return fmt.Sprintf("Ordering(%d)", int8(o))
}

// compare returns false when a and b are unordered (NaN).
func compare(a, b float64) (Ordering, bool) {
	switch {
	case a < b:
		return Less, true
	case a > b:
		return Greater, true
	case a == b:
		return Equal, true
	}
	return 0, false
}

// Holds reports whether a relates to b by o. Equal also holds when the two
// differ by less than Epsilon.
func (o Ordering) Holds(a, b float64) bool {
	if got, ok := compare(a, b); ok && got == o {
		return true
	}
	return o == Equal && math.Abs(a-b) < Epsilon
}

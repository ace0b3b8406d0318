package paper

import (
	"github.com/google/btree"
)

const Blank = ' '

type cell struct {
	pos   Pos
	value rune
}

func lessCell(a, b cell) bool {
	if a.pos.Y != b.pos.Y {
		return a.pos.Y < b.pos.Y
	}
	return a.pos.X < b.pos.X
}

// Memory is a sparse sheet of cells. Absent cells read as Blank.
// Cells are kept ordered by row then column.
type Memory struct {
	cells *btree.BTreeG[cell]
}

func NewMemory() *Memory {
	return &Memory{
		cells: btree.NewG(16, lessCell),
	}
}

func (m *Memory) Get(p Pos) rune {
	c, ok := m.cells.Get(cell{pos: p})
	if !ok {
		return Blank
	}
	return c.value
}

func (m *Memory) Has(p Pos) bool {
	return m.cells.Has(cell{pos: p})
}

func (m *Memory) Set(p Pos, r rune) {
	m.cells.ReplaceOrInsert(cell{
		pos:   p,
		value: r,
	})
}

func (m *Memory) Len() int {
	return m.cells.Len()
}

// Each calls fn for every populated cell in row-major order until fn returns false.
func (m *Memory) Each(fn func(Pos, rune) bool) {
	m.cells.Ascend(func(c cell) bool {
		return fn(c.pos, c.value)
	})
}

// Bounds returns the smallest rectangle covering every populated cell.
func (m *Memory) Bounds() (lo Pos, hi Pos, ok bool) {
	first, ok := m.cells.Min()
	if !ok {
		return
	}
	last, _ := m.cells.Max()
	lo = Pos{X: first.pos.X, Y: first.pos.Y}
	hi = Pos{X: first.pos.X, Y: last.pos.Y}
	m.cells.Ascend(func(c cell) bool {
		if c.pos.X < lo.X {
			lo.X = c.pos.X
		}
		if c.pos.X > hi.X {
			hi.X = c.pos.X
		}
		return true
	})
	return lo, hi, true
}

// Snapshot copies every populated cell into a map.
func (m *Memory) Snapshot() map[Pos]rune {
	ret := make(map[Pos]rune, m.cells.Len())
	m.Each(func(p Pos, r rune) bool {
		ret[p] = r
		return true
	})
	return ret
}

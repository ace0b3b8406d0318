package paper

import "fmt"

type Pos struct {
	X int64
	Y int64
}

func (p Pos) Add(q Pos) Pos {
	return Pos{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Pos) right() Pos {
	return Pos{X: p.X + 1, Y: p.Y}
}

func (p Pos) nextLine() Pos {
	return Pos{X: 0, Y: p.Y + 1}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Word addresses Len consecutive cells of one row, starting at Offset from
// the cursor at the time of access.
type Word struct {
	Offset Pos
	Len    int
}

func W(x, y int64, length int) Word {
	return Word{
		Offset: Pos{X: x, Y: y},
		Len:    length,
	}
}

func (w Word) String() string {
	return fmt.Sprintf("(%d, %d, %d)", w.Offset.X, w.Offset.Y, w.Len)
}

// Resolve returns the absolute word for the given cursor.
func (w Word) Resolve(cursor Pos) Word {
	return Word{
		Offset: w.Offset.Add(cursor),
		Len:    w.Len,
	}
}

func (w Word) Contains(p Pos) bool {
	return p.Y == w.Offset.Y &&
		p.X >= w.Offset.X &&
		p.X < w.Offset.X+int64(w.Len)
}

package paper

import "strings"

// Print renders the bounding rectangle of all populated cells, one line per row.
func (m *Machine) Print() string {
	lo, hi, ok := m.memory.Bounds()
	if !ok {
		return ""
	}
	buf := new(strings.Builder)
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			buf.WriteRune(m.memory.Get(Pos{X: x, Y: y}))
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}

// View renders a fixed window of the sheet with origin at its top left corner.
func (m *Machine) View(origin Pos, width, height int) []string {
	lines := make([]string, 0, max(height, 0))
	for dy := range height {
		line := make([]rune, 0, max(width, 0))
		for dx := range width {
			line = append(line, m.memory.Get(origin.Add(Pos{X: int64(dx), Y: int64(dy)})))
		}
		lines = append(lines, string(line))
	}
	return lines
}

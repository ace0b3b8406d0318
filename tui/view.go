package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/reusee/papier/driver"
	"github.com/reusee/papier/paper"
	"github.com/xyproto/vt"
)

// Canvas is the part of *vt.Canvas the view draws on.
type Canvas interface {
	Size() (uint, uint)
	Clear()
	WriteRune(x, y uint, fg, bg vt.AttributeColor, r rune)
	WriteString(x, y uint, fg, bg vt.AttributeColor, s string)
	Draw()
}

var _ Canvas = (*vt.Canvas)(nil)

const (
	keyCtrlC = 3
	keyEsc   = 27
)

// View is a full screen stepping view of a running machine.
type View struct {
	Runner  *driver.Runner
	running bool
	message string
}

func NewView(runner *driver.Runner) *View {
	return &View{
		Runner: runner,
	}
}

func (v *View) Running() bool {
	return v.running
}

// HandleKey applies one key press. quit is set for q, Esc and Ctrl-C.
func (v *View) HandleKey(ctx context.Context, key rune) (quit bool) {
	switch key {
	case 'q', keyEsc, keyCtrlC:
		return true
	case 'n':
		v.running = false
		v.step(ctx)
	case ' ':
		if v.Runner.Machine.Finished() {
			v.message = "finished"
			return false
		}
		v.running = !v.running
	}
	return false
}

// Tick advances one step while free running.
func (v *View) Tick(ctx context.Context) {
	if !v.running {
		return
	}
	state, ok := v.step(ctx)
	if !ok || state.Breakpoint || v.Runner.Machine.Finished() {
		v.running = false
	}
}

func (v *View) step(ctx context.Context) (paper.StepState, bool) {
	if v.Runner.Machine.Finished() {
		v.message = "finished"
		return paper.StepState{}, false
	}
	state, err := v.Runner.Step(ctx)
	if err != nil {
		v.message = err.Error()
		return state, false
	}
	v.message = ""
	if state.Breakpoint {
		v.message = "breakpoint"
	}
	return state, true
}

// origin returns the top left cell shown, keeping the cursor inside a
// width by height window.
func origin(m *paper.Machine, width, height int64) paper.Pos {
	var ret paper.Pos
	if lo, _, ok := m.Memory().Bounds(); ok {
		ret = paper.Pos{X: min(lo.X, 0), Y: min(lo.Y, 0)}
	}
	cursor := m.Cursor()
	if cursor.X-ret.X >= width {
		ret.X = cursor.X - width + 1
	}
	if cursor.Y-ret.Y >= height {
		ret.Y = cursor.Y - height + 1
	}
	return ret
}

// addressed returns the absolute words the last instruction of m operated on.
func addressed(m *paper.Machine) []paper.Word {
	inst, cursor := m.Last()
	if inst == nil {
		return nil
	}
	var ret []paper.Word
	for _, w := range paper.Operands(inst) {
		ret = append(ret, w.Resolve(cursor))
	}
	return ret
}

func (v *View) title() string {
	m := v.Runner.Machine.Innermost()
	inst := m.Current()
	if inst == nil {
		if last, _ := m.Last(); last != nil {
			inst = last
		}
	}
	if inst == nil {
		return fmt.Sprintf("depth %d ip %d", m.Depth(), m.IP())
	}
	return fmt.Sprintf("depth %d ip %d: %v", m.Depth(), m.IP(), inst)
}

func (v *View) status() string {
	state := "paused"
	if v.running {
		state = "running"
	}
	if v.Runner.Machine.Finished() {
		result, _ := v.Runner.Machine.Result()
		state = "result " + strings.TrimSpace(string(result))
	}
	parts := []string{
		fmt.Sprintf("step %d", v.Runner.Steps()),
		state,
	}
	if v.message != "" {
		parts = append(parts, v.message)
	}
	parts = append(parts, "[n] step [space] run [q] quit")
	return strings.Join(parts, " | ")
}

func clip(s string, width uint) string {
	runes := []rune(s)
	if uint(len(runes)) > width {
		runes = runes[:width]
	}
	return string(runes)
}

// Draw renders the innermost paper with a title and a status line.
func (v *View) Draw(c Canvas) {
	c.Clear()
	w, h := c.Size()
	if w == 0 || h == 0 {
		c.Draw()
		return
	}
	c.WriteString(0, 0, vt.White, vt.DefaultBackground, clip(v.title(), w))

	if h > 2 {
		m := v.Runner.Machine.Innermost()
		rows := h - 2
		top := origin(m, int64(w), int64(rows))
		words := addressed(m)
		circled, done := m.CircledAbsolute()
		cursor := m.Cursor()
		for dy, line := range m.View(top, int(w), int(rows)) {
			for dx, r := range []rune(line) {
				pos := top.Add(paper.Pos{X: int64(dx), Y: int64(dy)})
				fg := vt.LightGray
				switch {
				case pos == cursor:
					fg = vt.LightRed
					if r == ' ' {
						r = '_'
					}
				case done && circled.Contains(pos):
					fg = vt.LightGreen
				case containsPos(words, pos):
					fg = vt.Yellow
				}
				c.WriteRune(uint(dx), uint(dy)+1, fg, vt.DefaultBackground, r)
			}
		}
	}

	if h > 1 {
		c.WriteString(0, h-1, vt.LightGray, vt.DefaultBackground, clip(v.status(), w))
	}
	c.Draw()
}

func containsPos(words []paper.Word, pos paper.Pos) bool {
	for _, w := range words {
		if w.Contains(pos) {
			return true
		}
	}
	return false
}

package paper

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

type Status uint8

const (
	Running Status = iota
	Finished
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// StepState describes the instruction a step processed.
// When a child machine is active, it describes the child's instruction.
type StepState struct {
	Status      Status
	Instruction Instruction
	Cursor      Pos
	IP          int
	Depth       int
	// Breakpoint is set when the instruction was a BreakPoint.
	Breakpoint bool
}

// Step executes one instruction.
// While a Call is in progress the instruction is executed by the child; once
// the child finishes, its result is copied to this machine's cursor and this
// machine continues with the instruction after the Call in the same step.
func (m *Machine) Step() (StepState, error) {
	if m.done {
		return StepState{}, ErrAlreadyFinished
	}

	if m.child != nil {
		state, err := m.child.Step()
		if err != nil {
			return state, &CallError{
				Depth: m.child.depth,
				IP:    m.ip - 1,
				Err:   err,
			}
		}
		if state.Status != Finished {
			return state, nil
		}
		m.merge()
	}

	return m.exec()
}

func (m *Machine) merge() {
	child := m.child
	m.child = nil
	m.write(child.Read(child.circled))
	if !m.options.DiscardFinished {
		m.finished = append(m.finished, child)
	}
}

func (m *Machine) exec() (StepState, error) {
	if m.ip < 0 || m.ip >= len(m.program) {
		return StepState{}, &OutOfBoundsError{
			IP:  m.ip,
			Len: len(m.program),
		}
	}

	inst := m.program[m.ip]
	state := StepState{
		Status:      Running,
		Instruction: inst,
		Cursor:      m.cursor,
		IP:          m.ip,
		Depth:       m.depth,
	}
	next := m.ip + 1

	switch inst := inst.(type) {

	case Write:
		if err := m.Write(inst.Value); err != nil {
			return state, err
		}

	case Copy:
		m.write(m.Read(inst.Src))

	case TrimmedCopy:
		chars := m.Read(inst.Src)
		chars = []rune(strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, string(chars)))
		m.write(chars)

	case Add:
		if err := m.arith(inst.A, inst.B, func(a, b float64) float64 {
			return a + b
		}); err != nil {
			return state, err
		}

	case Sub:
		if err := m.arith(inst.A, inst.B, func(a, b float64) float64 {
			return a - b
		}); err != nil {
			return state, err
		}

	case Mod:
		if err := m.arith(inst.A, inst.B, math.Mod); err != nil {
			return state, err
		}

	case Jump:
		next = m.ip + inst.Offset

	case JumpRelIf:
		a, err := m.readFloat(inst.Word)
		if err != nil {
			return state, err
		}
		if inst.Ordering.Holds(a, inst.Value) {
			next = m.ip + inst.Offset
		}

	case JumpRelCmp:
		a, err := m.readFloat(inst.A)
		if err != nil {
			return state, err
		}
		b, err := m.readFloat(inst.B)
		if err != nil {
			return state, err
		}
		if inst.Ordering.Holds(a, b) {
			next = m.ip + inst.Offset
		}

	case JumpRelIfStr:
		if string(m.Read(inst.Word)) == inst.Text {
			next = m.ip + inst.Offset
		}

	case MoveCursor:
		m.cursor = m.cursor.Add(Pos{X: inst.DX, Y: inst.DY})

	case Call:
		m.child = m.spawn(inst)

	case Circle:
		m.circled = inst.Word
		m.done = true
		m.last, m.lastCursor = inst, state.Cursor
		state.Status = Finished
		return state, nil

	case BreakPoint:
		state.Breakpoint = true

	case Stop:
		return state, ErrHalt

	default:
		return state, fmt.Errorf("unknown instruction %T at %d", inst, m.ip)
	}

	m.ip = next
	m.last, m.lastCursor = inst, state.Cursor
	return state, nil
}

func (m *Machine) arith(a, b Word, op func(float64, float64) float64) error {
	x, err := m.readFloat(a)
	if err != nil {
		return err
	}
	y, err := m.readFloat(b)
	if err != nil {
		return err
	}
	return m.Write(Number(op(x, y)))
}

func (m *Machine) spawn(call Call) *Machine {
	child := &Machine{
		memory:  NewMemory(),
		program: call.Program,
		depth:   m.depth + 1,
		options: m.options,
	}
	for _, arg := range call.Args {
		child.write(m.Read(arg))
	}
	return child
}

// Steps yields the state of every step until the machine finishes or a step fails.
func (m *Machine) Steps(yield func(StepState, error) bool) {
	for {
		state, err := m.Step()
		if !yield(state, err) {
			return
		}
		if err != nil || state.Status == Finished {
			return
		}
	}
}

// Run steps until the machine finishes.
func (m *Machine) Run() error {
	for _, err := range m.Steps {
		if err != nil {
			return err
		}
	}
	return nil
}

package paper

// Options are inherited by every child machine.
type Options struct {
	// DiscardFinished drops finished children instead of archiving them.
	// Archived children are what Papers and FinishedChildren report.
	DiscardFinished bool
}

type Machine struct {
	memory   *Memory
	cursor   Pos
	program  []Instruction
	ip       int
	circled  Word
	done     bool
	child    *Machine
	finished []*Machine
	depth    int
	options  Options

	last       Instruction
	lastCursor Pos
}

func New(program []Instruction) *Machine {
	return NewWithOptions(program, Options{})
}

func NewWithOptions(program []Instruction, options Options) *Machine {
	return &Machine{
		memory:  NewMemory(),
		program: program,
		options: options,
	}
}

func (m *Machine) Memory() *Memory {
	return m.memory
}

func (m *Machine) Cursor() Pos {
	return m.cursor
}

func (m *Machine) IP() int {
	return m.ip
}

func (m *Machine) Program() []Instruction {
	return m.program
}

// Depth is 0 for a top-level machine and grows by one per Call.
func (m *Machine) Depth() int {
	return m.depth
}

func (m *Machine) Finished() bool {
	return m.done
}

// Child returns the machine of the Call in progress, or nil.
func (m *Machine) Child() *Machine {
	return m.child
}

// Innermost returns the deepest machine currently executing.
func (m *Machine) Innermost() *Machine {
	ret := m
	for ret.child != nil {
		ret = ret.child
	}
	return ret
}

// FinishedChildren returns the archived children in the order they finished.
func (m *Machine) FinishedChildren() []*Machine {
	return m.finished
}

// Papers returns m followed by every archived child, depth first.
func (m *Machine) Papers() []*Machine {
	ret := []*Machine{m}
	for _, child := range m.finished {
		ret = append(ret, child.Papers()...)
	}
	return ret
}

// Last returns the most recently executed instruction and the cursor it
// executed at. The instruction is nil before the first step.
func (m *Machine) Last() (Instruction, Pos) {
	return m.last, m.lastCursor
}

// Current returns the instruction the next step of this machine will
// execute, or nil when the instruction pointer is out of bounds.
func (m *Machine) Current() Instruction {
	if m.ip < 0 || m.ip >= len(m.program) {
		return nil
	}
	return m.program[m.ip]
}

// Circled returns the result word as given to Circle, relative to the final cursor.
func (m *Machine) Circled() (Word, bool) {
	return m.circled, m.done
}

// CircledAbsolute returns the result word resolved against the final cursor.
func (m *Machine) CircledAbsolute() (Word, bool) {
	if !m.done {
		return Word{}, false
	}
	return m.circled.Resolve(m.cursor), true
}

// Cells yields populated cells row by row, left to right.
func (m *Machine) Cells(yield func(Pos, rune) bool) {
	m.memory.Each(yield)
}

// At reads the cell at an absolute position.
func (m *Machine) At(x, y int64) rune {
	return m.memory.Get(Pos{X: x, Y: y})
}

// Read returns the characters of w relative to the current cursor.
func (m *Machine) Read(w Word) []rune {
	ret := make([]rune, 0, max(w.Len, 0))
	pos := w.Offset.Add(m.cursor)
	for range w.Len {
		ret = append(ret, m.memory.Get(pos))
		pos = pos.right()
	}
	return ret
}

func ReadAs[T Scalar](m *Machine, w Word) (T, error) {
	return FromChars[T](m.Read(w))
}

func (m *Machine) readFloat(w Word) (float64, error) {
	return ParseFloat(m.Read(w))
}

// Write puts v on paper at the cursor. A nil value writes nothing.
func (m *Machine) Write(v Value) error {
	if v == nil {
		return nil
	}
	chars, err := v.Chars()
	if err != nil {
		return err
	}
	m.write(chars)
	return nil
}

func (m *Machine) write(chars []rune) {
	for _, c := range chars {
		switch c {
		case '\n':
			m.cursor = m.cursor.nextLine()
		case Blank:
			m.cursor = m.cursor.right()
		default:
			m.memory.Set(m.cursor, c)
			m.cursor = m.cursor.right()
		}
	}
}

// Result returns the circled characters once the machine finished.
func (m *Machine) Result() ([]rune, bool) {
	if !m.done {
		return nil, false
	}
	return m.Read(m.circled), true
}

func ResultAs[T Scalar](m *Machine) (ret T, ok bool, err error) {
	chars, ok := m.Result()
	if !ok {
		return
	}
	ret, err = FromChars[T](chars)
	return ret, true, err
}

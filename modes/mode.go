package modes

import "fmt"

// Mode selects behaviours that differ between a real run and a test run,
// like whether the terminal may be taken over.
type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Interactive reports whether the mode may read from and draw on the terminal.
func (m Mode) Interactive() bool {
	return m == ModeProduction
}

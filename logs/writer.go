package logs

import (
	"io"
	"os"
)

// Writer receives local log output. Tests override it with a buffer.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

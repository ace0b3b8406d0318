package debugs

import (
	"bytes"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/papier/logs"
	"github.com/reusee/papier/modes"
	"github.com/reusee/papier/paper"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(t),
	).Fork(
		func() logs.Writer {
			return new(bytes.Buffer)
		},
	).Call(func(
		tap Tap,
		tapMachine TapMachine,
	) {
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
		tapMachine(t.Context(), paper.New(nil))
	})
}

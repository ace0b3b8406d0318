package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Span identifies one run of a machine, or any other unit of work, in log records.
type Span string

type spanKey struct{}

var SpanKey spanKey

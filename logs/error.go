package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the span of ctx, if there is one, into err.
func WrapSpan(ctx context.Context, err error) error {
	span, ok := ctx.Value(SpanKey).(Span)
	if !ok || err == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}

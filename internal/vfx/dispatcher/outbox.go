package dispatcher

import (
	"context"

	"go.uber.org/zap"
)

// Outbox holds the collaborator calls made while transactions are applied. The caller
// hands it to Publish after the enclosing unit commits and drops it on rollback, so
// consumers never hear about rows that were not stored.
type Outbox struct {
	calls []deferredCall
}

type deferredCall struct {
	run    func(context.Context) error
	failed string
	fields []zap.Field
}

func (o *Outbox) add(failed string, run func(context.Context) error, fields ...zap.Field) {
	o.calls = append(o.calls, deferredCall{run: run, failed: failed, fields: fields})
}

// Len returns the number of queued calls.
func (o *Outbox) Len() int {
	if o == nil {
		return 0
	}
	return len(o.calls)
}

// Publish runs the queued calls in order and empties out. Failures are logged.
func (d *Dispatcher) Publish(ctx context.Context, out *Outbox) {
	if out == nil {
		return
	}
	for _, c := range out.calls {
		d.external(c.run(ctx), c.failed, c.fields...)
	}
	out.calls = nil
}

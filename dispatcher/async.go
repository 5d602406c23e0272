package dispatcher

import (
	"context"
	"errors"

	"github.com/openweb3-io/walletbridge/types"
)

// DispatchAsync runs Dispatch in the background. The channel receives exactly one result and is
// then closed.
func (d *Dispatcher) DispatchAsync(ctx context.Context, strategy Strategy, intent *types.TxIntent, sender string) <-chan types.DispatchResult {
	ch := make(chan types.DispatchResult, 1)
	go func() {
		defer close(ch)
		ch <- d.Dispatch(ctx, strategy, intent, sender)
	}()
	return ch
}

// DispatchWithCallback runs Dispatch in the background and calls cb exactly once.
// err is nil on success; result is nil on failure.
func (d *Dispatcher) DispatchWithCallback(ctx context.Context, strategy Strategy, intent *types.TxIntent, sender string, cb func(err error, result any)) {
	go func() {
		res := d.Dispatch(ctx, strategy, intent, sender)
		if msg, failed := res.Failure(); failed {
			cb(errors.New(msg), nil)
			return
		}
		cb(nil, res.Payload())
	}()
}

package chain

import (
	"context"
	"errors"

	"github.com/ib-77/urt/pkg/urt"
	"github.com/ib-77/urt/pkg/urt/erroroption"
)

// Chain wraps an ErrorOption with context to enable fluent chaining
type Chain[T any] struct {
	ctx   context.Context
	value erroroption.ErrorOption[T, error]
}

// Start creates a new chain from an ErrorOption
func Start[T any](ctx context.Context, value erroroption.ErrorOption[T, error]) *Chain[T] {
	return &Chain[T]{
		ctx:   ctx,
		value: value,
	}
}

// FromValue creates a new chain from a present value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, erroroption.Value[T, error](value))
}

// FromTry creates a new chain from a (value, error) pair
func FromTry[T any](ctx context.Context, value T, err error) *Chain[T] {
	return Start(ctx, erroroption.FromTuple(value, err))
}

// Result returns the underlying ErrorOption
func (c *Chain[T]) Result() erroroption.ErrorOption[T, error] {
	return c.value
}

// current is the chain content as seen by the next step.
func (c *Chain[T]) current() erroroption.ErrorOption[T, error] {
	if c.value.IsValue() && !urt.IsNil(c.ctx.Err()) {
		return erroroption.Error[T](c.ctx.Err())
	}
	return c.value
}

func (c *Chain[T]) with(value erroroption.ErrorOption[T, error]) *Chain[T] {
	return &Chain[T]{
		ctx:   c.ctx,
		value: value,
	}
}

// Then chains a function that returns ErrorOption[U, error]
func Then[T, U any](c *Chain[T], onValue func(context.Context, T) erroroption.ErrorOption[U, error]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		value: erroroption.AndThen(c.current(), func(v T) erroroption.ErrorOption[U, error] {
			return onValue(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnValue func(context.Context, T) (U, error)) *Chain[U] {
	return Then(c, func(ctx context.Context, v T) erroroption.ErrorOption[U, error] {
		out, err := tryOnValue(ctx, v)
		return erroroption.FromTuple(out, err)
	})
}

// ThenLookup chains a function that returns (*U, error); a nil pointer
// without error makes the chain Empty.
func ThenLookup[T, U any](c *Chain[T], lookup func(context.Context, T) (*U, error)) *Chain[U] {
	return Then(c, func(ctx context.Context, v T) erroroption.ErrorOption[U, error] {
		found, err := lookup(ctx, v)
		return erroroption.FromPtrTuple(found, err)
	})
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onValue func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		value: erroroption.Map(c.current(), func(v T) U {
			return onValue(c.ctx, v)
		}),
	}
}

// Validate turns a Value rejected by validate into Error(errors.New(errMsg))
func (c *Chain[T]) Validate(validate func(ctx context.Context, in T) (isValid bool, errMsg string)) *Chain[T] {
	return Then(c, func(ctx context.Context, v T) erroroption.ErrorOption[T, error] {
		if isValid, errMsg := validate(ctx, v); !isValid {
			return erroroption.Error[T](errors.New(errMsg))
		}
		return erroroption.Value[T, error](v)
	})
}

// ValidateAll runs the validators in order against the Value; the first
// failure becomes the chain's Error and the remaining validators are skipped.
func (c *Chain[T]) ValidateAll(validators ...func(ctx context.Context, in T) error) *Chain[T] {
	return Then(c, func(ctx context.Context, v T) erroroption.ErrorOption[T, error] {
		for _, validate := range validators {
			if !urt.IsNil(ctx.Err()) {
				return erroroption.Error[T](ctx.Err())
			}
			if err := validate(ctx, v); !urt.IsNil(err) {
				return erroroption.Error[T](err)
			}
		}
		return erroroption.Value[T, error](v)
	})
}

// Ensure performs a side effect on a Value without changing the chain
func (c *Chain[T]) Ensure(onValue func(context.Context, T)) *Chain[T] {
	return c.with(c.current().Inspect(func(v T) {
		onValue(c.ctx, v)
	}))
}

// EnsureError performs a side effect on an Error without changing the chain
func (c *Chain[T]) EnsureError(onError func(context.Context, error)) *Chain[T] {
	return c.with(c.value.InspectErr(func(err error) {
		onError(c.ctx, err)
	}))
}

// Or replaces both Empty and Error with the alternative. The error is dropped,
// except a cancellation, which stays for Finally to route to onCancel.
func (c *Chain[T]) Or(alt func(context.Context) erroroption.ErrorOption[T, error]) *Chain[T] {
	current := c.current()
	if current.IsErrorAnd(urt.IsCancellationError) {
		return c.with(current)
	}
	return c.with(current.OrElse(func() erroroption.ErrorOption[T, error] {
		return alt(c.ctx)
	}))
}

// IfEmpty replaces Empty with the alternative and keeps an Error.
func (c *Chain[T]) IfEmpty(alt func(context.Context) erroroption.ErrorOption[T, error]) *Chain[T] {
	if !c.value.IsEmpty() {
		return c.with(c.current())
	}
	return c.with(alt(c.ctx))
}

// Recover replaces an Error, except a cancellation, with the result of onError.
func (c *Chain[T]) Recover(onError func(context.Context, error) erroroption.ErrorOption[T, error]) *Chain[T] {
	current := c.current()
	if current.IsErrorAnd(func(err error) bool { return !urt.IsCancellationError(err) }) {
		return c.with(onError(c.ctx, current.UnwrapError()))
	}
	return c.with(current)
}

// Finally collapses the chain into a final value. A cancellation error is
// routed to onCancel instead of onError.
func Finally[T, U any](c *Chain[T],
	onValue func(context.Context, T) U,
	onEmpty func(context.Context) U,
	onError func(context.Context, error) U,
	onCancel func(context.Context, error) U) U {

	return erroroption.MapOrError(c.current(),
		func(err error) U {
			if urt.IsCancellationError(err) {
				return onCancel(c.ctx, err)
			}
			return onError(c.ctx, err)
		},
		func() U { return onEmpty(c.ctx) },
		func(v T) U { return onValue(c.ctx, v) },
	)
}

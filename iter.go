package first

import (
	"context"
	"iter"
)

// Seq adapts the given [Getter] into a sequence of values, for use with range.
//
// Values are yielded with a nil error until Get fails, at which point the
// error is yielded once, with the zero value, and the sequence ends. The error
// is passed through as-is, including those which indicate the end of the
// sequence. If ctx is already done, Get won't be called, and ctx.Err() will be
// yielded instead. Panics if either ctx or source are nil.
func Seq[T any](ctx context.Context, source Getter[T]) iter.Seq2[T, error] {
	if ctx == nil {
		panic("first.Seq requires non-nil ctx")
	}
	if source == nil {
		panic("first.Seq requires non-nil source")
	}
	return func(yield func(T, error) bool) {
		if err := ctx.Err(); err != nil {
			yield(*new(T), err)
			return
		}
		for {
			value, err := source.Get(ctx)
			if err != nil {
				yield(*new(T), err)
				return
			}
			if !yield(value, nil) {
				return
			}
		}
	}
}

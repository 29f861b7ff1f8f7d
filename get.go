/*
   Copyright 2026 Joseph Cumines

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package first

import (
	"context"
)

type chanGetter[T any] <-chan T

var (
	// compile time assertions

	_ Getter[any] = chanGetter[any](nil)
)

// Get returns the first value from source, blocking until it is available,
// the source ends, or ctx is done. Exactly one call to source.Get is made,
// unless ctx is already done, in which case none are made.
//
// Cancellation while blocked is propagated as the error returned by source,
// typically ctx.Err(), and never alongside a value. The end of the sequence is
// reported as an error matching [ErrExhausted]. Panics if either ctx or source
// are nil.
func Get[T any](ctx context.Context, source Getter[T]) (T, error) {
	if ctx == nil {
		panic("first.Get requires non-nil ctx")
	}
	if source == nil {
		panic("first.Get requires non-nil source")
	}
	return OfResults(Seq(ctx, source))
}

// Chan returns a [Getter] that receives from ch, where a closed channel
// indicates the end of the sequence. Panics if ch is nil.
func Chan[T any](ch <-chan T) Getter[T] {
	if ch == nil {
		panic("first.Chan requires non-nil ch")
	}
	return chanGetter[T](ch)
}

// Recv returns the first value received from ch, see also [Get] and [Chan].
func Recv[T any](ctx context.Context, ch <-chan T) (T, error) {
	return Get(ctx, Chan(ch))
}

func (x chanGetter[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-ctx.Done():
		return *new(T), ctx.Err()
	case value, ok := <-x:
		if !ok {
			return *new(T), ErrExhausted
		}
		return value, nil
	}
}

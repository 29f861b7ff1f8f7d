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

// Package first retrieves the first element of a sequence, without consuming
// or materializing the remainder.
//
// Immediate producers are modeled as [iter.Seq] and [iter.Seq2], and are
// handled by [Of], [Of2], [OfSlice] and [OfResults]. Producers that may need to
// block before each element is ready are modeled as [Getter], and are handled
// by [Get] and [Recv], which support cancellation via [context.Context].
//
// Every accessor requests at most one element, and either returns that element
// or an error, never both. If the producer ends before yielding an element, the
// error will match [ErrExhausted].
package first

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
)

type (
	// Getter models a producer that may block until each value is ready.
	//
	// Get must return the next value, or an error. The end of the sequence is
	// indicated by an error matching either [io.EOF] or [ErrExhausted].
	// Implementations that block should return ctx.Err() on context cancel.
	Getter[T any] interface {
		Get(ctx context.Context) (T, error)
	}

	// GetterFunc implements [Getter] using a function.
	GetterFunc[T any] func(ctx context.Context) (T, error)
)

var (
	// ErrExhausted indicates that the first element was requested from a
	// producer that had no elements.
	ErrExhausted = errors.New(`first: sequence exhausted`)

	// compile time assertions

	_ Getter[any] = GetterFunc[any](nil)
)

// Get implements [Getter].
func (x GetterFunc[T]) Get(ctx context.Context) (T, error) {
	return x(ctx)
}

// Of returns the first value yielded by seq, or [ErrExhausted] if seq yields
// nothing. Iteration stops after the first value, i.e. seq's yield will return
// false. Panics if seq is nil.
func Of[T any](seq iter.Seq[T]) (T, error) {
	if seq == nil {
		panic("first.Of requires non-nil seq")
	}
	for v := range seq {
		return v, nil
	}
	return *new(T), ErrExhausted
}

// Of2 is the [iter.Seq2] equivalent of [Of].
func Of2[K, V any](seq iter.Seq2[K, V]) (K, V, error) {
	if seq == nil {
		panic("first.Of2 requires non-nil seq")
	}
	for k, v := range seq {
		return k, v, nil
	}
	return *new(K), *new(V), ErrExhausted
}

// OfSlice returns s[0], or [ErrExhausted] if s is empty.
func OfSlice[T any](s []T) (T, error) {
	return Of(slices.Values(s))
}

// OfResults returns the first pair yielded by seq, where a non-nil error
// discards the value. Errors indicating the end of the sequence (see [Getter])
// are translated to match [ErrExhausted], and an empty seq also results in
// [ErrExhausted]. The value and error are otherwise passed through as-is.
// Panics if seq is nil.
func OfResults[T any](seq iter.Seq2[T, error]) (T, error) {
	if seq == nil {
		panic("first.OfResults requires non-nil seq")
	}
	for v, err := range seq {
		if err != nil {
			return *new(T), exhaustedError(err)
		}
		return v, nil
	}
	return *new(T), ErrExhausted
}

func exhaustedError(err error) error {
	switch {
	case err == io.EOF:
		return ErrExhausted
	case errors.Is(err, io.EOF) && !errors.Is(err, ErrExhausted):
		return fmt.Errorf("%w: %w", ErrExhausted, err)
	default:
		return err
	}
}

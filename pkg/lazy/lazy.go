// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package lazy provides deferred, memoized initialization of expensive values.
package lazy

import "sync"

// InitializerFn produces the value a Lazy wraps.
type InitializerFn[T comparable] func() (T, error)

// Lazy defers construction of a value until it is first requested, then
// caches the result for later requests.
type Lazy[T comparable] struct {
	initialized bool
	initializer InitializerFn[T]
	value       T
	error       error
	mutex       sync.Mutex
}

// NewLazy creates a Lazy that obtains its value from initializerFn.
func NewLazy[T comparable](initializerFn InitializerFn[T]) *Lazy[T] {
	return &Lazy[T]{
		initializer: initializerFn,
	}
}

// GetValue returns the wrapped value, running the initializer on first use.
// The initializer only runs once on success; after a failure the next call
// retries it.
func (l *Lazy[T]) GetValue() (T, error) {
	// Only one caller may initialize at a time. Additional callers block
	// until the current call completes.
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if !l.initialized {
		value, err := l.initializer()
		if err == nil {
			l.value = value
			l.error = nil
			l.initialized = true
		} else {
			l.error = err
			l.initialized = false
		}
	}

	return l.value, l.error
}

// SetValue replaces the wrapped value, bypassing the initializer.
func (l *Lazy[T]) SetValue(value T) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.value = value
	l.error = nil
	l.initialized = true
}

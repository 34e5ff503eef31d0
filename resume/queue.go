// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package resume

import (
	"sync"
)

// A Resumer runs a callback on some execution context. Implementations
// must run each submitted callback at most once, and must be safe for
// concurrent use by multiple goroutines.
type Resumer interface {
	Resume(f func())
}

// Inline is the degenerate Resumer: it runs each callback immediately,
// on the goroutine that submitted it. Callbacks resumed inline from
// concurrent requests may therefore run concurrently.
var Inline Resumer = inline{}

type inline struct{}

func (inline) Resume(f func()) {
	f()
}

// A Queue is a serialized execution context. Callbacks submitted via
// Resume are executed one at a time, in submission order, on the single
// goroutine that calls Run.
//
// A Queue must be created with NewQueue. It is safe for concurrent use
// by multiple submitting goroutines, but Run must be called from
// exactly one goroutine.
type Queue struct {
	fns       chan func()
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

const defaultQueueSize = 64

// NewQueue creates a queue with the specified buffer size. If size is
// not positive, a default is used.
//
// Resume blocks once the buffer is full, so size the buffer for the
// expected burst of concurrent completions.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Queue{
		fns:  make(chan func(), size),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Resume submits f for execution on the queue's running goroutine.
// Resume blocks while the queue's buffer is full. If the queue has
// been closed, or is closed while Resume is blocked, f is silently
// dropped.
func (q *Queue) Resume(f func()) {
	if f == nil {
		panic("reqx/resume: nil callback")
	}
	select {
	case q.fns <- f:
	case <-q.quit:
	}
}

// Run executes submitted callbacks on the calling goroutine until the
// queue is closed, then drains any buffered callbacks and returns.
//
// Run must be called exactly once.
func (q *Queue) Run() {
	defer close(q.done)
	for {
		select {
		case f := <-q.fns:
			f()
		case <-q.quit:
			for {
				select {
				case f := <-q.fns:
					f()
				default:
					return
				}
			}
		}
	}
}

// Close stops the queue and waits for Run to drain buffered callbacks
// and return. Callbacks submitted after Close are dropped. Close is
// idempotent and safe to call from any goroutine except the one
// running Run.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.quit)
	})
	<-q.done
}

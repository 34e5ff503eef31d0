// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqx

import (
	"context"
	"sync"

	"github.com/gogama/reqx/resume"
)

// A Future represents the pending outcome of one typed request: a
// decoded value of type R, or an error. It is settled exactly once;
// duplicate or late completions are ignored.
//
// Wait for the outcome synchronously with Wait, integrate with a
// select statement via Done, or deliver it to callbacks on a chosen
// execution context with On.
type Future[R any] struct {
	done   chan struct{}
	once   sync.Once
	result R
	err    error
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{
		done: make(chan struct{}),
	}
}

// complete settles the future. Closing the done channel publishes the
// result and err fields to all waiters.
func (f *Future[R]) complete(result R, err error) {
	f.once.Do(func() {
		f.result = result
		f.err = err
		close(f.done)
	})
}

// Done returns a channel that is closed once the future is settled.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future is settled or ctx is done, whichever
// comes first, and returns the outcome. If ctx ends the wait, Wait
// returns the zero value of R and ctx.Err(); the request itself keeps
// running to completion.
func (f *Future[R]) Wait(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// On delivers the outcome to exactly one of onSuccess or onError,
// resumed on r. A nil Resumer means resume.Inline. On returns
// immediately; it may be called before or after the future settles,
// and may be called at most once per future.
func (f *Future[R]) On(r resume.Resumer, onSuccess func(R), onError func(error)) {
	if r == nil {
		r = resume.Inline
	}
	go func() {
		<-f.done
		if f.err != nil {
			r.Resume(func() { onError(f.err) })
			return
		}
		r.Resume(func() { onSuccess(f.result) })
	}()
}

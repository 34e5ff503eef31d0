// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package resume determines where request completion callbacks run.

Request dispatch completes on whatever goroutine the underlying
transport finished on. A Resumer marshals the completion callback off
that goroutine and onto an execution context the caller controls, so
callers never need to make their completion logic goroutine-safe.

The core type is Queue, a serialized execution context. One goroutine,
typically the application's main or UI-driving goroutine, calls Run;
every callback resumed on the queue then executes on that goroutine,
one at a time, in submission order:

	q := resume.NewQueue(0)
	go startRequests(q)
	q.Run() // callbacks run here until q.Close()

For callers that have no event loop and no ordering needs, Inline runs
each callback immediately on the goroutine that completed the request.

Package resume is extremely lightweight, as it depends only on the
standard library package "sync", so it doesn't bring any significant
dependencies when imported as a standalone package.
*/
package resume

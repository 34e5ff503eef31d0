// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqx

import (
	"github.com/gogama/reqx/param"
	"github.com/gogama/reqx/request"
)

// Dispatcher is the interface that wraps the basic Dispatch method.
//
// Dispatch performs the network I/O for one request descriptor. It is
// asynchronous: it returns without waiting for the round trip, and
// signals completion later by calling exactly one of onSuccess (with
// the complete, non-empty response body) or onError. Exactly one
// terminal callback fires per Dispatch call. Errors detectable without
// I/O, an unresolvable path or unserializable parameters, are signaled
// synchronously, before Dispatch returns; transport errors and empty
// responses are signaled from whatever goroutine the transport
// completed on.
//
// Dispatch makes exactly one network round trip per call. It imposes
// no timeout of its own and performs no retries.
//
// HTTPDispatcher implements the Dispatcher interface, and any other
// Dispatcher implementation must behave substantially the same as
// HTTPDispatcher.Dispatch.
type Dispatcher interface {
	Dispatch(d request.Descriptor, onSuccess func(body []byte), onError func(err error))
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes connections which were opened by previous requests but are
// now sitting idle in a "keep-alive" state. It does not interrupt any
// connections currently in use.
//
// If the underlying implementation does not support this ability,
// CloseIdleConnections does nothing.
type IdleCloser interface {
	CloseIdleConnections()
}

// Get returns a typed request that issues a GET to the specified path
// and decodes the response into R.
//
// To set headers or substitute a dispatcher, modify the returned
// request before executing it.
func Get[R any](path string) *Request[R] {
	return New[R](request.NewDescriptor(request.GET, path))
}

// Post returns a typed request that issues a POST to the specified
// path, carrying params as a JSON body when non-nil, and decodes the
// response into R.
func Post[R any](path string, params param.Values) *Request[R] {
	return New[R](request.NewDescriptor(request.POST, path).WithParams(params))
}

// Delete returns a typed request that issues a DELETE to the specified
// path and decodes the response into R.
func Delete[R any](path string) *Request[R] {
	return New[R](request.NewDescriptor(request.DELETE, path))
}

// Patch returns a typed request that issues a PATCH to the specified
// path, carrying params as a JSON body when non-nil, and decodes the
// response into R.
func Patch[R any](path string, params param.Values) *Request[R] {
	return New[R](request.NewDescriptor(request.PATCH, path).WithParams(params))
}

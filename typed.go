// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqx

import (
	"bytes"
	"encoding/json"

	"github.com/gogama/reqx/request"
	"github.com/gogama/reqx/resume"
)

// A Request pairs a request descriptor with a result type R at compile
// time. Executing the request dispatches the descriptor and decodes
// the raw response body into R, so callers receive either a typed
// value or an error, never raw bytes.
//
// R may be any type encoding/json can decode into: a struct describing
// the expected payload shape, a map, a slice, or a type implementing
// json.Unmarshaler. Decoding is strict: payload members with no
// counterpart in R fail the request with a DecodeError rather than
// being silently dropped.
//
// The zero values of the Dispatcher and Resumer fields are valid; a
// Request built by New, Get, Post, Delete, or Patch dispatches via
// Default and resumes callbacks via resume.Inline. A Request holds no
// execution state, so distinct requests may execute concurrently
// without coordination; a single Request value should be executed at
// most once.
type Request[R any] struct {
	// Descriptor specifies the HTTP call to make.
	Descriptor request.Descriptor

	// Dispatcher specifies the mechanics of performing network I/O
	// for the descriptor.
	//
	// If Dispatcher is nil, the shared Default dispatcher is used.
	Dispatcher Dispatcher

	// Resumer specifies the execution context on which Execute
	// delivers its completion callbacks.
	//
	// If Resumer is nil, resume.Inline is used and callbacks run on
	// whatever goroutine the request completed on.
	Resumer resume.Resumer
}

// New returns a typed request wrapping the given descriptor, using the
// shared Default dispatcher and inline callback delivery.
func New[R any](d request.Descriptor) *Request[R] {
	return &Request[R]{Descriptor: d}
}

// Send dispatches the request and returns a Future settled with the
// decoded result or an error.
//
// Errors detectable without I/O settle the future before Send returns:
// an unresolvable path (ErrInvalidURL) or unserializable parameters
// settle it synchronously and the dispatcher is never invoked. All
// other outcomes settle it asynchronously: a transport error or empty
// body (ErrNoData) passes through from dispatch, an undecodable body
// yields a *DecodeError, and a decodable body yields the value. The
// future settles exactly once.
func (r *Request[R]) Send() *Future[R] {
	f := newFuture[R]()
	var zero R
	if _, err := parseURL(r.Descriptor.Path); err != nil {
		f.complete(zero, err)
		return f
	}
	if _, err := marshalParams(r.Descriptor.Params); err != nil {
		f.complete(zero, err)
		return f
	}
	r.dispatcher().Dispatch(r.Descriptor,
		func(body []byte) {
			if len(body) == 0 {
				f.complete(zero, ErrNoData)
				return
			}
			v, err := decode[R](body)
			if err != nil {
				f.complete(zero, &DecodeError{Err: err})
				return
			}
			f.complete(v, nil)
		},
		func(err error) {
			f.complete(zero, err)
		})
	return f
}

// Execute dispatches the request and delivers the outcome to exactly
// one of onSuccess or onError, resumed on the request's Resumer. It is
// equivalent to r.Send().On(r.Resumer, onSuccess, onError).
func (r *Request[R]) Execute(onSuccess func(R), onError func(error)) {
	r.Send().On(r.Resumer, onSuccess, onError)
}

func (r *Request[R]) dispatcher() Dispatcher {
	if r.Dispatcher == nil {
		return Default
	}

	return r.Dispatcher
}

func decode[R any](body []byte) (R, error) {
	var v R
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	err := dec.Decode(&v)
	return v, err
}

// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"

	"github.com/gogama/reqx/param"
)

// A Method is an HTTP method a descriptor may carry. The set is closed:
// this library issues no verbs other than GET, POST, DELETE, and PATCH.
// The zero value means GET.
type Method string

// The closed method set.
const (
	GET    Method = "GET"
	POST   Method = "POST"
	DELETE Method = "DELETE"
	PATCH  Method = "PATCH"
)

// String returns the method name, substituting GET for the zero value.
func (m Method) String() string {
	if m == "" {
		return string(GET)
	}
	return string(m)
}

// A Descriptor describes one outbound HTTP call: where to send it
// (Path), how (Method), what parameters to carry as the body (Params),
// and which headers to attach (Header).
//
// A Descriptor is a plain value with no behavior of its own; it does
// not validate its fields. Path is checked against URL syntax, and
// Params against JSON encodability, at dispatch time.
//
// Treat a Descriptor as immutable once constructed: build one with
// NewDescriptor, refine it with the With methods (which copy, never
// mutate), dispatch it, and discard it.
type Descriptor struct {
	// Method specifies the HTTP method. The zero value means GET.
	Method Method

	// Path specifies the URL to access. It is not validated here; it
	// must be resolvable to an absolute URL when the descriptor is
	// dispatched.
	Path string

	// Params optionally specifies the request parameters. A non-nil
	// map is serialized as a single JSON object and sent as the
	// request body, whatever the method. A nil map means no body.
	Params param.Values

	// Header optionally specifies request header fields. Headers are
	// copied verbatim onto the outgoing request; no defaults are
	// injected.
	Header http.Header
}

// NewDescriptor returns a descriptor for the given method and path,
// with no parameters and no headers.
func NewDescriptor(method Method, path string) Descriptor {
	return Descriptor{
		Method: method,
		Path:   path,
	}
}

// WithParams returns a copy of d carrying a copy of the given
// parameters. The receiver is left unchanged, and later mutation of
// the params argument does not affect the returned descriptor.
func (d Descriptor) WithParams(params param.Values) Descriptor {
	d.Params = params.Clone()
	return d
}

// WithHeader returns a copy of d carrying a copy of the given header
// fields. The receiver is left unchanged, and later mutation of the
// header argument does not affect the returned descriptor.
func (d Descriptor) WithHeader(header http.Header) Descriptor {
	if header == nil {
		d.Header = nil
		return d
	}
	h := make(http.Header, len(header))
	for k, v := range header {
		vv := make([]string, len(v))
		copy(vv, v)
		h[k] = vv
	}
	d.Header = h
	return d
}

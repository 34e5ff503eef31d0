// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	urlpkg "net/url"
	"strings"

	"github.com/gogama/reqx/param"
	"github.com/gogama/reqx/request"
)

var template, _ = http.NewRequest("GET", "", nil)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// An HTTPDispatcher dispatches request descriptors over HTTP. Its zero
// value is a valid configuration which uses http.DefaultClient (from
// net/http) as the HTTPDoer.
//
// HTTPDispatcher holds no per-call state, so a single instance is safe
// for unlimited concurrent use by multiple goroutines; instances
// should be reused rather than created per call, since the HTTPDoer
// typically caches TCP connections.
//
// An HTTPDispatcher is lower-level than a typed Request: it moves raw
// bytes and knows nothing about result types. The HTTPDoer, in turn,
// is responsible for all transport details (connections, TLS,
// redirects, proxies), so consult its documentation for that behavior.
// On top of the HTTPDoer, HTTPDispatcher adds the following:
//
// • it builds the outgoing http.Request from a descriptor, serializing
// parameters as a JSON body when present and copying headers verbatim;
//
// • it rejects unresolvable paths and unserializable parameters before
// any I/O happens; and
//
// • it reads and buffers the entire response body, treating any
// non-error response with a non-empty body as success, whatever the
// HTTP status code. Status code interpretation belongs to the caller.
type HTTPDispatcher struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard
	// net/http package is used.
	HTTPDoer HTTPDoer
}

// Default is the shared default dispatcher used by typed requests that
// do not name their own. It is an ordinary HTTPDispatcher value, so
// tests and callers can inject a substitute dispatcher without
// touching it.
var Default Dispatcher = &HTTPDispatcher{}

// Dispatch implements the Dispatcher interface. It makes exactly one
// HTTP round trip for the descriptor, invoking exactly one of
// onSuccess or onError when the outcome is known.
//
// An unresolvable path or unserializable parameter mapping causes
// onError to be called synchronously, before Dispatch returns and
// before any network activity. Transport errors, body read errors, and
// empty response bodies (ErrNoData) cause onError to be called
// asynchronously. Any transport completion with a non-empty body
// causes onSuccess to be called asynchronously with the fully buffered
// body, regardless of HTTP status code.
func (d *HTTPDispatcher) Dispatch(desc request.Descriptor, onSuccess func([]byte), onError func(error)) {
	req, err := buildRequest(desc)
	if err != nil {
		onError(err)
		return
	}
	doer := d.doer()
	go func() {
		resp, err := doer.Do(req)
		if err != nil {
			onError(err)
			return
		}
		body, err := readBody(resp)
		if err != nil {
			onError(err)
			return
		}
		if len(body) == 0 {
			onError(ErrNoData)
			return
		}
		onSuccess(body)
	}()
}

// CloseIdleConnections invokes the same method on the dispatcher's
// underlying HTTPDoer.
//
// If the HTTPDoer has no CloseIdleConnections method, this method does
// nothing.
func (d *HTTPDispatcher) CloseIdleConnections() {
	doer := d.doer()
	if ic, ok := doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (d *HTTPDispatcher) doer() HTTPDoer {
	if d.HTTPDoer == nil {
		return http.DefaultClient
	}

	return d.HTTPDoer
}

// buildRequest converts a descriptor into a lower-level http.Request,
// or fails with the error that dispatching the descriptor would fail
// with. It performs no I/O.
func buildRequest(desc request.Descriptor) (*http.Request, error) {
	u, err := parseURL(desc.Path)
	if err != nil {
		return nil, err
	}
	body, err := marshalParams(desc.Params)
	if err != nil {
		return nil, err
	}
	r := template.WithContext(context.Background())
	r.Method = desc.Method.String()
	r.URL = u
	r.Host = u.Host
	r.Header = make(http.Header, len(desc.Header))
	for k, v := range desc.Header {
		vv := make([]string, len(v))
		copy(vv, v)
		r.Header[k] = vv
	}
	if len(body) > 0 {
		r.Body = io.NopCloser(bytes.NewReader(body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		r.ContentLength = int64(len(body))
	}
	return r, nil
}

func parseURL(path string) (*urlpkg.URL, error) {
	u, err := urlpkg.Parse(path)
	if err != nil {
		return nil, invalidURL(path, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, invalidURL(path, nil)
	}
	u.Host = removeEmptyPort(u.Host)
	return u, nil
}

// marshalParams serializes a parameter mapping as a single JSON object
// body. A nil mapping means no body. Parameters are serialized as a
// body for every method, GET and DELETE included.
func marshalParams(params param.Values) ([]byte, error) {
	if params == nil {
		return nil, nil
	}
	return json.Marshal(params)
}

func readBody(resp *http.Response) ([]byte, error) {
	defer func() {
		_ = resp.Body.Close()
	}()
	return io.ReadAll(resp.Body)
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}

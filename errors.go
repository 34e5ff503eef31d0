// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqx

import (
	"errors"
	"fmt"
)

// ErrInvalidURL indicates a descriptor path that cannot be resolved to
// a network address. It is detected before any I/O is attempted.
// Errors reported for specific paths wrap ErrInvalidURL, so test for
// it with errors.Is.
var ErrInvalidURL = errors.New("reqx: invalid URL")

// ErrNoData indicates the transport completed without error but the
// response carried an empty body.
var ErrNoData = errors.New("reqx: no data in response")

// A DecodeError indicates a response body was received but could not
// be decoded into the declared result type, either because the payload
// is malformed or because its shape does not match. The underlying
// encoding/json error is available via Err and Unwrap.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "reqx: decode response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func invalidURL(path string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %s", ErrInvalidURL, cause)
	}
	return fmt.Errorf("%w: %q", ErrInvalidURL, path)
}

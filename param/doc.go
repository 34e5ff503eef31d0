// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package param contains the request parameter value types Value and
// Values.
//
// A Value is a closed set of JSON-encodable shapes: null, boolean,
// number, string, array, and object. Because the set is closed, the
// serialization logic is exhaustive and checkable at compile time, and
// a parameter map never needs runtime type inspection to be encoded.
//
// Build values with the constructor functions:
//
//	param.Values{
//		"name":  param.String("widget"),
//		"count": param.Int(3),
//		"tags":  param.Array(param.String("a"), param.String("b")),
//	}
//
// For interoperating with code that traffics in interface{} values,
// From converts a limited set of ordinary Go types to a Value.
//
// Package param is extremely lightweight, as it depends only on the
// standard library packages "encoding/json", "errors", and "fmt", so
// it doesn't bring any significant dependencies when imported as a
// standalone package.
package param

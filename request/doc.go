// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core type Descriptor, which describes one
outbound HTTP call. These descriptions are fundamental to making typed
HTTP requests.

A Descriptor is data only: a path, a method drawn from a closed set
(GET, POST, DELETE, PATCH), an optional parameter mapping, and optional
headers. It performs no validation and no I/O; a dispatcher gives it
meaning at execution time. For those familiar with the Go standard HTTP
library, net/http, a Descriptor looks like a radically stripped-down
http.Request: no connection fields, no streaming body, nothing
server-side.

Create a descriptor and refine it with the With methods, which copy
rather than mutate, so every descriptor you hold is immutable:

	d := request.NewDescriptor(request.POST, "https://example.com/orders").
		WithParams(param.Values{"sku": param.String("widget")}).
		WithHeader(http.Header{"X-Request-Id": {"abc123"}})

A descriptor is created per call and discarded after dispatch; nothing
in this package outlives a single request/response round trip.
*/
package request

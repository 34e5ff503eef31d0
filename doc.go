// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package reqx provides a typed HTTP request abstraction: describe a
request declaratively, execute it, and receive a strongly-typed decoded
result or a structured error, without touching transport details.

Create a typed request to begin:

	type balance struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	}
	req := reqx.Get[balance]("https://api.example.com/balance")
	req.Execute(
		func(b balance) { fmt.Println(b.Amount, b.Currency) },
		func(err error) { fmt.Println("request failed:", err) },
	)

Parameters travel as a single JSON object body, whatever the method:

	req := reqx.Post[receipt]("https://api.example.com/orders", param.Values{
		"sku":   param.String("widget"),
		"count": param.Int(3),
	})

For control over how requests are sent, substitute the Dispatcher. The
default dispatches over net/http via http.DefaultClient; use a custom
HTTPDoer for transport-level policy, or a stub Dispatcher in tests:

	doer := &http.Client{
		..., // See package "net/http" for detailed documentation
	}
	req.Dispatcher = &reqx.HTTPDispatcher{HTTPDoer: doer}

For control over where completion callbacks run, set a Resumer from
package resume. A resume.Queue delivers every callback on the single
goroutine running the queue, so application logic never needs to be
goroutine-safe:

	q := resume.NewQueue(0)
	req.Resumer = q
	req.Execute(onSuccess, onError)
	q.Run()

Execution makes exactly one network round trip, imposes no timeout,
performs no retries, and attaches no meaning to HTTP status codes: any
transport completion with a non-empty body is a success, and status
handling belongs to the caller's result shape. Errors are classified as
ErrInvalidURL and unserializable parameters (both reported before any
I/O), transport errors (passed through unmodified), ErrNoData, and
DecodeError.
*/
package reqx

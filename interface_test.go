// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqx

import (
	"testing"

	"github.com/gogama/reqx/param"
	"github.com/gogama/reqx/request"

	"github.com/stretchr/testify/assert"
)

func TestConvenienceConstructors(t *testing.T) {
	params := param.Values{"sku": param.String("widget")}

	testCases := []struct {
		name       string
		req        *Request[valueResult]
		wantMethod request.Method
		wantParams param.Values
	}{
		{"Get", Get[valueResult]("https://example.com/x"), request.GET, nil},
		{"Post", Post[valueResult]("https://example.com/x", params), request.POST, params},
		{"Delete", Delete[valueResult]("https://example.com/x"), request.DELETE, nil},
		{"Patch", Patch[valueResult]("https://example.com/x", params), request.PATCH, params},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			d := testCase.req.Descriptor

			assert.Equal(t, testCase.wantMethod, d.Method)
			assert.Equal(t, "https://example.com/x", d.Path)
			assert.Equal(t, testCase.wantParams, d.Params)
			assert.Nil(t, d.Header)
			assert.Nil(t, testCase.req.Dispatcher, "constructors leave the dispatcher defaulted")
			assert.Nil(t, testCase.req.Resumer, "constructors leave the resumer defaulted")
		})
	}
}

func TestConstructorCopiesParams(t *testing.T) {
	params := param.Values{"a": param.Int(1)}

	req := Post[valueResult]("https://example.com/x", params)
	params["b"] = param.Int(2)

	assert.Equal(t, param.Values{"a": param.Int(1)}, req.Descriptor.Params)
}

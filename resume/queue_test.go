// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package resume

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInline(t *testing.T) {
	ran := false

	Inline.Resume(func() { ran = true })

	assert.True(t, ran, "inline resumer must run the callback before returning")
}

func TestQueue(t *testing.T) {
	t.Run("delivers in order", testQueueOrder)
	t.Run("serializes concurrent submissions", testQueueSerializes)
	t.Run("runs callbacks on the running goroutine", testQueueGoroutine)
	t.Run("close drains buffered callbacks", testQueueCloseDrains)
	t.Run("close drops late submissions", testQueueCloseDrops)
	t.Run("nil callback", testQueueNilCallback)
}

func testQueueOrder(t *testing.T) {
	t.Parallel()
	q := NewQueue(16)
	go q.Run()
	var got []int

	for i := 0; i < 10; i++ {
		i := i
		q.Resume(func() { got = append(got, i) })
	}
	q.Close()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func testQueueSerializes(t *testing.T) {
	t.Parallel()
	q := NewQueue(0)
	go q.Run()

	// The counter is deliberately unsynchronized: only the queue's
	// serialization makes the increments safe.
	n := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Resume(func() { n++ })
		}()
	}
	wg.Wait()
	q.Close()

	assert.Equal(t, 100, n)
}

func testQueueGoroutine(t *testing.T) {
	t.Parallel()
	q := NewQueue(1)
	onQueue := false

	go func() {
		q.Resume(func() { onQueue = true })
		q.Close()
	}()
	q.Run()

	assert.True(t, onQueue)
}

func testQueueCloseDrains(t *testing.T) {
	t.Parallel()
	q := NewQueue(8)
	n := 0
	for i := 0; i < 5; i++ {
		q.Resume(func() { n++ })
	}

	go q.Run()
	q.Close()

	assert.Equal(t, 5, n)
}

func testQueueCloseDrops(t *testing.T) {
	t.Parallel()
	q := NewQueue(1)
	go q.Run()
	q.Close()

	assert.NotPanics(t, func() {
		q.Resume(func() { t.Error("callback ran after close") })
	})
}

func testQueueNilCallback(t *testing.T) {
	t.Parallel()
	q := NewQueue(1)
	go q.Run()
	defer q.Close()

	assert.Panics(t, func() { q.Resume(nil) })
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgsrc

import (
	"sync"
	"unsafe"
)

// Allocator provides the buffers that owned duplicates live in.
// It must be safe for concurrent use if descriptors are parsed or
// copied from multiple goroutines.
type Allocator interface {
	// Alloc returns a buffer of length n.
	Alloc(n int) []byte

	// Free releases a buffer previously returned by Alloc.
	Free(b []byte)
}

// HeapAllocator allocates from the Go heap; Free leaves the buffer
// to the garbage collector.
type HeapAllocator struct{}

// Alloc returns a new zeroed buffer of length n.
func (HeapAllocator) Alloc(n int) []byte { return make([]byte, n) }

// Free does nothing.
func (HeapAllocator) Free(b []byte) {}

// TrackingAllocator is a heap [Allocator] that records every buffer it
// hands out and every release, which is used to check that owned
// duplicates are released exactly once. It is safe for concurrent use.
type TrackingAllocator struct {
	mu       sync.Mutex
	live     map[*byte]int
	released map[*byte]int
	allocs   int
	frees    int
	invalid  int
}

// NewTrackingAllocator returns a new [TrackingAllocator].
func NewTrackingAllocator() *TrackingAllocator {
	return &TrackingAllocator{live: map[*byte]int{}, released: map[*byte]int{}}
}

// Alloc returns a buffer of length n. The buffer always has room for one
// more byte so that every buffer, even an empty one, has a unique address.
func (ta *TrackingAllocator) Alloc(n int) []byte {
	b := make([]byte, n, n+1)
	ta.mu.Lock()
	defer ta.mu.Unlock()
	ta.allocs++
	ta.live[key(b)] = n
	return b
}

// Free records the release of b, counting it as invalid if b is not live.
func (ta *TrackingAllocator) Free(b []byte) {
	k := key(b)
	ta.mu.Lock()
	defer ta.mu.Unlock()
	ta.frees++
	n, ok := ta.live[k]
	if !ok {
		ta.invalid++
		return
	}
	delete(ta.live, k)
	ta.released[k] = n
}

// Allocs returns the number of calls to Alloc.
func (ta *TrackingAllocator) Allocs() int {
	ta.mu.Lock()
	defer ta.mu.Unlock()
	return ta.allocs
}

// Frees returns the number of calls to Free, including invalid ones.
func (ta *TrackingAllocator) Frees() int {
	ta.mu.Lock()
	defer ta.mu.Unlock()
	return ta.frees
}

// Invalid returns the number of calls to Free for buffers that
// were not live (double free or foreign buffer).
func (ta *TrackingAllocator) Invalid() int {
	ta.mu.Lock()
	defer ta.mu.Unlock()
	return ta.invalid
}

// Live returns the number of buffers that have not been released.
func (ta *TrackingAllocator) Live() int {
	ta.mu.Lock()
	defer ta.mu.Unlock()
	return len(ta.live)
}

// IsLive returns whether the buffer starting at p is allocated and
// not yet released.
func (ta *TrackingAllocator) IsLive(p *byte) bool {
	ta.mu.Lock()
	defer ta.mu.Unlock()
	_, ok := ta.live[p]
	return ok
}

// IsReleased returns whether the buffer starting at p was allocated
// here and has been released.
func (ta *TrackingAllocator) IsReleased(p *byte) bool {
	ta.mu.Lock()
	defer ta.mu.Unlock()
	_, ok := ta.released[p]
	return ok
}

func key(b []byte) *byte {
	return unsafe.SliceData(b[:cap(b)])
}

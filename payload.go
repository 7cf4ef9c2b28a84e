// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgsrc

import (
	"log/slog"
	"unsafe"
)

// Payload is the content a [Source] refers to, which also records who owns
// it. It is one of:
//   - [BorrowedText]: File or Symbol text, or Variable data parsed from
//     a string, owned by the caller
//   - [BorrowedData]: Variable binary data owned by the caller
//   - [*RawImage]: an already decoded raw image owned by the caller
//   - [*Owned]: a private duplicate owned by the descriptor, which must be
//     released with [Source.Free]
type Payload interface {
	payload()
}

// BorrowedText is text whose lifetime belongs to the caller.
type BorrowedText string

// BorrowedData is binary data whose lifetime belongs to the caller.
type BorrowedData []byte

func (BorrowedText) payload() {}
func (BorrowedData) payload() {}
func (*RawImage) payload()    {}
func (*Owned) payload()       {}

// Owned is a private duplicate of File or Symbol text, obtained from an
// [Allocator] by the legacy parser or by [Copy].
//
// WARNING: strings returned by [Owned.String] (and thus [Source.Path],
// [Source.Ext] and [Source.Text] on an owned descriptor) share the owned
// buffer. They must not be used after the owning descriptor is freed.
// Releasing twice is prevented, but use after release is not.
type Owned struct {
	buf      []byte
	alloc    Allocator
	released bool
}

// newOwned duplicates s into a buffer obtained from alloc.
func newOwned(alloc Allocator, s string) *Owned {
	buf := alloc.Alloc(len(s))
	copy(buf, s)
	return &Owned{buf: buf, alloc: alloc}
}

// String returns the owned text without copying it.
func (o *Owned) String() string {
	if len(o.buf) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(o.buf), len(o.buf))
}

// Released returns whether the buffer has been returned to its allocator.
func (o *Owned) Released() bool {
	return o.released
}

// release returns the buffer to its allocator exactly once.
func (o *Owned) release() {
	if o.released {
		slog.Debug("imgsrc: owned payload already released")
		return
	}
	o.alloc.Free(o.buf)
	o.released = true
	o.buf = nil
}

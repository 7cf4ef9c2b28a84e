// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgsrc

// Kind is the discriminant of a [Source], selecting which kind of
// image source it holds.
type Kind uint8 //enums:enum

const (
	// Unknown is a source that has not been set or could not be recognized.
	Unknown Kind = iota

	// Variable is binary image data, typically compiled into the program.
	Variable

	// File is a path to an image in a filesystem.
	File

	// Symbol is text made of built-in icon glyphs.
	Symbol

	// LegacyObject means that the legacy value is itself a [Source]
	// descriptor rather than raw payload. It is only ever returned by
	// [Classify]; a parsed [Source] never has this type.
	//
	// Deprecated: pass a [Source] directly instead.
	LegacyObject
)

// Sentinel is the first byte of a descriptor block passed through the
// legacy convention, marking it as a [Source] and not raw payload.
const Sentinel byte = 0xFF

// IsText returns whether the kind carries string payload (File or Symbol),
// which the legacy parser duplicates into an owned buffer.
func (k Kind) IsText() bool {
	return k == File || k == Symbol
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgsrc

import (
	"fmt"
	"log/slog"
	"strings"
)

// Source is an image source descriptor. The zero value is an [Unknown]
// source. Sources built through the setters borrow their payload, which
// must outlive the Source. Sources built by [Parse] or [Copy] may own a
// duplicate of their text, and must be released with [Source.Free].
type Source struct {
	// Type is the kind of source.
	Type Kind

	data Payload

	// length of the payload in bytes, for Variable and Symbol.
	length int

	// ext is the byte offset of the extension within a File path,
	// or -1 if it has none.
	ext int
}

// SetSymbol sets the source to the given glyph text, which is borrowed.
// An empty text results in an [Unknown] source.
func (s *Source) SetSymbol(text string) *Source {
	s.warnOwned()
	if text == "" {
		*s = Source{}
		return s
	}
	*s = Source{Type: Symbol, data: BorrowedText(text), length: len(text)}
	return s
}

// SetData sets the source to the given binary image data, which is
// borrowed. The length is that of data, and is not checked against the
// actual structure of the image. A nil data results in an [Unknown] source.
func (s *Source) SetData(data []byte) *Source {
	s.warnOwned()
	if data == nil {
		*s = Source{}
		return s
	}
	*s = Source{Type: Variable, data: BorrowedData(data), length: len(data)}
	return s
}

// SetFile sets the source to the given file path, which is borrowed.
// The extension is the part of the path after the last '.'.
// An empty path results in an [Unknown] source.
func (s *Source) SetFile(path string) *Source {
	s.warnOwned()
	if path == "" {
		*s = Source{}
		return s
	}
	*s = Source{Type: File, data: BorrowedText(path), ext: extIndex(path)}
	return s
}

// SetRaw sets the source to an already decoded raw image, which is
// borrowed and treated as [Variable] data. A nil raw image results in
// an [Unknown] source.
func (s *Source) SetRaw(raw *RawImage) *Source {
	s.warnOwned()
	if raw == nil {
		*s = Source{}
		return s
	}
	*s = Source{Type: Variable, data: raw, length: raw.Size()}
	return s
}

// warnOwned logs when a setter is about to overwrite an owned
// duplicate that has not been freed.
func (s *Source) warnOwned() {
	if o, ok := s.data.(*Owned); ok && !o.released {
		slog.Debug("imgsrc: overwriting source that owns an unreleased duplicate", "type", s.Type)
	}
}

// extIndex returns the index just past the last '.' in path,
// or -1 if there is none.
func extIndex(path string) int {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return -1
	}
	return i + 1
}

// Payload returns the payload of the source, which is nil for an
// [Unknown] source.
func (s *Source) Payload() Payload {
	return s.data
}

// IsOwned returns whether the source owns a duplicate of its payload
// that has not yet been released.
func (s *Source) IsOwned() bool {
	o, ok := s.data.(*Owned)
	return ok && !o.released
}

// Len returns the length of the payload in bytes, for [Variable] and
// [Symbol] sources. It is 0 for [Variable] sources built by [Parse].
func (s *Source) Len() int {
	return s.length
}

// text returns the string payload, borrowed or owned.
func (s *Source) text() string {
	switch d := s.data.(type) {
	case BorrowedText:
		return string(d)
	case *Owned:
		return d.String()
	}
	return ""
}

// Path returns the file path of a [File] source, and "" otherwise.
func (s *Source) Path() string {
	if s.Type != File {
		return ""
	}
	return s.text()
}

// Ext returns the extension of a [File] source (without the '.'),
// which is a substring of [Source.Path]. It is "" if the path has no
// extension or the source is not a file.
func (s *Source) Ext() string {
	if s.Type != File || s.ext < 0 {
		return ""
	}
	p := s.text()
	if s.ext > len(p) {
		return ""
	}
	return p[s.ext:]
}

// Text returns the glyph text of a [Symbol] source, and "" otherwise.
func (s *Source) Text() string {
	if s.Type != Symbol {
		return ""
	}
	return s.text()
}

// Data returns the binary data of a [Variable] source set through
// [Source.SetData] or parsed from bytes, and nil otherwise.
// Data parsed from a string is returned by [Source.DataText] instead.
func (s *Source) Data() []byte {
	if d, ok := s.data.(BorrowedData); ok {
		return d
	}
	return nil
}

// DataText returns the data of a [Variable] source parsed from a string,
// and "" otherwise.
func (s *Source) DataText() string {
	if s.Type != Variable {
		return ""
	}
	if d, ok := s.data.(BorrowedText); ok {
		return string(d)
	}
	return ""
}

// sniffLen is the number of leading bytes that format detection reads.
const sniffLen = 3072

// head returns the leading bytes of the data of a [Variable] source,
// for format detection. String data is copied, up to sniffLen bytes.
func (s *Source) head() []byte {
	if d := s.Data(); d != nil {
		return d
	}
	t := s.DataText()
	if len(t) > sniffLen {
		t = t[:sniffLen]
	}
	if t == "" {
		return nil
	}
	return []byte(t)
}

// Raw returns the raw image of a [Variable] source set through
// [Source.SetRaw], and nil otherwise.
func (s *Source) Raw() *RawImage {
	if r, ok := s.data.(*RawImage); ok {
		return r
	}
	return nil
}

// IsSet returns whether the source has a known type.
func (s *Source) IsSet() bool {
	return s.Type != Unknown
}

// String returns a short description of the source for logging.
func (s *Source) String() string {
	switch s.Type {
	case File:
		return fmt.Sprintf("File(%q)", s.Path())
	case Symbol:
		return fmt.Sprintf("Symbol(%q)", s.Text())
	case Variable:
		if r := s.Raw(); r != nil {
			return fmt.Sprintf("Variable(raw %s %dx%d)", r.Header.Format, r.Header.Width, r.Header.Height)
		}
		return fmt.Sprintf("Variable(%d bytes)", s.length)
	}
	return s.Type.String()
}

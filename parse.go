// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgsrc

import (
	"fmt"
	"log/slog"
)

// Parse builds a [Source] from a legacy value, based on [Parser.Classify]:
//   - [Unknown] values are rejected with [ErrParseRejected].
//   - A [*Source] is copied field by field, without allocating; the copy
//     shares any owned duplicate of the original, which must then only be
//     freed once, through either value.
//   - [File] and [Symbol] text is duplicated into a buffer owned by the
//     result, which must be released with [Source.Free].
//   - [Variable] values are borrowed as is, with a length of 0 since the
//     legacy convention does not carry it. Strings stay strings, available
//     through [Source.DataText] rather than [Source.Data].
//
// Success only means that the value plausibly has one of the source shapes,
// not that it refers to anything that can be decoded.
func (p *Parser) Parse(src any) (Source, error) {
	k := p.Classify(src)
	switch k {
	case Unknown:
		return Source{}, reject(k, ErrUnknownSource)
	case LegacyObject:
		s, ok := src.(*Source)
		if !ok {
			return Source{}, reject(k, ErrNotDescriptor)
		}
		return *s, nil
	case File, Symbol:
		text := legacyText(src)
		s := Source{Type: k, data: newOwned(p.alloc, text), ext: -1}
		if k == File {
			s.ext = extIndex(text)
		} else {
			s.length = len(text)
		}
		return s, nil
	}
	switch v := src.(type) {
	case *RawImage:
		return Source{Type: Variable, data: v}, nil
	case []byte:
		return Source{Type: Variable, data: BorrowedData(v)}, nil
	case string:
		return Source{Type: Variable, data: BorrowedText(v)}, nil
	}
	return Source{}, reject(k, ErrUnknownSource)
}

func reject(k Kind, reason error) error {
	slog.Debug("imgsrc: legacy source rejected", "kind", k, "reason", reason)
	return fmt.Errorf("%w: %w", ErrParseRejected, reason)
}

// legacyText returns the text of a string shaped legacy value,
// up to its NUL terminator if it has one.
func legacyText(src any) string {
	switch v := src.(type) {
	case string:
		for i := 0; i < len(v); i++ {
			if v[i] == 0 {
				return v[:i]
			}
		}
		return v
	case []byte:
		return string(cstring(v))
	}
	return ""
}

// Copy sets dst to a copy of src. The text of [File] and [Symbol] sources
// is duplicated into a buffer owned by dst, so that dst and src can be
// freed independently; dst must then be released with [Source.Free].
// [Variable] payload is shared, and an [Unknown] src results in an
// [Unknown] dst. Any owned duplicate previously held by dst is not
// released.
func (p *Parser) Copy(dst, src *Source) {
	dst.warnOwned()
	switch {
	case src.Type.IsText():
		*dst = Source{
			Type:   src.Type,
			data:   newOwned(p.alloc, src.text()),
			length: src.length,
			ext:    src.ext,
		}
	case src.Type == Variable:
		*dst = *src
	default:
		*dst = Source{}
	}
}

// Free releases the owned duplicate of a source built by [Parse] or
// [Copy], and resets the source to [Unknown]. It only resets sources
// built through the setters, which own nothing.
//
// Freeing again, through the same source or a shallow copy of it, does not
// release the duplicate twice. However, strings obtained from an owned
// source before it was freed must not be used afterwards.
func (s *Source) Free() {
	if o, ok := s.data.(*Owned); ok {
		o.release()
	}
	*s = Source{}
}

// Parse builds a [Source] from a legacy value using the [Default]
// parser. See [Parser.Parse].
func Parse(src any) (Source, error) {
	return Default.Parse(src)
}

// Copy sets dst to a copy of src using the [Default] parser.
// See [Parser.Copy].
func Copy(dst, src *Source) {
	Default.Copy(dst, src)
}

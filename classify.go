// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgsrc

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// Parser classifies and parses values of the legacy convention, in which an
// image source is passed as a single untyped value: nil, a string, a []byte,
// a [*RawImage], or a [*Source]. It is safe for concurrent use.
type Parser struct {
	config  Config
	symbols *unicode.RangeTable
	alloc   Allocator
}

// Default is the [Parser] used by the package level functions. It uses
// [DefaultConfig] and a [HeapAllocator].
var Default = newParser(DefaultConfig(), HeapAllocator{})

// NewParser returns a new [Parser] with the given config and allocator
// for owned duplicates. A nil config means [DefaultConfig], and a nil
// allocator means [HeapAllocator].
func NewParser(cfg *Config, alloc Allocator) (*Parser, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	c.Symbols = append([]Range(nil), cfg.Symbols...)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	return newParser(&c, alloc), nil
}

func newParser(cfg *Config, alloc Allocator) *Parser {
	return &Parser{config: *cfg, symbols: cfg.RangeTable(), alloc: alloc}
}

// Config returns a copy of the config of the parser.
func (p *Parser) Config() *Config {
	c := p.config
	c.Symbols = append([]Range(nil), p.config.Symbols...)
	return &c
}

// Classify returns the best guess of the [Kind] of a legacy value.
// It never fails: [Unknown] is a valid result, returned for nil and for
// values of unsupported types. The guess only looks at a bounded prefix:
//  1. a value starting with the [Sentinel] is a [LegacyObject]
//  2. text starting with a single character and ':' (as in "S:/a.png")
//     is a [File]
//  3. text starting with a code point in the symbol ranges is a [Symbol]
//  4. anything else is [Variable]
//
// Binary data that happens to start like path or symbol text is
// misclassified; use the [Source] setters when the kind is known.
func (p *Parser) Classify(src any) Kind {
	b := p.prefix(src)
	if len(b) == 0 {
		return Unknown
	}
	if b[0] == Sentinel {
		return LegacyObject
	}
	str := cstring(b)
	if len(str) >= 2 && isDrive(str[0]) && str[1] == ':' {
		return File
	}
	r, _ := utf8.DecodeRune(str)
	if r != utf8.RuneError && unicode.Is(p.symbols, r) {
		return Symbol
	}
	return Variable
}

// prefix returns at most PrefixLen bytes of what the legacy value
// refers to, or nil if it refers to nothing readable.
func (p *Parser) prefix(src any) []byte {
	var b []byte
	switch v := src.(type) {
	case string:
		if len(v) > p.config.PrefixLen {
			v = v[:p.config.PrefixLen]
		}
		b = []byte(v)
	case []byte:
		b = v
	case *Source:
		if v == nil {
			return nil
		}
		b = []byte{Sentinel, byte(v.Type)}
	case *RawImage:
		if v == nil {
			return nil
		}
		b = v.Header.bytes()
	default:
		return nil
	}
	if len(b) > p.config.PrefixLen {
		b = b[:p.config.PrefixLen]
	}
	return b
}

// cstring returns b up to its first NUL byte.
func cstring(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}

// isDrive returns whether c can be a drive letter of a path,
// which is any printable ASCII character other than space.
func isDrive(c byte) bool {
	return c > ' ' && c < 0x7f
}

// Classify returns the best guess of the [Kind] of a legacy value
// using the [Default] parser. See [Parser.Classify].
func Classify(src any) Kind {
	return Default.Classify(src)
}

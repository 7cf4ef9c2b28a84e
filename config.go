// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgsrc

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/iox/yamlx"
	"golang.org/x/text/unicode/rangetable"
)

// Range is an inclusive range of code points.
type Range struct {
	Lo rune `toml:"lo" yaml:"lo"`
	Hi rune `toml:"hi" yaml:"hi"`
}

// Contains returns whether r is in the range.
func (rg Range) Contains(r rune) bool {
	return r >= rg.Lo && r <= rg.Hi
}

// Config contains the settings of the legacy [Parser].
type Config struct {

	// Symbols are the code point ranges whose first glyph marks legacy
	// text as [Symbol] text. They depend on the icon font in use.
	Symbols []Range `toml:"symbols" yaml:"symbols"`

	// PrefixLen is the maximum number of bytes of a legacy value that
	// the classifier looks at.
	PrefixLen int `toml:"prefix_len" yaml:"prefix_len"`
}

// DefaultPrefixLen is the default [Config.PrefixLen].
const DefaultPrefixLen = 256

// DefaultConfig returns the default config, which recognizes the
// Unicode private use area U+F000 to U+F8FF used by the built-in
// icon font as symbols.
func DefaultConfig() *Config {
	return &Config{
		Symbols:   []Range{{Lo: 0xF000, Hi: 0xF8FF}},
		PrefixLen: DefaultPrefixLen,
	}
}

// Validate returns an error if a symbol range is inverted or
// outside of the Unicode code space. A non-positive PrefixLen
// is replaced by [DefaultPrefixLen].
func (c *Config) Validate() error {
	for _, rg := range c.Symbols {
		if rg.Lo < 0 || rg.Hi > unicode.MaxRune || rg.Lo > rg.Hi {
			return fmt.Errorf("%w: %U-%U", ErrInvalidRange, rg.Lo, rg.Hi)
		}
	}
	if c.PrefixLen <= 0 {
		c.PrefixLen = DefaultPrefixLen
	}
	return nil
}

// RangeTable returns the symbol ranges as a [unicode.RangeTable].
func (c *Config) RangeTable() *unicode.RangeTable {
	tabs := make([]*unicode.RangeTable, 0, len(c.Symbols))
	for _, rg := range c.Symbols {
		if rg.Lo > rg.Hi {
			continue
		}
		if rg.Hi <= 0xFFFF {
			tabs = append(tabs, &unicode.RangeTable{
				R16: []unicode.Range16{{Lo: uint16(rg.Lo), Hi: uint16(rg.Hi), Stride: 1}},
			})
			continue
		}
		tabs = append(tabs, &unicode.RangeTable{
			R32: []unicode.Range32{{Lo: uint32(rg.Lo), Hi: uint32(rg.Hi), Stride: 1}},
		})
	}
	return rangetable.Merge(tabs...)
}

// OpenConfig reads a config from the given TOML or YAML file, chosen by
// extension. Fields missing from the file keep their default values.
func OpenConfig(filename string) (*Config, error) {
	c := DefaultConfig()
	c.Symbols = nil
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = tomlx.Open(c, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(c, filename)
	default:
		return nil, fmt.Errorf("%w: %q", ErrConfigFormat, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("imgsrc: reading config %q: %w", filename, err)
	}
	if c.Symbols == nil {
		c.Symbols = DefaultConfig().Symbols
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

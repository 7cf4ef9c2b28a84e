// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgsrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	var desc Source
	desc.SetFile("S:/a.png")
	raw := &RawImage{Header: Header{Format: ColorRGBA8888, Width: 0x3a53, Height: 1}}

	tests := []struct {
		name string
		src  any
		want Kind
	}{
		{"nil", nil, Unknown},
		{"nil source", (*Source)(nil), Unknown},
		{"nil bytes", []byte(nil), Unknown},
		{"nil raw", (*RawImage)(nil), Unknown},
		{"empty string", "", Unknown},
		{"empty bytes", []byte{}, Unknown},
		{"unsupported type", 42, Unknown},
		{"path", "S:/img/a.bin\x00", File},
		{"path bytes", []byte("S:/img/a.bin\x00garbage"), File},
		{"drive only", "A:", File},
		{"symbol", "\uF001", Symbol},
		{"symbol text", "\uF00C done", Symbol},
		{"last private use", "\uF8FF", Symbol},
		{"descriptor", &desc, LegacyObject},
		{"sentinel bytes", []byte{Sentinel, 1, 2}, LegacyObject},
		{"binary", []byte{0x00, 0x01, 0x02, 0x03}, Variable},
		{"plain text", "hello", Variable},
		{"absolute path", "/img/a.png", Variable},
		{"space drive", " :x", Variable},
		{"colon later", "ab:c", Variable},
		{"bullet", "\u2022", Variable},
		{"truncated utf8", []byte{0xEF, 0x80}, Variable},
		{"raw image", raw, Variable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.src))
		})
	}
}

func TestClassifyPriority(t *testing.T) {
	p, err := NewParser(&Config{Symbols: []Range{{Lo: 'A', Hi: 'Z'}}}, nil)
	require.NoError(t, err)
	assert.Equal(t, Symbol, p.Classify("Hello"))
	assert.Equal(t, File, p.Classify("S:/hello"))
	assert.Equal(t, Variable, p.Classify("hello"))
	assert.Equal(t, Variable, p.Classify("\uF001"))
}

func TestClassifyNoSymbols(t *testing.T) {
	p, err := NewParser(&Config{}, nil)
	require.NoError(t, err)
	assert.Equal(t, Variable, p.Classify("\uF001"))
	assert.Equal(t, DefaultPrefixLen, p.Config().PrefixLen)
}

func TestClassifyPrefixLen(t *testing.T) {
	p, err := NewParser(&Config{PrefixLen: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, Variable, p.Classify("S:/a.png"))
	assert.Equal(t, Variable, p.Classify([]byte("S:/a.png")))
	assert.Equal(t, LegacyObject, p.Classify([]byte{Sentinel}))
}

func TestParserConfigCopy(t *testing.T) {
	cfg := DefaultConfig()
	p, err := NewParser(cfg, nil)
	require.NoError(t, err)
	cfg.Symbols[0].Lo = 'A'
	assert.Equal(t, Variable, p.Classify("B"))

	c := p.Config()
	c.Symbols[0].Hi = 0
	assert.Equal(t, Symbol, p.Classify("\uF001"))
}

func TestNewParserInvalid(t *testing.T) {
	_, err := NewParser(&Config{Symbols: []Range{{Lo: 10, Hi: 5}}}, nil)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

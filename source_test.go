// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgsrc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestSetSymbol(t *testing.T) {
	text := "\uF001 audio"
	var s Source
	s.SetSymbol(text)
	assert.Equal(t, Symbol, s.Type)
	assert.Equal(t, len(text), s.Len())
	assert.Equal(t, text, s.Text())
	assert.Same(t, unsafe.StringData(text), unsafe.StringData(s.Text()))
	assert.Equal(t, BorrowedText(text), s.Payload())
	assert.False(t, s.IsOwned())
	assert.Equal(t, "", s.Path())
}

func TestSetData(t *testing.T) {
	data := []byte{1, 2, 3}
	var s Source
	s.SetData(data)
	assert.Equal(t, Variable, s.Type)
	assert.Equal(t, 3, s.Len())
	assert.Same(t, &data[0], &s.Data()[0])
	assert.Nil(t, s.Raw())
	assert.False(t, s.IsOwned())
}

func TestSetFile(t *testing.T) {
	path := "S:/img/a.bin"
	var s Source
	s.SetFile(path)
	assert.Equal(t, File, s.Type)
	assert.Equal(t, path, s.Path())
	assert.Same(t, unsafe.StringData(path), unsafe.StringData(s.Path()))
	assert.Equal(t, "bin", s.Ext())
	assert.Same(t, unsafe.StringData(path[9:]), unsafe.StringData(s.Ext()))
	assert.Equal(t, "", s.Text())

	s.SetFile("S:/img/noext")
	assert.Equal(t, File, s.Type)
	assert.Equal(t, "", s.Ext())

	s.SetFile("S:/img/trailing.")
	assert.Equal(t, "", s.Ext())
}

func TestSetRaw(t *testing.T) {
	raw := &RawImage{
		Header: Header{Format: ColorRGBA8888, Width: 1, Height: 1},
		Data:   []byte{1, 2, 3, 4},
	}
	var s Source
	s.SetRaw(raw)
	assert.Equal(t, Variable, s.Type)
	assert.Same(t, raw, s.Raw())
	assert.Equal(t, 4, s.Len())
	assert.Nil(t, s.Data())
}

func TestSetNull(t *testing.T) {
	var s Source
	assert.Equal(t, Unknown, s.SetFile("S:/a.png").SetSymbol("").Type)
	assert.Nil(t, s.Payload())
	assert.Equal(t, Unknown, s.SetFile("").Type)
	assert.Equal(t, Unknown, s.SetData(nil).Type)
	assert.Equal(t, Unknown, s.SetRaw(nil).Type)
	assert.False(t, s.IsSet())

	// an empty but non-nil slice is still data
	assert.Equal(t, Variable, s.SetData([]byte{}).Type)
	assert.Equal(t, 0, s.Len())
}

func TestSetOverwrites(t *testing.T) {
	var s Source
	s.SetFile("S:/a.png")
	s.SetSymbol("\uF00C")
	assert.Equal(t, Symbol, s.Type)
	assert.Equal(t, "", s.Ext())
	assert.Equal(t, "", s.Path())
	s.SetData([]byte{0})
	assert.Equal(t, Variable, s.Type)
	assert.Equal(t, "", s.Text())
}

func TestSourceString(t *testing.T) {
	var s Source
	assert.Equal(t, "Unknown", s.String())
	assert.Equal(t, `File("S:/a.png")`, s.SetFile("S:/a.png").String())
	assert.Equal(t, `Symbol("\uf00c")`, s.SetSymbol("\uF00C").String())
	assert.Equal(t, "Variable(3 bytes)", s.SetData([]byte{1, 2, 3}).String())
	raw := &RawImage{Header: Header{Format: ColorAlpha8, Width: 2, Height: 3}}
	assert.Equal(t, "Variable(raw Alpha8 2x3)", s.SetRaw(raw).String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "LegacyObject", LegacyObject.String())
	var k Kind
	assert.NoError(t, k.SetString("File"))
	assert.Equal(t, File, k)
	assert.Error(t, k.SetString("Directory"))
	assert.True(t, Symbol.IsText())
	assert.False(t, Variable.IsText())
}

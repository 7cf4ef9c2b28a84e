// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbols

import (
	"testing"
	"unicode"

	"cogentcore.org/imgsrc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySymbols(t *testing.T) {
	for _, s := range All() {
		if s == Bullet {
			assert.Equal(t, imgsrc.Variable, imgsrc.Classify(string(s)))
			continue
		}
		assert.Equal(t, imgsrc.Symbol, imgsrc.Classify(string(s)), s.Name())
	}

	p, err := imgsrc.NewParser(Config(), nil)
	require.NoError(t, err)
	assert.Equal(t, imgsrc.Symbol, p.Classify(string(Bullet)+" item"))
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"VolumeMid", "volume-mid", "volume_mid", "volumemid", "VOLUMEMID"} {
		s, ok := Lookup(name)
		assert.True(t, ok, name)
		assert.Equal(t, VolumeMid, s, name)
	}
	for name, want := range map[string]Symbol{"sdcard": SDCard, "sd-card": SDCard, "eyeopen": EyeOpen, "battery3": Battery3} {
		s, ok := Lookup(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, s, name)
	}
	s, ok := Lookup("ok")
	assert.True(t, ok)
	assert.Equal(t, Ok, s)

	_, ok = Lookup("nope")
	assert.False(t, ok)

	for _, name := range Names() {
		_, ok := Lookup(name)
		assert.True(t, ok, name)
	}
}

func TestNameRune(t *testing.T) {
	assert.Equal(t, "EyeOpen", EyeOpen.Name())
	assert.Equal(t, "", Symbol("x").Name())
	assert.Equal(t, rune(0xF001), Audio.Rune())
	assert.Equal(t, rune(0x2022), Bullet.Rune())
	assert.Len(t, Names(), len(All()))
}

func TestSource(t *testing.T) {
	src := Home.Source()
	assert.Equal(t, imgsrc.Symbol, src.Type)
	assert.Equal(t, 3, src.Len())
	assert.Equal(t, string(Home), src.Text())
	assert.False(t, src.IsOwned())

	parsed, err := imgsrc.Parse(&src)
	require.NoError(t, err)
	assert.Equal(t, src, parsed)
}

func TestRangeTable(t *testing.T) {
	tab := RangeTable()
	for _, s := range All() {
		assert.True(t, unicode.Is(tab, s.Rune()), s.Name())
	}
	assert.False(t, unicode.Is(tab, 0xF002))
	assert.False(t, unicode.Is(tab, 'a'))
}

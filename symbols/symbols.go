// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symbols provides the glyphs of the built-in icon font,
// which are rendered as text through the font path rather than
// decoded as images.
package symbols

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"cogentcore.org/imgsrc"
	"github.com/iancoleman/strcase"
	"golang.org/x/text/unicode/rangetable"
)

// Symbol is text made of one or more icon glyphs.
type Symbol string

// The glyphs of the built-in icon font. Except for [Bullet], they are in
// the Unicode private use area.
const (
	Audio        Symbol = "\uF001"
	Video        Symbol = "\uF008"
	List         Symbol = "\uF00B"
	Ok           Symbol = "\uF00C"
	Close        Symbol = "\uF00D"
	Power        Symbol = "\uF011"
	Settings     Symbol = "\uF013"
	Home         Symbol = "\uF015"
	Download     Symbol = "\uF019"
	Drive        Symbol = "\uF01C"
	Refresh      Symbol = "\uF021"
	Mute         Symbol = "\uF026"
	VolumeMid    Symbol = "\uF027"
	VolumeMax    Symbol = "\uF028"
	Image        Symbol = "\uF03E"
	Tint         Symbol = "\uF043"
	Prev         Symbol = "\uF048"
	Play         Symbol = "\uF04B"
	Pause        Symbol = "\uF04C"
	Stop         Symbol = "\uF04D"
	Next         Symbol = "\uF051"
	Eject        Symbol = "\uF052"
	Left         Symbol = "\uF053"
	Right        Symbol = "\uF054"
	Plus         Symbol = "\uF067"
	Minus        Symbol = "\uF068"
	EyeOpen      Symbol = "\uF06E"
	EyeClose     Symbol = "\uF070"
	Warning      Symbol = "\uF071"
	Shuffle      Symbol = "\uF074"
	Up           Symbol = "\uF077"
	Down         Symbol = "\uF078"
	Loop         Symbol = "\uF079"
	Directory    Symbol = "\uF07B"
	Upload       Symbol = "\uF093"
	Call         Symbol = "\uF095"
	Cut          Symbol = "\uF0C4"
	Copy         Symbol = "\uF0C5"
	Save         Symbol = "\uF0C7"
	Bars         Symbol = "\uF0C9"
	Envelope     Symbol = "\uF0E0"
	Charge       Symbol = "\uF0E7"
	Paste        Symbol = "\uF0EA"
	Bell         Symbol = "\uF0F3"
	Keyboard     Symbol = "\uF11C"
	GPS          Symbol = "\uF124"
	File         Symbol = "\uF158"
	Wifi         Symbol = "\uF1EB"
	BatteryFull  Symbol = "\uF240"
	Battery3     Symbol = "\uF241"
	Battery2     Symbol = "\uF242"
	Battery1     Symbol = "\uF243"
	BatteryEmpty Symbol = "\uF244"
	USB          Symbol = "\uF287"
	Bluetooth    Symbol = "\uF293"
	Trash        Symbol = "\uF2ED"
	Edit         Symbol = "\uF304"
	Backspace    Symbol = "\uF55A"
	SDCard       Symbol = "\uF7C2"
	NewLine      Symbol = "\uF8A2"

	// Dummy is an invalid glyph, used to mark the start of
	// a symbol that should not be rendered.
	Dummy Symbol = "\uF8FF"

	// Bullet is a bullet point. It is outside of the private use area,
	// so it is only recognized by a parser using [Config].
	Bullet Symbol = "\u2022"
)

var all = []Symbol{
	Audio, Video, List, Ok, Close, Power, Settings, Home, Download, Drive,
	Refresh, Mute, VolumeMid, VolumeMax, Image, Tint, Prev, Play, Pause, Stop,
	Next, Eject, Left, Right, Plus, Minus, EyeOpen, EyeClose, Warning, Shuffle,
	Up, Down, Loop, Directory, Upload, Call, Cut, Copy, Save, Bars, Envelope,
	Charge, Paste, Bell, Keyboard, GPS, File, Wifi, BatteryFull, Battery3,
	Battery2, Battery1, BatteryEmpty, USB, Bluetooth, Trash, Edit, Backspace,
	SDCard, NewLine, Dummy, Bullet,
}

var names = []string{
	"Audio", "Video", "List", "Ok", "Close", "Power", "Settings", "Home", "Download", "Drive",
	"Refresh", "Mute", "VolumeMid", "VolumeMax", "Image", "Tint", "Prev", "Play", "Pause", "Stop",
	"Next", "Eject", "Left", "Right", "Plus", "Minus", "EyeOpen", "EyeClose", "Warning", "Shuffle",
	"Up", "Down", "Loop", "Directory", "Upload", "Call", "Cut", "Copy", "Save", "Bars", "Envelope",
	"Charge", "Paste", "Bell", "Keyboard", "GPS", "File", "Wifi", "BatteryFull", "Battery3",
	"Battery2", "Battery1", "BatteryEmpty", "USB", "Bluetooth", "Trash", "Edit", "Backspace",
	"SDCard", "NewLine", "Dummy", "Bullet",
}

// byKey maps normalized names to symbols.
var byKey = func() map[string]Symbol {
	m := make(map[string]Symbol, len(all))
	for i, s := range all {
		m[key(names[i])] = s
	}
	return m
}()

// key normalizes a name to lower case without word separators.
func key(name string) string {
	return strings.ReplaceAll(strings.ToLower(strcase.ToSnake(name)), "_", "")
}

// All returns all of the symbols, in code point order except for [Bullet],
// which is last.
func All() []Symbol {
	return append([]Symbol(nil), all...)
}

// Names returns the names of all of the symbols, in the order of [All].
func Names() []string {
	return append([]string(nil), names...)
}

// Lookup returns the symbol with the given name, which is matched
// regardless of case and of the use of '-', '_' or nothing between words,
// so "VolumeMid", "volumemid", "volume-mid" and "volume_mid" are the same.
func Lookup(name string) (Symbol, bool) {
	s, ok := byKey[key(name)]
	return s, ok
}

// Name returns the name of the symbol, or "" if it is not one of the
// built-in symbols.
func (s Symbol) Name() string {
	for i, a := range all {
		if a == s {
			return names[i]
		}
	}
	return ""
}

// Rune returns the first code point of the symbol.
func (s Symbol) Rune() rune {
	r, _ := utf8.DecodeRuneInString(string(s))
	return r
}

// Source returns a [imgsrc.Symbol] source borrowing the symbol text.
func (s Symbol) Source() imgsrc.Source {
	var src imgsrc.Source
	src.SetSymbol(string(s))
	return src
}

// RangeTable returns a table containing exactly the code points
// of the built-in symbols.
func RangeTable() *unicode.RangeTable {
	rs := make([]rune, len(all))
	for i, s := range all {
		rs[i] = s.Rune()
	}
	return rangetable.New(rs...)
}

// Config returns an [imgsrc.Config] that recognizes the private use area
// of the icon font as well as [Bullet].
func Config() *imgsrc.Config {
	c := imgsrc.DefaultConfig()
	b := Bullet.Rune()
	c.Symbols = append(c.Symbols, imgsrc.Range{Lo: b, Hi: b})
	return c
}

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex provides the encoded image formats that image sources
// can refer to, and conversion helpers for decoded images.
package imagex

//go:generate core generate

import (
	"errors"
	"fmt"
	"strings"
)

// Formats are the encoded image formats an image source can hold.
type Formats int32 //enums:enum

const (
	// None is an unknown or unsupported format.
	None Formats = iota

	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
	SVG

	// Bin is pre-converted raw image data, as written by image
	// converters for embedded targets.
	Bin
)

var formatExts = map[Formats][]string{
	PNG:  {"png"},
	JPEG: {"jpg", "jpeg"},
	GIF:  {"gif"},
	TIFF: {"tif", "tiff"},
	BMP:  {"bmp"},
	WebP: {"webp"},
	SVG:  {"svg"},
	Bin:  {"bin"},
}

var formatMimes = map[Formats]string{
	PNG:  "image/png",
	JPEG: "image/jpeg",
	GIF:  "image/gif",
	TIFF: "image/tiff",
	BMP:  "image/bmp",
	WebP: "image/webp",
	SVG:  "image/svg+xml",
	Bin:  "application/octet-stream",
}

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, errors.New("ExtToFormat: ext is empty")
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	ext = strings.ToLower(ext)
	for f, exts := range formatExts {
		for _, e := range exts {
			if e == ext {
				return f, nil
			}
		}
	}
	return None, fmt.Errorf("ExtToFormat: extension %q not recognized", ext)
}

// MimeToFormat returns a Format based on a mime type, ignoring
// any parameters such as charset.
func MimeToFormat(mime string) (Formats, error) {
	mime, _, _ = strings.Cut(mime, ";")
	mime = strings.TrimSpace(strings.ToLower(mime))
	switch mime {
	case "image/x-ms-bmp":
		return BMP, nil
	case "image/vnd.microsoft.icon", "image/x-icon":
		return None, fmt.Errorf("MimeToFormat: mime type %q not supported", mime)
	}
	for f, m := range formatMimes {
		if m == mime && f != Bin {
			return f, nil
		}
	}
	return None, fmt.Errorf("MimeToFormat: mime type %q not recognized", mime)
}

// Ext returns the canonical filename extension of the format,
// without the leading '.', or "" for [None].
func (f Formats) Ext() string {
	if exts := formatExts[f]; len(exts) > 0 {
		return exts[0]
	}
	return ""
}

// Mime returns the mime type of the format, or "" for [None].
func (f Formats) Mime() string {
	return formatMimes[f]
}

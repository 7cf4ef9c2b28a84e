// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgsrc

import (
	"mime"

	"cogentcore.org/imgsrc/base/iox/imagex"
	"github.com/gabriel-vasile/mimetype"
	"github.com/h2non/filetype"
)

// Format returns a guess of the encoded image format of the source,
// which consumers can use to pick a decoder. File sources are guessed
// from their extension, and [Variable] data from its leading magic bytes.
// It returns [imagex.None] for symbols, raw images and unrecognized data.
// The guess is never checked against the full content.
func (s *Source) Format() imagex.Formats {
	switch s.Type {
	case File:
		f, err := imagex.ExtToFormat(s.Ext())
		if err != nil {
			return imagex.None
		}
		return f
	case Variable:
		data := s.head()
		if len(data) == 0 {
			return imagex.None
		}
		if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
			if f, err := imagex.MimeToFormat(kind.MIME.Value); err == nil {
				return f
			}
		}
		// formats filetype does not know about, such as svg
		if f, err := imagex.MimeToFormat(mimetype.Detect(data).String()); err == nil {
			return f
		}
	}
	return imagex.None
}

// Mime returns a guess of the mime type of the content the source refers
// to, or "" if there is no reasonable guess.
func (s *Source) Mime() string {
	switch s.Type {
	case File:
		if f := s.Format(); f != imagex.None {
			return f.Mime()
		}
		if ext := s.Ext(); ext != "" {
			return mime.TypeByExtension("." + ext)
		}
	case Symbol:
		return "text/plain; charset=utf-8"
	case Variable:
		if s.Raw() != nil {
			return imagex.Bin.Mime()
		}
		if data := s.head(); len(data) > 0 {
			return mimetype.Detect(data).String()
		}
	}
	return ""
}

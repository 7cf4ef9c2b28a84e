// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgsrc

import "errors"

var (
	// ErrParseRejected is returned by [Parse] when no [Source] could be
	// built from a legacy value. It wraps the reason.
	ErrParseRejected = errors.New("imgsrc: parse rejected")

	// ErrUnknownSource means the legacy value was classified as [Unknown].
	ErrUnknownSource = errors.New("unknown image source")

	// ErrNotDescriptor means the legacy value starts with the [Sentinel]
	// but is not a [Source] that can be reinterpreted.
	ErrNotDescriptor = errors.New("sentinel found on a value that is not a source descriptor")

	// ErrInvalidRange is returned by [Config.Validate] for a symbol range
	// that is inverted or outside of the Unicode code space.
	ErrInvalidRange = errors.New("imgsrc: invalid symbol range")

	// ErrConfigFormat is returned by [OpenConfig] for an unsupported
	// file extension.
	ErrConfigFormat = errors.New("imgsrc: unsupported config file format")
)

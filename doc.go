// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package imgsrc provides image source descriptors, which identify where
image-like content comes from: binary data compiled into the program
([Variable]), a path in a filesystem ([File]), or built-in icon glyph text
([Symbol]).

Callers that know what kind of source they have use the setters on [Source]
([Source.SetData], [Source.SetFile], [Source.SetSymbol], [Source.SetRaw]).
These never allocate or copy: the descriptor borrows the value, which must
outlive it.

Callers bound to the legacy convention, in which a source is passed as a
single untyped value, go through [Parse], which uses the best-effort
heuristics of [Classify] to guess the kind. Parsing duplicates File and
Symbol text into a buffer owned by the descriptor; such descriptors must be
released with [Source.Free] once they are no longer used.

Parsing succeeding only means that the value plausibly matches one of the
source shapes. Nothing here checks that a file exists or that data decodes.
*/
package imgsrc

//go:generate core generate

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// userLeveler reports [UserLevel] at the time of each call,
// so that changes to it apply to existing handlers.
type userLeveler struct{}

func (userLeveler) Level() slog.Level { return UserLevel }

// levelColors are the ANSI colors of the level labels.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "4",
	slog.LevelInfo:  "2",
	slog.LevelWarn:  "3",
	slog.LevelError: "1",
}

// NewHandler returns a text [slog.Handler] writing to w that only shows
// messages at or above [UserLevel], with the level labels colored if w
// is a terminal that supports it.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lev, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				st := out.String(lev.String()).Bold()
				if c, ok := levelColors[lev]; ok {
					st = st.Foreground(out.Color(c))
				}
				a.Value = slog.StringValue(st.String())
			}
			return a
		},
	})
}

// SetDefaultLogger sets the default [slog] logger to one using
// [NewHandler] on [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

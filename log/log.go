// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"context"
	"log/slog"
	"sync/atomic"
)

var root atomic.Pointer[slog.Logger]

func init() {
	root.Store(slog.New(DiscardHandler()))
}

// SetDefault sets the default global logger.
func SetDefault(l *slog.Logger) {
	root.Store(l)
}

// Root returns the root logger.
func Root() *slog.Logger {
	return root.Load()
}

// WithContext returns a logger carrying the given context key/value pairs.
// Packages declare their logger once:
//
//	var logger = log.WithContext("pkg", "minter")
func WithContext(ctx ...any) *slog.Logger {
	return slog.New(&lazyHandler{ctx: ctx})
}

// lazyHandler defers binding of the root handler so that loggers declared
// as package vars pick up the handler installed later by the command line.
type lazyHandler struct {
	ctx []any
}

func (h *lazyHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return root.Load().Handler().Enabled(ctx, lvl)
}

func (h *lazyHandler) Handle(ctx context.Context, r slog.Record) error {
	if len(h.ctx) > 0 {
		r = r.Clone()
		r.Add(h.ctx...)
	}
	return root.Load().Handler().Handle(ctx, r)
}

func (h *lazyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	ctx := make([]any, 0, len(h.ctx)+len(attrs)*2)
	ctx = append(ctx, h.ctx...)
	for _, a := range attrs {
		ctx = append(ctx, a.Key, a.Value.Any())
	}
	return &lazyHandler{ctx: ctx}
}

func (h *lazyHandler) WithGroup(_ string) slog.Handler {
	panic("not implemented")
}

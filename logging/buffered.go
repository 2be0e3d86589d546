// WebsitePresentation - a hand-assembled one-page PDF summary
// Copyright (C) 2026  The WebsitePresentation Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package logging

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// Entry is a log record captured by a [BufferedHandler].
type Entry struct {
	Level   slog.Level
	Message string

	// Attrs holds the attributes of the record in "key=value" form.
	// Keys are prefixed with the names of enclosing groups.
	Attrs []string
}

// BufferedHandler is a slog.Handler which keeps all records in memory.
// Handlers derived using WithAttrs and WithGroup share the buffer of
// their parent.
type BufferedHandler struct {
	level  slog.Leveler
	store  *entryStore
	attrs  []string
	prefix string
}

type entryStore struct {
	mu      sync.Mutex
	entries []Entry
}

// NewBufferedHandler returns a new handler with an empty buffer.
// If level is nil, records of all levels are kept.
func NewBufferedHandler(level slog.Leveler) *BufferedHandler {
	return &BufferedHandler{
		level: level,
		store: &entryStore{},
	}
}

// Enabled implements slog.Handler.
func (h *BufferedHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.level == nil || level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *BufferedHandler) Handle(_ context.Context, r slog.Record) error {
	e := Entry{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   slices.Clone(h.attrs),
	}
	r.Attrs(func(a slog.Attr) bool {
		e.Attrs = appendAttr(e.Attrs, h.prefix, a)
		return true
	})

	h.store.mu.Lock()
	h.store.entries = append(h.store.entries, e)
	h.store.mu.Unlock()
	return nil
}

// WithAttrs implements slog.Handler.
func (h *BufferedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = slices.Clone(h.attrs)
	for _, a := range attrs {
		h2.attrs = appendAttr(h2.attrs, h.prefix, a)
	}
	return &h2
}

// WithGroup implements slog.Handler.
func (h *BufferedHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

// Entries returns a copy of the captured records, oldest first.
func (h *BufferedHandler) Entries() []Entry {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	return slices.Clone(h.store.entries)
}

// Messages returns the messages of all captured records.
func (h *BufferedHandler) Messages() []string {
	var res []string
	for _, e := range h.Entries() {
		res = append(res, e.Message)
	}
	return res
}

// Find returns the first captured record with the given message.
func (h *BufferedHandler) Find(msg string) (Entry, bool) {
	for _, e := range h.Entries() {
		if e.Message == msg {
			return e, true
		}
	}
	return Entry{}, false
}

// Attr returns the value of the attribute with the given key, in the form
// produced by slog.Value.String.
func (e Entry) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		k, v, _ := strings.Cut(a, "=")
		if k == key {
			return v, true
		}
	}
	return "", false
}

func appendAttr(attrs []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return attrs
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			attrs = appendAttr(attrs, prefix, ga)
		}
		return attrs
	}
	return append(attrs, prefix+a.Key+"="+a.Value.String())
}

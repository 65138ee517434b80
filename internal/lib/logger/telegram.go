package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Messenger delivers a plain text message to the admin chat.
type Messenger interface {
	SendMessage(msg string)
}

// TelegramHandler forwards records at or above level to the admin chat
// and passes every record to the wrapped handler. Delivery runs in the
// background so logging never waits on Telegram.
type TelegramHandler struct {
	next      slog.Handler
	messenger Messenger
	level     slog.Level
	attrs     []slog.Attr
}

func SetupTelegramHandler(lg *slog.Logger, messenger Messenger, level slog.Level) *slog.Logger {
	if messenger == nil {
		return lg
	}
	return slog.New(&TelegramHandler{
		next:      lg.Handler(),
		messenger: messenger,
		level:     level,
	})
}

func (h *TelegramHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level) || level >= h.level
}

func (h *TelegramHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.level {
		msg := format(r, h.attrs)
		go h.messenger.SendMessage(msg)
	}
	if h.next.Enabled(ctx, r.Level) {
		return h.next.Handle(ctx, r)
	}
	return nil
}

func (h *TelegramHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &TelegramHandler{
		next:      h.next.WithAttrs(attrs),
		messenger: h.messenger,
		level:     h.level,
		attrs:     merged,
	}
}

// WithGroup keeps the flat attribute list for the chat message.
func (h *TelegramHandler) WithGroup(name string) slog.Handler {
	return &TelegramHandler{
		next:      h.next.WithGroup(name),
		messenger: h.messenger,
		level:     h.level,
		attrs:     h.attrs,
	}
}

func format(r slog.Record, attrs []slog.Attr) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s: %s", r.Level.String(), r.Message))
	for _, a := range attrs {
		b.WriteString(fmt.Sprintf("\n%s: %s", a.Key, a.Value.String()))
	}
	r.Attrs(func(a slog.Attr) bool {
		b.WriteString(fmt.Sprintf("\n%s: %s", a.Key, a.Value.String()))
		return true
	})
	return b.String()
}

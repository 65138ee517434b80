package inbox

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"CorpSite/entity"
	"CorpSite/internal/lib/sl"
	"CorpSite/internal/wizard"

	"github.com/microcosm-cc/bluemonday"
)

const maxSummaryValue = 200

var (
	plainPolicyOnce sync.Once
	plainPolicy     *bluemonday.Policy
)

// Notifier delivers a text message to the site admins.
type Notifier interface {
	SendMessage(msg string)
}

type Counter interface {
	SubmissionReceived(form string)
}

// Inbox is the submission boundary: it logs every accepted payload and
// forwards a summary to the admins when a notifier is set. Nothing is stored.
type Inbox struct {
	log      *slog.Logger
	notifier Notifier
	counter  Counter
	received atomic.Int64
}

func NewInbox(logger *slog.Logger) *Inbox {
	return &Inbox{
		log: logger.With(sl.Module("inbox")),
	}
}

func (i *Inbox) SetNotifier(n Notifier) {
	i.notifier = n
}

func (i *Inbox) SetCounter(c Counter) {
	i.counter = c
}

// Submit accepts a wizard submission.
func (i *Inbox) Submit(ctx context.Context, s wizard.Submission) error {
	_, err := i.Receive(ctx, s.Form, s.Session, s.Payload)
	return err
}

// Receive accepts a raw payload and returns its receipt id.
func (i *Inbox) Receive(ctx context.Context, form, session string, payload map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("receive %s: %w", form, err)
	}

	sub := entity.NewSubmission(form, session, payload)
	i.received.Add(1)
	if i.counter != nil {
		i.counter.SubmissionReceived(sub.Form)
	}

	i.log.With(
		slog.String("id", sub.ID),
		slog.String("form", sub.Form),
		slog.String("session", sub.Session),
		slog.Any("payload", sub.Payload),
	).Info("submission received")

	if i.notifier != nil {
		go i.notifier.SendMessage(Summary(sub))
	}
	return sub.ID, nil
}

// Received counts accepted submissions since start.
func (i *Inbox) Received() int64 {
	return i.received.Load()
}

// Summary renders a submission for the admin chat, one field per line.
func Summary(sub *entity.Submission) string {
	keys := make([]string, 0, len(sub.Payload))
	for k := range sub.Payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("New %s submission %s", sub.Form, sub.ID))
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("\n%s: %s", plainText(k), summaryValue(sub.Payload[k])))
	}
	return b.String()
}

func summaryValue(v any) string {
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case []string:
		s = strings.Join(val, ", ")
	case []any:
		parts := make([]string, len(val))
		for i, p := range val {
			parts[i] = fmt.Sprint(p)
		}
		s = strings.Join(parts, ", ")
	case nil:
		s = ""
	default:
		s = fmt.Sprint(val)
	}
	s = plainText(s)
	if utf8.RuneCountInString(s) > maxSummaryValue {
		s = string([]rune(s)[:maxSummaryValue]) + "…"
	}
	return s
}

// plainText strips any markup a visitor typed into a field.
func plainText(s string) string {
	plainPolicyOnce.Do(func() {
		plainPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(plainPolicy.Sanitize(s)))
}

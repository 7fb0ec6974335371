package email

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"html/template"
	"log/slog"
	"strings"

	"github.com/samsaracrafts/storefront/internal/domain"
)

// Newsletter composes and sends newsletter broadcasts to every subscriber.
type Newsletter struct {
	sender      Sender
	subscribers domain.SubscriberService
	fromAddress string
	fromName    string
	tmpl        *template.Template
	logger      *slog.Logger
}

// NewsletterInput is one broadcast: a subject plus free-form HTML content
// that gets wrapped in the newsletter template.
type NewsletterInput struct {
	Subject string `validate:"required,max=200"`
	Body    string `validate:"required"`
}

// NewNewsletter creates the newsletter service. tmpl must define a
// "newsletter" template receiving {Subject, Body, UnsubscribeURL}.
func NewNewsletter(sender Sender, subscribers domain.SubscriberService, fromAddress, fromName string, tmpl *template.Template, logger *slog.Logger) *Newsletter {
	return &Newsletter{
		sender:      sender,
		subscribers: subscribers,
		fromAddress: fromAddress,
		fromName:    fromName,
		tmpl:        tmpl,
		logger:      logger,
	}
}

// Broadcast renders the newsletter and sends it to every subscriber,
// one message per recipient so addresses are never exposed to each other.
// Individual delivery failures are logged and skipped; the returned count
// is the number of successful sends.
func (n *Newsletter) Broadcast(ctx context.Context, input NewsletterInput) (int, error) {
	if err := domain.Validate("newsletter.broadcast", input); err != nil {
		return 0, err
	}

	subs, err := n.subscribers.ListSubscribers(ctx)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	data := map[string]any{
		"Subject": input.Subject,
		"Body":    template.HTML(input.Body),
	}
	if err := n.tmpl.ExecuteTemplate(&buf, "newsletter", data); err != nil {
		return 0, domain.Internal(err, "newsletter.broadcast", "failed to render newsletter template")
	}
	htmlBody := buf.String()
	textBody := generatePlainText(htmlBody)

	var sent int
	for _, sub := range subs {
		_, err := n.sender.Send(ctx, &Email{
			To:       []string{sub.Email},
			From:     fmt.Sprintf("%s <%s>", n.fromName, n.fromAddress),
			Subject:  input.Subject,
			HTMLBody: htmlBody,
			TextBody: textBody,
		})
		if err != nil {
			n.logger.Error("newsletter: failed to send", "to", sub.Email, "error", err)
			continue
		}
		sent++
	}

	return sent, nil
}

// generatePlainText derives a plain text alternative from an HTML body.
// Block-level closers and <br> become newlines, tags are stripped, entities
// are unescaped, and blank lines are dropped.
func generatePlainText(htmlBody string) string {
	s := htmlBody

	for _, tag := range []string{"<br>", "<br/>", "<br />"} {
		s = strings.ReplaceAll(s, tag, "\n")
	}
	for _, tag := range []string{"</p>", "</h1>", "</h2>", "</h3>", "</div>", "</li>"} {
		s = strings.ReplaceAll(s, tag, "\n")
	}

	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteRune(' ')
		case !inTag:
			b.WriteRune(r)
		}
	}

	text := html.UnescapeString(b.String())

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

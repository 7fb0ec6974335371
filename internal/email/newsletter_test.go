package email

import (
	"context"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/samsaracrafts/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSubscriberService implements domain.SubscriberService for testing.
type mockSubscriberService struct {
	subscribers []domain.Subscriber
	listErr     error
}

func (m *mockSubscriberService) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	return m.subscribers, m.listErr
}

func (m *mockSubscriberService) Subscribe(ctx context.Context, input domain.SubscriberInput) (*domain.Subscriber, error) {
	return nil, nil
}

func (m *mockSubscriberService) Unsubscribe(ctx context.Context, email string) error {
	return nil
}

var newsletterTmpl = template.Must(template.New("newsletter").Parse(
	`{{define "newsletter"}}<h1>{{.Subject}}</h1><div>{{.Body}}</div>{{end}}`))

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewsletter_Broadcast(t *testing.T) {
	sender := &MockSender{}
	subs := &mockSubscriberService{subscribers: []domain.Subscriber{
		{Email: "a@example.com"},
		{Email: "b@example.com"},
	}}

	n := NewNewsletter(sender, subs, "noreply@samsaracrafts.local", "Samsara Crafts", newsletterTmpl, discardLogger())

	sent, err := n.Broadcast(context.Background(), NewsletterInput{
		Subject: "New arrivals",
		Body:    "<p>Fresh crystal anklets are in stock.</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	require.Len(t, sender.Sent, 2)

	first := sender.Sent[0]
	assert.Equal(t, []string{"a@example.com"}, first.To, "one message per recipient")
	assert.Equal(t, "New arrivals", first.Subject)
	assert.Contains(t, first.HTMLBody, "Fresh crystal anklets")
	assert.Contains(t, first.TextBody, "Fresh crystal anklets")
	assert.NotContains(t, first.TextBody, "<p>")
}

func TestNewsletter_BroadcastPartialFailure(t *testing.T) {
	sender := &MockSender{
		SendFunc: func(ctx context.Context, email *Email) (string, error) {
			if email.To[0] == "bad@example.com" {
				return "", errors.New("mailbox unavailable")
			}
			return "ok", nil
		},
	}
	subs := &mockSubscriberService{subscribers: []domain.Subscriber{
		{Email: "a@example.com"},
		{Email: "bad@example.com"},
		{Email: "c@example.com"},
	}}

	n := NewNewsletter(sender, subs, "noreply@samsaracrafts.local", "Samsara Crafts", newsletterTmpl, discardLogger())

	sent, err := n.Broadcast(context.Background(), NewsletterInput{Subject: "Hi", Body: "<p>hello</p>"})
	require.NoError(t, err, "individual failures must not abort the broadcast")
	assert.Equal(t, 2, sent)
}

func TestNewsletter_BroadcastValidation(t *testing.T) {
	n := NewNewsletter(&MockSender{}, &mockSubscriberService{}, "x@y.z", "X", newsletterTmpl, discardLogger())

	_, err := n.Broadcast(context.Background(), NewsletterInput{Subject: "", Body: "b"})
	assert.True(t, domain.IsCode(err, domain.EINVALID))

	_, err = n.Broadcast(context.Background(), NewsletterInput{Subject: "s", Body: ""})
	assert.True(t, domain.IsCode(err, domain.EINVALID))
}

func TestGeneratePlainText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		contains []string
		excludes []string
	}{
		{
			name:     "simple paragraph",
			html:     "<p>Hello, World!</p>",
			contains: []string{"Hello, World!"},
			excludes: []string{"<p>", "</p>"},
		},
		{
			name:     "line breaks",
			html:     "Line 1<br>Line 2<br/>Line 3<br />Line 4",
			contains: []string{"Line 1", "Line 2", "Line 3", "Line 4"},
			excludes: []string{"<br>", "<br/>", "<br />"},
		},
		{
			name:     "HTML entities",
			html:     "Price: $10 &amp; shipping &nbsp; included",
			contains: []string{"Price: $10 & shipping"},
			excludes: []string{"&amp;", "&nbsp;"},
		},
		{
			name:     "links stripped",
			html:     `<a href="https://example.com">Click here</a>`,
			contains: []string{"Click here"},
			excludes: []string{"<a", "href", "</a>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := generatePlainText(tt.html)

			for _, want := range tt.contains {
				if !strings.Contains(result, want) {
					t.Errorf("generatePlainText() result should contain %q, got: %q", want, result)
				}
			}
			for _, exclude := range tt.excludes {
				if strings.Contains(result, exclude) {
					t.Errorf("generatePlainText() result should not contain %q, got: %q", exclude, result)
				}
			}
		})
	}
}

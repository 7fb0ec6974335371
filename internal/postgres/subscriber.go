package postgres

import (
	"context"
	"strings"

	"github.com/samsaracrafts/storefront/internal/domain"
)

// SubscriberService implements domain.SubscriberService using PostgreSQL.
type SubscriberService struct {
	db DB
}

var _ domain.SubscriberService = (*SubscriberService)(nil)

// NewSubscriberService creates a new PostgreSQL-backed subscriber service.
func NewSubscriberService(db DB) *SubscriberService {
	return &SubscriberService{db: db}
}

// ListSubscribers returns the full newsletter list, oldest first.
func (s *SubscriberService) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, email, created_at
		FROM subscribers
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, domain.Internal(err, "subscriber.list", "failed to list subscribers")
	}
	defer rows.Close()

	subscribers := []domain.Subscriber{}
	for rows.Next() {
		var sub domain.Subscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.CreatedAt); err != nil {
			return nil, domain.Internal(err, "subscriber.list", "failed to scan subscriber row")
		}
		subscribers = append(subscribers, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "subscriber.list", "failed to read subscriber rows")
	}

	return subscribers, nil
}

// Subscribe adds an email to the list. Emails are stored lowercased so the
// unique index catches case-variant duplicates.
func (s *SubscriberService) Subscribe(ctx context.Context, input domain.SubscriberInput) (*domain.Subscriber, error) {
	if err := domain.Validate("subscriber.subscribe", input); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	row := s.db.QueryRow(ctx, `
		INSERT INTO subscribers (email)
		VALUES ($1)
		RETURNING id, email, created_at`, email)

	var sub domain.Subscriber
	if err := row.Scan(&sub.ID, &sub.Email, &sub.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrSubscriberExists
		}
		return nil, domain.Internal(err, "subscriber.subscribe", "failed to create subscriber")
	}

	return &sub, nil
}

// Unsubscribe removes an email from the list. Removing an address that is
// not on the list is a no-op.
func (s *SubscriberService) Unsubscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := s.db.Exec(ctx, `DELETE FROM subscribers WHERE email = $1`, email)
	if err != nil {
		return domain.Internal(err, "subscriber.unsubscribe", "failed to delete subscriber")
	}

	return nil
}

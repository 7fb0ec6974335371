package domain

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

var ErrSubscriberExists = &Error{Code: ECONFLICT, Message: "Email is already subscribed"}

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID        pgtype.UUID
	Email     string
	CreatedAt pgtype.Timestamptz
}

// SubscriberInput carries a validated newsletter signup.
type SubscriberInput struct {
	Email string `validate:"required,email,max=320"`
}

// SubscriberService manages the newsletter list.
type SubscriberService interface {
	ListSubscribers(ctx context.Context) ([]Subscriber, error)

	// Subscribe adds an email to the list. Subscribing an address that is
	// already on the list returns ErrSubscriberExists.
	Subscribe(ctx context.Context, input SubscriberInput) (*Subscriber, error)

	Unsubscribe(ctx context.Context, email string) error
}

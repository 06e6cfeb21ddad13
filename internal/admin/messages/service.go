// Package messages exposes the contact-form inbox for the admin console.
package messages

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured indicates the messages service dependency has not been provided.
var ErrNotConfigured = errors.New("messages service not configured")

// Service defines inbox access for the back office.
type Service interface {
	// List returns a paginated set of messages, newest first.
	List(ctx context.Context, token string, query Query) (ListResult, error)

	// MarkRead flags a message as read and returns the updated message.
	MarkRead(ctx context.Context, token, messageID string) (*Message, error)

	// Delete removes a message. The endpoint returns no payload;
	// callers refetch the list afterwards.
	Delete(ctx context.Context, token, messageID string) error
}

// Query captures filters and pagination arguments for the inbox.
type Query struct {
	Page       int
	Limit      int
	UnreadOnly bool
}

// ListResult is one page of messages.
type ListResult struct {
	Messages []Message `json:"messages"`
	Total    int       `json:"total"`
	Unread   int       `json:"unread"`
	Page     int       `json:"page"`
	Pages    int       `json:"pages"`
}

// Message is one contact-form submission.
type Message struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	Read       bool      `json:"read"`
	ReceivedAt time.Time `json:"receivedAt"`
}

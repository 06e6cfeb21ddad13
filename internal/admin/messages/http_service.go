package messages

import (
	"context"
	"net/url"
	"path"
	"strconv"

	"github.com/skh121/merobazaar-web/internal/api"
)

// HTTPService implements Service backed by the backend's admin message
// endpoints.
type HTTPService struct {
	client *api.Client
}

// NewHTTPService constructs a Service over the shared API client.
func NewHTTPService(client *api.Client) *HTTPService {
	return &HTTPService{client: client}
}

// List returns a paginated set of messages.
func (s *HTTPService) List(ctx context.Context, token string, query Query) (ListResult, error) {
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.UnreadOnly {
		values.Set("unread", "true")
	}

	var payload ListResult
	if err := s.client.Get(ctx, "/admin/messages", token, values, &payload); err != nil {
		return ListResult{}, err
	}
	return payload, nil
}

// MarkRead flags a message as read.
func (s *HTTPService) MarkRead(ctx context.Context, token, messageID string) (*Message, error) {
	endpoint := path.Join("/admin/messages", url.PathEscape(messageID), "read")
	var payload Message
	if err := s.client.Patch(ctx, endpoint, token, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Delete removes a message.
func (s *HTTPService) Delete(ctx context.Context, token, messageID string) error {
	endpoint := path.Join("/admin/messages", url.PathEscape(messageID))
	return s.client.Delete(ctx, endpoint, token, nil)
}

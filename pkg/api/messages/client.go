package messages

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/corkroom/client-go/pkg/api"
)

const defaultLimit = 50

type Client interface {
	ListByRoom(ctx context.Context, roomID int64, opts ListOptions) ([]Message, error)
	Get(ctx context.Context, id int64) (Message, error)
	Create(ctx context.Context, roomID int64, in MessageCreate) (Message, error)
	Delete(ctx context.Context, id int64) error
}

type client struct {
	api *api.Client
}

func New(core *api.Client) Client {
	return &client{api: core}
}

// ListByRoom — порядок выдачи определяет сервер (ожидаемо хронологический,
// но это его контракт, не наш).
func (c *client) ListByRoom(ctx context.Context, roomID int64, opts ListOptions) ([]Message, error) {
	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}
	query := url.Values{}
	query.Set("limit", strconv.Itoa(opts.Limit))
	query.Set("skip", strconv.Itoa(opts.Skip))

	var out []Message
	if err := c.api.Get(ctx, fmt.Sprintf("/rooms/%d/messages", roomID), query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) Get(ctx context.Context, id int64) (Message, error) {
	var out Message
	if err := c.api.Get(ctx, fmt.Sprintf("/messages/%d", id), nil, &out); err != nil {
		return Message{}, err
	}
	return out, nil
}

func (c *client) Create(ctx context.Context, roomID int64, in MessageCreate) (Message, error) {
	var out Message
	if err := c.api.Post(ctx, fmt.Sprintf("/rooms/%d/messages", roomID), in, &out); err != nil {
		return Message{}, err
	}
	return out, nil
}

func (c *client) Delete(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("/messages/%d", id))
}

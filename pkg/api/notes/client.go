package notes

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/corkroom/client-go/pkg/api"
)

const defaultLimit = 100

type Client interface {
	ListByRoom(ctx context.Context, roomID int64, opts ListOptions) ([]Note, error)
	Get(ctx context.Context, id int64) (Note, error)
	Create(ctx context.Context, roomID int64, in NoteCreate) (Note, error)
	Update(ctx context.Context, id int64, in NoteUpdate) (Note, error)
	Delete(ctx context.Context, id int64) error
}

type client struct {
	api *api.Client
}

func New(core *api.Client) Client {
	return &client{api: core}
}

func (c *client) ListByRoom(ctx context.Context, roomID int64, opts ListOptions) ([]Note, error) {
	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}
	query := url.Values{}
	query.Set("limit", strconv.Itoa(opts.Limit))
	query.Set("skip", strconv.Itoa(opts.Skip))

	var out []Note
	if err := c.api.Get(ctx, fmt.Sprintf("/rooms/%d/notes", roomID), query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) Get(ctx context.Context, id int64) (Note, error) {
	var out Note
	if err := c.api.Get(ctx, fmt.Sprintf("/notes/%d", id), nil, &out); err != nil {
		return Note{}, err
	}
	return out, nil
}

func (c *client) Create(ctx context.Context, roomID int64, in NoteCreate) (Note, error) {
	var out Note
	if err := c.api.Post(ctx, fmt.Sprintf("/rooms/%d/notes", roomID), in, &out); err != nil {
		return Note{}, err
	}
	return out, nil
}

func (c *client) Update(ctx context.Context, id int64, in NoteUpdate) (Note, error) {
	var out Note
	if err := c.api.Patch(ctx, fmt.Sprintf("/notes/%d", id), in, &out); err != nil {
		return Note{}, err
	}
	return out, nil
}

func (c *client) Delete(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("/notes/%d", id))
}

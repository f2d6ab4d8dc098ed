package rooms

import (
	"context"
	"fmt"

	"github.com/corkroom/client-go/pkg/api"
)

type Client interface {
	List(ctx context.Context) ([]Room, error)
	Get(ctx context.Context, id int64) (Room, error)
	Create(ctx context.Context, in RoomCreate) (Room, error)
	Update(ctx context.Context, id int64, in RoomUpdate) (Room, error)
	Delete(ctx context.Context, id int64) error
}

type client struct {
	api *api.Client
}

func New(core *api.Client) Client {
	return &client{api: core}
}

// List — порядок комнат определяет сервер.
func (c *client) List(ctx context.Context) ([]Room, error) {
	var out []Room
	if err := c.api.Get(ctx, "/rooms/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) Get(ctx context.Context, id int64) (Room, error) {
	var out Room
	if err := c.api.Get(ctx, fmt.Sprintf("/rooms/%d", id), nil, &out); err != nil {
		return Room{}, err
	}
	return out, nil
}

func (c *client) Create(ctx context.Context, in RoomCreate) (Room, error) {
	var out Room
	if err := c.api.Post(ctx, "/rooms/", in, &out); err != nil {
		return Room{}, err
	}
	return out, nil
}

func (c *client) Update(ctx context.Context, id int64, in RoomUpdate) (Room, error) {
	var out Room
	if err := c.api.Patch(ctx, fmt.Sprintf("/rooms/%d", id), in, &out); err != nil {
		return Room{}, err
	}
	return out, nil
}

func (c *client) Delete(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("/rooms/%d", id))
}

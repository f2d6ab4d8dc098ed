package auth

import (
	"context"
	"net/url"

	"github.com/corkroom/client-go/pkg/api"
)

type Client interface {
	Register(ctx context.Context, in RegisterData) (User, error)
	Login(ctx context.Context, in LoginCredentials) (AuthResponse, error)
	CurrentUser(ctx context.Context) (User, error)
	Logout() error
}

type client struct {
	api *api.Client
}

func New(core *api.Client) Client {
	return &client{api: core}
}

func (c *client) Register(ctx context.Context, in RegisterData) (User, error) {
	var out User
	if err := c.api.Post(ctx, "/auth/register", in, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// Login шлёт креденшелы form-encoded и при успехе кладёт access_token
// в стор — дальше bearer подставляется во все запросы сам.
func (c *client) Login(ctx context.Context, in LoginCredentials) (AuthResponse, error) {
	form := url.Values{}
	form.Set("username", in.Username)
	form.Set("password", in.Password)

	var out AuthResponse
	if err := c.api.PostForm(ctx, "/auth/login", form, &out); err != nil {
		return AuthResponse{}, err
	}
	if out.AccessToken != "" {
		_ = c.api.Store().SetToken(out.AccessToken)
	}
	return out, nil
}

func (c *client) CurrentUser(ctx context.Context) (User, error) {
	var out User
	if err := c.api.Get(ctx, "/auth/me", nil, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// Logout локальный: чистим стор, на сервер не ходим.
func (c *client) Logout() error {
	return c.api.Store().Clear()
}

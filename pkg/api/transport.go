package api

import (
	"net/http"

	"github.com/corkroom/client-go/pkg/session"

	"github.com/google/uuid"
)

// Кросс-срезовое поведение клиента — явная цепочка middleware вокруг
// RoundTripper, по аналогии с chi r.Use: первый в списке — внешний.
type middleware func(next http.RoundTripper) http.RoundTripper

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func chain(base http.RoundTripper, mws ...middleware) http.RoundTripper {
	rt := base
	for i := len(mws) - 1; i >= 0; i-- {
		rt = mws[i](rt)
	}
	return rt
}

const headerRequestID = "X-Request-ID"

// withRequestID — пробрасывает/генерирует X-Request-ID.
func withRequestID() middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if r.Header.Get(headerRequestID) == "" {
				r = r.Clone(r.Context())
				r.Header.Set(headerRequestID, uuid.NewString())
			}
			return next.RoundTrip(r)
		})
	}
}

// withBearer — вкладывает "Authorization: Bearer <access_token>", если токен
// есть в сторе. Нет токена — запрос уходит неаутентифицированным.
func withBearer(store session.Store) middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if token, ok := store.Token(); ok {
				r = r.Clone(r.Context())
				r.Header.Set("Authorization", "Bearer "+token)
			}
			return next.RoundTrip(r)
		})
	}
}

// withSessionGuard — на 401 чистит стор (один раз на ответ) и дергает
// onExpired; сам ответ уходит выше без изменений, ошибку отдаёт вызывающий
// слой. nil onExpired — неинтерактивный контекст, редиректить некуда.
func withSessionGuard(store session.Store, onExpired func()) middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripFunc(func(r *http.Request) (*http.Response, error) {
			resp, err := next.RoundTrip(r)
			if err != nil {
				return nil, err
			}
			if resp.StatusCode == http.StatusUnauthorized {
				_ = store.Clear()
				if onExpired != nil {
					onExpired()
				}
			}
			return resp, nil
		})
	}
}

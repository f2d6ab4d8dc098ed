package notes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/corkroom/client-go/pkg/api"
	"github.com/corkroom/client-go/pkg/session"

	"github.com/go-chi/chi/v5"
)

func newBackend(t *testing.T, r http.Handler) Client {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	core, err := api.New(api.Options{BaseURL: srv.URL, Store: session.NewMemoryStore()})
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}
	return New(core)
}

const noteJSON = `{"id":8,"content":"todo","position_x":10.5,"position_y":20,"color":"#ffeb3b","room_id":5,"user_id":1,"created_at":"2025-06-01T10:00:00+00:00","updated_at":"2025-06-01T10:00:00+00:00"}`

func TestListByRoomDefaultPaging(t *testing.T) {
	var query string
	r := chi.NewRouter()
	r.Get("/api/rooms/{id}/notes", func(w http.ResponseWriter, req *http.Request) {
		query = req.URL.RawQuery
		w.Write([]byte(`[` + noteJSON + `]`))
	})

	c := newBackend(t, r)
	list, err := c.ListByRoom(context.Background(), 5, ListOptions{})
	if err != nil {
		t.Fatalf("ListByRoom: %v", err)
	}
	// у заметок дефолтная страница больше, чем у сообщений
	if query != "limit=100&skip=0" {
		t.Fatalf("query = %q, want limit=100&skip=0", query)
	}
	if len(list) != 1 || list[0].PositionX != 10.5 || list[0].Color != "#ffeb3b" {
		t.Fatalf("list = %+v", list)
	}
}

func TestListByRoomExplicitPaging(t *testing.T) {
	var query string
	r := chi.NewRouter()
	r.Get("/api/rooms/{id}/notes", func(w http.ResponseWriter, req *http.Request) {
		query = req.URL.RawQuery
		w.Write([]byte(`[]`))
	})

	c := newBackend(t, r)
	if _, err := c.ListByRoom(context.Background(), 5, ListOptions{Limit: 10, Skip: 20}); err != nil {
		t.Fatalf("ListByRoom: %v", err)
	}
	if query != "limit=10&skip=20" {
		t.Fatalf("query = %q", query)
	}
}

func TestCreateWithoutPlacement(t *testing.T) {
	var body []byte
	r := chi.NewRouter()
	r.Post("/api/rooms/{id}/notes", func(w http.ResponseWriter, req *http.Request) {
		body, _ = io.ReadAll(req.Body)
		w.Write([]byte(noteJSON))
	})

	c := newBackend(t, r)
	n, err := c.Create(context.Background(), 5, NoteCreate{Content: "todo"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// позиция и цвет не заданы — дефолты назначит сервер
	if want := `{"content":"todo"}`; string(body) != want {
		t.Fatalf("body = %s", body)
	}
	if n.ID != 8 {
		t.Fatalf("note = %+v", n)
	}
}

func TestUpdateMovesNoteOnly(t *testing.T) {
	var body []byte
	r := chi.NewRouter()
	r.Patch("/api/notes/{id}", func(w http.ResponseWriter, req *http.Request) {
		body, _ = io.ReadAll(req.Body)
		w.Write([]byte(noteJSON))
	})

	c := newBackend(t, r)
	x, y := 12.5, 7.0
	if _, err := c.Update(context.Background(), 8, NoteUpdate{PositionX: &x, PositionY: &y}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	// контент и цвет не трогали — их ключей в patch нет
	if want := `{"position_x":12.5,"position_y":7}`; string(body) != want {
		t.Fatalf("body = %s, want %s", body, want)
	}
}

func TestDelete(t *testing.T) {
	var path string
	r := chi.NewRouter()
	r.Delete("/api/notes/{id}", func(w http.ResponseWriter, req *http.Request) {
		path = req.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	c := newBackend(t, r)
	if err := c.Delete(context.Background(), 8); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if path != "/api/notes/8" {
		t.Fatalf("path = %s", path)
	}
}

func TestUpdateRecolor(t *testing.T) {
	var body []byte
	r := chi.NewRouter()
	r.Patch("/api/notes/{id}", func(w http.ResponseWriter, req *http.Request) {
		body, _ = io.ReadAll(req.Body)
		w.Write([]byte(noteJSON))
	})

	c := newBackend(t, r)
	color := "#4caf50"
	if _, err := c.Update(context.Background(), 8, NoteUpdate{Color: &color}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if want := `{"color":"#4caf50"}`; string(body) != want {
		t.Fatalf("body = %s", body)
	}
}

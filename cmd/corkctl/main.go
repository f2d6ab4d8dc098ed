// corkctl — консольный клиент corkroom: авторизация, комнаты,
// сообщения и стикеры через HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/corkroom/client-go/internal/config"
	"github.com/corkroom/client-go/pkg/api"
	"github.com/corkroom/client-go/pkg/api/auth"
	"github.com/corkroom/client-go/pkg/api/messages"
	"github.com/corkroom/client-go/pkg/api/notes"
	"github.com/corkroom/client-go/pkg/api/rooms"
	"github.com/corkroom/client-go/pkg/logger"
	"github.com/corkroom/client-go/pkg/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: corkctl <command> [args]

  health
  register <email> <password> [full name]
  login <username> <password>
  me
  logout
  rooms
  room-create <name> [description]
  room-del <id>
  messages <room-id> [limit [skip]]
  send <room-id> <text>
  notes <room-id>
  note-add <room-id> <text>
  note-move <note-id> <x> <y>`)
	os.Exit(2)
}

type app struct {
	core     *api.Client
	auth     auth.Client
	rooms    rooms.Client
	messages messages.Client
	notes    notes.Client
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
	}

	// 1) .env + config
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		println("failed to load config:", err.Error())
		os.Exit(1)
	}

	// 2) init logger (set default)
	logger.Init(logger.Config{
		Env:       logger.Env(cfg.Logging.Env),
		Service:   cfg.Logging.Service,
		Version:   cfg.Logging.Version,
		Backend:   logger.Backend(cfg.Logging.Backend),
		AddSource: cfg.Logging.AddSource,
		Debug:     cfg.Logging.Debug,
	})

	// 3) стор токена — файл, чтобы сессия жила между запусками
	store, err := session.NewFileStore(cfg.Session.TokenDir)
	if err != nil {
		slog.Error("session store init failed", "err", err)
		os.Exit(1)
	}

	// 4) ядро клиента + фасады
	core, err := api.New(api.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Store:   store,
		OnSessionExpired: func() {
			// CLI редиректить некуда — просто говорим, что сессия кончилась
			fmt.Fprintln(os.Stderr, "session expired, run `corkctl login` again")
		},
	})
	if err != nil {
		slog.Error("api client init failed", "err", err)
		os.Exit(1)
	}

	a := &app{
		core:     core,
		auth:     auth.New(core),
		rooms:    rooms.New(core),
		messages: messages.New(core),
		notes:    notes.New(core),
	}

	ctx := context.Background()
	if err := a.run(ctx, args[0], args[1:]); err != nil {
		slog.Error("command failed", "cmd", args[0], "err", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "health":
		hs, err := a.core.Health(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s, up %.0fs\n", hs.Service, hs.Status, hs.UptimeSeconds)
		return nil

	case "register":
		if len(args) < 2 {
			usage()
		}
		in := auth.RegisterData{Email: args[0], Password: args[1]}
		if len(args) > 2 {
			in.FullName = &args[2]
		}
		u, err := a.auth.Register(ctx, in)
		if err != nil {
			return err
		}
		fmt.Printf("registered user %d (%s)\n", u.ID, u.Email)
		return nil

	case "login":
		if len(args) < 2 {
			usage()
		}
		out, err := a.auth.Login(ctx, auth.LoginCredentials{Username: args[0], Password: args[1]})
		if err != nil {
			return err
		}
		fmt.Println("logged in,", out.TokenType, "token stored")
		printExpiry(out.AccessToken)
		return nil

	case "me":
		u, err := a.auth.CurrentUser(ctx)
		if err != nil {
			return err
		}
		name := u.Email
		if u.FullName != nil {
			name = *u.FullName
		}
		fmt.Printf("#%d %s <%s> active=%v\n", u.ID, name, u.Email, u.IsActive)
		return nil

	case "logout":
		if err := a.auth.Logout(); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil

	case "rooms":
		list, err := a.rooms.List(ctx)
		if err != nil {
			return err
		}
		for _, r := range list {
			desc := ""
			if r.Description != nil {
				desc = " — " + *r.Description
			}
			fmt.Printf("#%d %s%s\n", r.ID, r.Name, desc)
		}
		return nil

	case "room-create":
		if len(args) < 1 {
			usage()
		}
		in := rooms.RoomCreate{Name: args[0]}
		if len(args) > 1 {
			in.Description = &args[1]
		}
		r, err := a.rooms.Create(ctx, in)
		if err != nil {
			return err
		}
		fmt.Printf("created room #%d %s\n", r.ID, r.Name)
		return nil

	case "room-del":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		if err := a.rooms.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Println("room deleted")
		return nil

	case "messages":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		var opts messages.ListOptions
		if len(args) > 1 {
			opts.Limit, _ = strconv.Atoi(args[1])
		}
		if len(args) > 2 {
			opts.Skip, _ = strconv.Atoi(args[2])
		}
		list, err := a.messages.ListByRoom(ctx, id, opts)
		if err != nil {
			return err
		}
		for _, m := range list {
			fmt.Printf("[%s] user %d: %s\n", m.CreatedAt.Format("15:04:05"), m.UserID, m.Content)
		}
		return nil

	case "send":
		if len(args) < 2 {
			usage()
		}
		id, err := parseID(args)
		if err != nil {
			return err
		}
		m, err := a.messages.Create(ctx, id, messages.MessageCreate{Content: args[1]})
		if err != nil {
			return err
		}
		fmt.Printf("sent message #%d\n", m.ID)
		return nil

	case "notes":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		list, err := a.notes.ListByRoom(ctx, id, notes.ListOptions{})
		if err != nil {
			return err
		}
		for _, n := range list {
			fmt.Printf("#%d (%.0f,%.0f) %s: %s\n", n.ID, n.PositionX, n.PositionY, n.Color, n.Content)
		}
		return nil

	case "note-add":
		if len(args) < 2 {
			usage()
		}
		id, err := parseID(args)
		if err != nil {
			return err
		}
		n, err := a.notes.Create(ctx, id, notes.NoteCreate{Content: args[1]})
		if err != nil {
			return err
		}
		fmt.Printf("created note #%d\n", n.ID)
		return nil

	case "note-move":
		if len(args) < 3 {
			usage()
		}
		id, err := parseID(args)
		if err != nil {
			return err
		}
		x, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("bad x: %w", err)
		}
		y, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("bad y: %w", err)
		}
		n, err := a.notes.Update(ctx, id, notes.NoteUpdate{PositionX: &x, PositionY: &y})
		if err != nil {
			return err
		}
		fmt.Printf("note #%d now at (%.0f,%.0f)\n", n.ID, n.PositionX, n.PositionY)
		return nil

	default:
		usage()
		return nil
	}
}

func parseID(args []string) (int64, error) {
	if len(args) < 1 {
		usage()
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad id %q: %w", args[0], err)
	}
	return id, nil
}

// Токен сервера — JWT; показываем exp без проверки подписи, ключ знает
// только сервер.
func printExpiry(token string) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}
	fmt.Printf("token expires %s\n", exp.Time.Format("2006-01-02 15:04:05 MST"))
}

// Package realtime — контракт конвертов, которыми обменивается
// realtime-канал комнаты. Только формы данных: доставкой (websocket,
// reconnect, heartbeat) занимается другой слой.
package realtime

import (
	"encoding/json"
	"fmt"

	"github.com/corkroom/client-go/pkg/api/auth"
	"github.com/corkroom/client-go/pkg/api/notes"
)

// Типы событий канала. Набор закрытый.
const (
	TypeMessage = "message" // чат-сообщение в комнате
	TypeNote    = "note"    // создание/изменение/удаление стикера
	TypeTyping  = "typing"  // индикатор набора текста
	TypeJoin    = "join"    // пользователь вошёл в комнату
	TypeLeave   = "leave"   // пользователь вышел
	TypePing    = "ping"    // heartbeat от клиента
	TypePong    = "pong"    // ответ сервера на ping
	TypeError   = "error"   // ошибка уровня канала
)

// Event — общий конверт. Data — полезная нагрузка, форма зависит от Type;
// декодится типизированными методами ниже. Timestamp приходит naive ISO 8601
// без зоны, поэтому строка, а не time.Time.
type Event struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	UserID    int64           `json:"user_id,omitempty"`
	UserEmail string          `json:"user_email,omitempty"`
	UserName  string          `json:"user_name,omitempty"`
	RoomID    int64           `json:"room_id,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
}

// KnownType — входит ли тег в закрытый набор.
func KnownType(t string) bool {
	switch t {
	case TypeMessage, TypeNote, TypeTyping, TypeJoin, TypeLeave, TypePing, TypePong, TypeError:
		return true
	default:
		return false
	}
}

// MessagePayload — данные события message. ID и User появляются после
// того, как сервер сохранил сообщение.
type MessagePayload struct {
	ID      int64      `json:"id,omitempty"`
	Content string     `json:"content"`
	User    *auth.User `json:"user,omitempty"`
}

// Действия над стикером внутри события note.
const (
	NoteActionCreate = "create"
	NoteActionUpdate = "update"
	NoteActionDelete = "delete"
)

type NotePayload struct {
	notes.Note
	Action string `json:"action"`
}

type TypingPayload struct {
	User     string `json:"user"`
	IsTyping bool   `json:"is_typing"`
}

// PresencePayload — данные join/leave.
type PresencePayload struct {
	UserID      int64  `json:"user_id"`
	UserEmail   string `json:"user_email"`
	UserName    string `json:"user_name"`
	RoomID      int64  `json:"room_id"`
	ActiveUsers int    `json:"active_users"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func (e *Event) MessageData() (MessagePayload, error) {
	var out MessagePayload
	if err := e.decodeAs(TypeMessage, &out); err != nil {
		return MessagePayload{}, err
	}
	return out, nil
}

func (e *Event) NoteData() (NotePayload, error) {
	var out NotePayload
	if err := e.decodeAs(TypeNote, &out); err != nil {
		return NotePayload{}, err
	}
	return out, nil
}

func (e *Event) TypingData() (TypingPayload, error) {
	var out TypingPayload
	if err := e.decodeAs(TypeTyping, &out); err != nil {
		return TypingPayload{}, err
	}
	return out, nil
}

// PresenceData валиден и для join, и для leave.
func (e *Event) PresenceData() (PresencePayload, error) {
	var out PresencePayload
	switch e.Type {
	case TypeJoin, TypeLeave:
	default:
		return PresencePayload{}, fmt.Errorf("realtime: event type %q carries no presence data", e.Type)
	}
	if err := json.Unmarshal(e.Data, &out); err != nil {
		return PresencePayload{}, fmt.Errorf("realtime: decode %s data: %w", e.Type, err)
	}
	return out, nil
}

func (e *Event) ErrorData() (ErrorPayload, error) {
	var out ErrorPayload
	if err := e.decodeAs(TypeError, &out); err != nil {
		return ErrorPayload{}, err
	}
	return out, nil
}

func (e *Event) decodeAs(want string, out any) error {
	if e.Type != want {
		return fmt.Errorf("realtime: event type %q, want %q", e.Type, want)
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return fmt.Errorf("realtime: decode %s data: %w", want, err)
	}
	return nil
}

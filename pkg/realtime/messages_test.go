package realtime

import (
	"encoding/json"
	"testing"
)

func TestDecodeJoinEvent(t *testing.T) {
	raw := `{
		"type": "join",
		"data": {"user_id":2,"user_email":"a@x.io","user_name":"Alice","room_id":5,"active_users":3},
		"timestamp": "2025-06-01T10:00:00.123456"
	}`

	var e Event
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Type != TypeJoin {
		t.Fatalf("type = %q", e.Type)
	}
	p, err := e.PresenceData()
	if err != nil {
		t.Fatalf("PresenceData: %v", err)
	}
	if p.UserID != 2 || p.UserName != "Alice" || p.ActiveUsers != 3 || p.RoomID != 5 {
		t.Fatalf("payload = %+v", p)
	}
	// таймстемп канала без зоны — остаётся строкой
	if e.Timestamp != "2025-06-01T10:00:00.123456" {
		t.Fatalf("timestamp = %q", e.Timestamp)
	}
}

func TestDecodeNoteEventWithAction(t *testing.T) {
	raw := `{
		"type": "note",
		"data": {"id":8,"content":"todo","position_x":10.5,"position_y":20,"color":"#ffeb3b","room_id":5,"user_id":1,"created_at":"2025-06-01T10:00:00+00:00","updated_at":"2025-06-01T10:05:00+00:00","action":"update"},
		"user_id": 1,
		"room_id": 5,
		"timestamp": "2025-06-01T10:05:00"
	}`

	var e Event
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	p, err := e.NoteData()
	if err != nil {
		t.Fatalf("NoteData: %v", err)
	}
	if p.Action != NoteActionUpdate {
		t.Fatalf("action = %q", p.Action)
	}
	if p.ID != 8 || p.PositionX != 10.5 || p.Color != "#ffeb3b" {
		t.Fatalf("note = %+v", p.Note)
	}
}

func TestDecodeTypingAndMessage(t *testing.T) {
	var e Event
	if err := json.Unmarshal([]byte(`{"type":"typing","data":{"user":"alice","is_typing":true}}`), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	tp, err := e.TypingData()
	if err != nil {
		t.Fatalf("TypingData: %v", err)
	}
	if tp.User != "alice" || !tp.IsTyping {
		t.Fatalf("payload = %+v", tp)
	}

	if err := json.Unmarshal([]byte(`{"type":"message","data":{"content":"hi"}}`), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	mp, err := e.MessageData()
	if err != nil {
		t.Fatalf("MessageData: %v", err)
	}
	if mp.Content != "hi" || mp.ID != 0 || mp.User != nil {
		t.Fatalf("payload = %+v", mp)
	}
}

func TestDecodeTagMismatch(t *testing.T) {
	e := Event{Type: TypePing}
	if _, err := e.NoteData(); err == nil {
		t.Fatal("ping event must not decode as note")
	}
	if _, err := e.PresenceData(); err == nil {
		t.Fatal("ping event must not decode as presence")
	}
}

func TestKnownType(t *testing.T) {
	for _, tag := range []string{TypeMessage, TypeNote, TypeTyping, TypeJoin, TypeLeave, TypePing, TypePong, TypeError} {
		if !KnownType(tag) {
			t.Fatalf("%q must be known", tag)
		}
	}
	if KnownType("snapshot") {
		t.Fatal("набор тегов закрытый")
	}
}

func TestErrorEvent(t *testing.T) {
	var e Event
	if err := json.Unmarshal([]byte(`{"type":"error","data":{"message":"Invalid JSON format"}}`), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	p, err := e.ErrorData()
	if err != nil {
		t.Fatalf("ErrorData: %v", err)
	}
	if p.Message != "Invalid JSON format" {
		t.Fatalf("payload = %+v", p)
	}
}

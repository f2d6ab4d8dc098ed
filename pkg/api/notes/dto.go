package notes

import "time"

// Note — стикер на доске комнаты: контент, 2D-позиция и цвет.
type Note struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	PositionX float64   `json:"position_x"`
	PositionY float64   `json:"position_y"`
	Color     string    `json:"color"`
	RoomID    int64     `json:"room_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Позиция и цвет опциональны: пропущенные поля получают дефолты на сервере.
type NoteCreate struct {
	Content   string   `json:"content"`
	PositionX *float64 `json:"position_x,omitempty"`
	PositionY *float64 `json:"position_y,omitempty"`
	Color     *string  `json:"color,omitempty"`
}

// NoteUpdate — patch: nil-поля в тело не попадают.
type NoteUpdate struct {
	Content   *string  `json:"content,omitempty"`
	PositionX *float64 `json:"position_x,omitempty"`
	PositionY *float64 `json:"position_y,omitempty"`
	Color     *string  `json:"color,omitempty"`
}

// ListOptions — limit/skip страницы; нулевой Limit — 100 заметок.
type ListOptions struct {
	Limit int
	Skip  int
}

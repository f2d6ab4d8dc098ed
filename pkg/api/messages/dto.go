package messages

import "time"

type Message struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	RoomID    int64     `json:"room_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageCreate — только контент; id, автора и время назначает сервер.
type MessageCreate struct {
	Content string `json:"content"`
}

// ListOptions — limit/skip страницы. Нулевой Limit — дефолт сервера-клиента
// (50 сообщений). Состояние пагинации между вызовами не хранится.
type ListOptions struct {
	Limit int
	Skip  int
}

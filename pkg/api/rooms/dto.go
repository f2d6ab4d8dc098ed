package rooms

import "time"

type Room struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type RoomCreate struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// RoomUpdate — patch: nil-поля в тело не попадают, сервер их не трогает.
type RoomUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Package session хранит access_token между вызовами клиента.
package session

import "sync"

// Store — единственный общий мутабельный ресурс клиента.
// Запись last-writer-wins; конкурентные login/logout не сериализуются здесь.
type Store interface {
	Token() (string, bool)
	SetToken(token string) error
	Clear() error
}

type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

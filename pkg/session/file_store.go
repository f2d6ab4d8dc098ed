package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Имя слота то же, что ключ в localStorage у веб-клиента.
const tokenFileName = "access_token"

// FileStore — токен в файле; аналог localStorage для CLI и демонов.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore кладёт токен в dir/access_token.
// Пустой dir — каталог corkroom внутри os.UserConfigDir.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("file store: resolve config dir: %w", err)
		}
		dir = filepath.Join(base, "corkroom")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("file store: mkdir: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, tokenFileName)}, nil
}

func (s *FileStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	return token, token != ""
}

func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("file store: write token: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("file store: remove token: %w", err)
	}
	return nil
}

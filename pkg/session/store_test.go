package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.Token(); ok {
		t.Fatal("fresh store must be empty")
	}

	if err := s.SetToken("abc"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	token, ok := s.Token()
	if !ok || token != "abc" {
		t.Fatalf("token = %q, %v", token, ok)
	}

	// last-writer-wins
	s.SetToken("def")
	if token, _ := s.Token(); token != "def" {
		t.Fatalf("token = %q, want def", token)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := s.Token(); ok {
		t.Fatal("token survived Clear")
	}
	// повторный Clear — не ошибка
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if _, ok := s.Token(); ok {
		t.Fatal("fresh store must be empty")
	}

	if err := s.SetToken("jwt-abc"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	token, ok := s.Token()
	if !ok || token != "jwt-abc" {
		t.Fatalf("token = %q, %v", token, ok)
	}

	// слот называется так же, как ключ у веб-клиента
	if _, err := os.Stat(filepath.Join(dir, "access_token")); err != nil {
		t.Fatalf("token file: %v", err)
	}

	// второй стор над тем же каталогом видит токен
	s2, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if token, _ := s2.Token(); token != "jwt-abc" {
		t.Fatalf("token via second store = %q", token)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := s2.Token(); ok {
		t.Fatal("token survived Clear")
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear of empty store: %v", err)
	}
}

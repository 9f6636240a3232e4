package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalSessionStorage хранит снапшот сессии в JSON-файле.
type LocalSessionStorage struct {
	path string
}

func NewLocalSessionStorage(path string) *LocalSessionStorage {
	return &LocalSessionStorage{path: path}
}

func (s *LocalSessionStorage) Save(snapshot *SessionSnapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	// 0600: в файле лежит токен сессии
	return os.WriteFile(s.path, data, 0o600)
}

func (s *LocalSessionStorage) Load() (*SessionSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var snapshot SessionSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}
	if snapshot.User == nil || snapshot.Token == "" {
		// Поврежденный или неполный снапшот равносилен его отсутствию
		return nil, nil
	}
	return &snapshot, nil
}

func (s *LocalSessionStorage) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

package storage

// MemorySessionStorage держит снапшот в памяти. Используется в тестах
// и когда персистентность сессии выключена.
type MemorySessionStorage struct {
	snapshot *SessionSnapshot
}

func NewMemorySessionStorage() *MemorySessionStorage {
	return &MemorySessionStorage{}
}

func (s *MemorySessionStorage) Save(snapshot *SessionSnapshot) error {
	s.snapshot = snapshot
	return nil
}

func (s *MemorySessionStorage) Load() (*SessionSnapshot, error) {
	return s.snapshot, nil
}

func (s *MemorySessionStorage) Clear() error {
	s.snapshot = nil
	return nil
}

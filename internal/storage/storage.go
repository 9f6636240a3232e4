package storage

import "jobboard_backend/internal/models"

// SessionSnapshot - единственное состояние, переживающее перезапуск процесса:
// запись текущего актора и непрозрачный токен. Данные вакансий и откликов
// эфемерны и пересоздаются из seed-данных.
type SessionSnapshot struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// SessionStorage - бэкенд для сохранения сессии между запусками.
type SessionStorage interface {
	// Save перезаписывает снапшот сессии.
	Save(snapshot *SessionSnapshot) error
	// Load возвращает сохраненный снапшот или (nil, nil), если его нет.
	Load() (*SessionSnapshot, error)
	// Clear удаляет снапшот; отсутствие снапшота не ошибка.
	Clear() error
}

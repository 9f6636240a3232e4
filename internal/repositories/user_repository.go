package repositories

import (
	"errors"
	"strings"
	"sync"
	"time"

	"jobboard_backend/internal/models"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository - in-memory хранилище пользователей.
// Email нормализуется (trim + lower) и уникален.
type UserRepository struct {
	mu      sync.RWMutex
	users   map[string]*models.User
	byEmail map[string]string // нормализованный email -> user id
	order   []string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:   make(map[string]*models.User),
		byEmail: make(map[string]string),
	}
}

// NormalizeEmail приводит email к каноничной форме для сравнения.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create сохраняет нового пользователя. ID назначается здесь,
// если не задан заранее (seed-данные задают свои id).
func (r *UserRepository) Create(u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := NormalizeEmail(u.Email)
	if _, exists := r.byEmail[key]; exists {
		return ErrUserAlreadyExists
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	clone := *u
	r.users[clone.ID] = &clone
	r.byEmail[key] = clone.ID
	r.order = append(r.order, clone.ID)
	return nil
}

func (r *UserRepository) FindByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[NormalizeEmail(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	clone := *r.users[id]
	return &clone, nil
}

// UpdateLocation меняет только поле location пользователя.
func (r *UserRepository) UpdateLocation(id, location string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}
	u.Location = location
	return nil
}

// Count возвращает число зарегистрированных пользователей.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

package repositories

import (
	"errors"
	"sync"
	"time"

	"jobboard_backend/internal/models"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists")
)

// ApplicationRepository - in-memory хранилище откликов.
// Инвариант: не больше одного отклика на пару (job, seeker).
type ApplicationRepository struct {
	mu     sync.RWMutex
	apps   map[string]*models.JobApplication
	byPair map[pairKey]string // (jobID, seekerID) -> application id
	order  []string
}

type pairKey struct {
	jobID    string
	seekerID string
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{
		apps:   make(map[string]*models.JobApplication),
		byPair: make(map[pairKey]string),
	}
}

// Create сохраняет отклик. Дубликат по паре (jobID, seekerID) отклоняется.
func (r *ApplicationRepository) Create(app *models.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey{jobID: app.JobID, seekerID: app.SeekerID}
	if _, exists := r.byPair[key]; exists {
		return ErrApplicationAlreadyExists
	}

	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if app.AppliedDate.IsZero() {
		app.AppliedDate = time.Now()
	}

	clone := *app
	r.apps[clone.ID] = &clone
	r.byPair[key] = clone.ID
	r.order = append(r.order, clone.ID)
	return nil
}

func (r *ApplicationRepository) FindByID(id string) (*models.JobApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	app, ok := r.apps[id]
	if !ok {
		return nil, ErrApplicationNotFound
	}
	clone := *app
	return &clone, nil
}

// UpdateStatus меняет только статус отклика.
func (r *ApplicationRepository) UpdateStatus(id string, status models.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	app, ok := r.apps[id]
	if !ok {
		return ErrApplicationNotFound
	}
	app.Status = status
	return nil
}

func (r *ApplicationRepository) ListByJob(jobID string) []*models.JobApplication {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(app *models.JobApplication) bool {
		return app.JobID == jobID
	})
}

func (r *ApplicationRepository) ListBySeeker(seekerID string) []*models.JobApplication {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(app *models.JobApplication) bool {
		return app.SeekerID == seekerID
	})
}

// DeleteByJob удаляет все отклики вакансии (каскад при удалении вакансии).
// Возвращает число удаленных откликов.
func (r *ApplicationRepository) DeleteByJob(jobID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	kept := r.order[:0]
	for _, id := range r.order {
		app := r.apps[id]
		if app.JobID != jobID {
			kept = append(kept, id)
			continue
		}
		delete(r.apps, id)
		delete(r.byPair, pairKey{jobID: app.JobID, seekerID: app.SeekerID})
		removed++
	}
	r.order = kept
	return removed
}

func (r *ApplicationRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.apps)
}

// collect обходит отклики в порядке вставки. Вызывается под r.mu.
func (r *ApplicationRepository) collect(keep func(*models.JobApplication) bool) []*models.JobApplication {
	result := make([]*models.JobApplication, 0)
	for _, id := range r.order {
		app := r.apps[id]
		if keep(app) {
			clone := *app
			result = append(result, &clone)
		}
	}
	return result
}

package repositories

import (
	"errors"
	"strings"
	"sync"
	"time"

	"jobboard_backend/internal/models"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

// JobSearchCriteria - фильтры поиска вакансий. Пустое поле ограничения не накладывает,
// заданные поля объединяются по AND.
type JobSearchCriteria struct {
	Location string // точное совпадение
	Category string // точное совпадение
	JobType  string // точное совпадение
	Search   string // подстрока без учета регистра в title/company/description
}

// JobRepository - in-memory хранилище вакансий.
// Порядок выдачи детерминирован: порядок вставки.
type JobRepository struct {
	mu    sync.RWMutex
	jobs  map[string]*models.Job
	order []string
}

func NewJobRepository() *JobRepository {
	return &JobRepository{
		jobs: make(map[string]*models.Job),
	}
}

// Create сохраняет вакансию. ID назначается здесь, если не задан заранее.
// ID никогда не переиспользуются.
func (r *JobRepository) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.PostedDate.IsZero() {
		job.PostedDate = time.Now()
	}

	clone := cloneJob(job)
	r.jobs[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	return nil
}

func (r *JobRepository) FindByID(id string) (*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	return cloneJob(job), nil
}

// Update заменяет вакансию целиком (last-writer-wins, без версионирования).
func (r *JobRepository) Update(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[job.ID]; !ok {
		return ErrJobNotFound
	}
	r.jobs[job.ID] = cloneJob(job)
	return nil
}

func (r *JobRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; !ok {
		return ErrJobNotFound
	}
	delete(r.jobs, id)
	for i, jobID := range r.order {
		if jobID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// List возвращает все вакансии в порядке вставки.
func (r *JobRepository) List() []*models.Job {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*models.Job) bool { return true })
}

// Search возвращает вакансии, удовлетворяющие всем заданным фильтрам,
// в порядке вставки.
func (r *JobRepository) Search(criteria JobSearchCriteria) []*models.Job {
	needle := strings.ToLower(criteria.Search)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(job *models.Job) bool {
		if criteria.Location != "" && job.Location != criteria.Location {
			return false
		}
		if criteria.Category != "" && job.Category != criteria.Category {
			return false
		}
		if criteria.JobType != "" && job.JobType != criteria.JobType {
			return false
		}
		if needle != "" && !matchesQuery(job, needle) {
			return false
		}
		return true
	})
}

func (r *JobRepository) ListByEmployer(employerID string) []*models.Job {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(job *models.Job) bool {
		return job.EmployerID == employerID
	})
}

func (r *JobRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs)
}

// collect обходит вакансии в порядке вставки. Вызывается под r.mu.
func (r *JobRepository) collect(keep func(*models.Job) bool) []*models.Job {
	result := make([]*models.Job, 0)
	for _, id := range r.order {
		job := r.jobs[id]
		if keep(job) {
			result = append(result, cloneJob(job))
		}
	}
	return result
}

func matchesQuery(job *models.Job, needle string) bool {
	return strings.Contains(strings.ToLower(job.Title), needle) ||
		strings.Contains(strings.ToLower(job.Company), needle) ||
		strings.Contains(strings.ToLower(job.Description), needle)
}

func cloneJob(job *models.Job) *models.Job {
	clone := *job
	if job.Requirements != nil {
		clone.Requirements = append([]string(nil), job.Requirements...)
	}
	return &clone
}

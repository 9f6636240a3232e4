package services_test

import (
	"testing"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"

	"github.com/stretchr/testify/require"
)

const testPassword = "password123"

// testEnv - сервисы поверх чистых in-memory репозиториев,
// сессия в памяти (без файлового снапшота).
type testEnv struct {
	users *repositories.UserRepository
	jobs  *repositories.JobRepository
	apps  *repositories.ApplicationRepository
	svc   *services.ServiceContainer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := repositories.NewUserRepository()
	jobs := repositories.NewJobRepository()
	apps := repositories.NewApplicationRepository()

	svc := services.NewServiceContainer(config.Default(), users, jobs, apps,
		storage.NewMemorySessionStorage())

	return &testEnv{users: users, jobs: jobs, apps: apps, svc: svc}
}

// createUser создает пользователя напрямую в репозитории, минуя сессию:
// тестам нужны несколько акторов одновременно.
func (e *testEnv) createUser(t *testing.T, name, email string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, e.users.Create(user))
	return user.Sanitized()
}

func (e *testEnv) createJob(t *testing.T, employer *models.User, title, category string) string {
	t.Helper()

	id, err := e.svc.Jobs.CreateJob(employer, &dto.CreateJobRequest{
		Title:       title,
		Company:     "Tech Solutions",
		Location:    "110001",
		Description: "We are looking for a skilled professional to join our team...",
		Salary:      "₹6,00,000 - ₹10,00,000 per annum",
		JobType:     "Full-time",
		Category:    category,
	})
	require.NoError(t, err)
	return id
}

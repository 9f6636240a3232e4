package repositories_test

import (
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUserRepository_EmailNormalization - email уникален после нормализации
// (trim + lower), поиск по любому написанию находит того же пользователя.
func TestUserRepository_EmailNormalization(t *testing.T) {
	t.Parallel()

	repo := repositories.NewUserRepository()
	user := &models.User{
		Name:  "Job Seeker",
		Email: "seeker@example.com",
		Role:  models.UserRoleSeeker,
	}
	require.NoError(t, repo.Create(user))

	err := repo.Create(&models.User{
		Name:  "Impostor",
		Email: "  SEEKER@Example.com ",
		Role:  models.UserRoleEmployer,
	})
	assert.ErrorIs(t, err, repositories.ErrUserAlreadyExists)

	found, err := repo.FindByEmail(" Seeker@EXAMPLE.COM ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestUserRepository_FindUnknown(t *testing.T) {
	t.Parallel()

	repo := repositories.NewUserRepository()

	_, err := repo.FindByID("no-such-user")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)

	_, err = repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)

	err = repo.UpdateLocation("no-such-user", "110001")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestUserRepository_UpdateLocation(t *testing.T) {
	t.Parallel()

	repo := repositories.NewUserRepository()
	user := &models.User{
		Name:  "Job Seeker",
		Email: "seeker@example.com",
		Role:  models.UserRoleSeeker,
	}
	require.NoError(t, repo.Create(user))

	require.NoError(t, repo.UpdateLocation(user.ID, "400001"))

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "400001", found.Location)
	// Остальные поля не тронуты
	assert.Equal(t, models.UserRoleSeeker, found.Role)
}

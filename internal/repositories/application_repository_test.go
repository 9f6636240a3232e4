package repositories_test

import (
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplication(jobID, seekerID string) *models.JobApplication {
	return &models.JobApplication{
		JobID:    jobID,
		SeekerID: seekerID,
		Status:   models.ApplicationStatusApplied,
	}
}

// TestApplicationRepository_PairUniqueness - не больше одного отклика
// на пару (job, seeker); другие пары не задеты.
func TestApplicationRepository_PairUniqueness(t *testing.T) {
	t.Parallel()

	repo := repositories.NewApplicationRepository()

	require.NoError(t, repo.Create(newApplication("job-1", "seeker-1")))

	err := repo.Create(newApplication("job-1", "seeker-1"))
	assert.ErrorIs(t, err, repositories.ErrApplicationAlreadyExists)

	// Та же вакансия, другой соискатель и та же пара на другой вакансии - ок
	require.NoError(t, repo.Create(newApplication("job-1", "seeker-2")))
	require.NoError(t, repo.Create(newApplication("job-2", "seeker-1")))

	assert.Len(t, repo.ListByJob("job-1"), 2)
	assert.Len(t, repo.ListBySeeker("seeker-1"), 2)
}

// TestApplicationRepository_DeleteByJob - каскад удаляет все отклики вакансии
// и освобождает пары для повторного отклика.
func TestApplicationRepository_DeleteByJob(t *testing.T) {
	t.Parallel()

	repo := repositories.NewApplicationRepository()
	require.NoError(t, repo.Create(newApplication("job-1", "seeker-1")))
	require.NoError(t, repo.Create(newApplication("job-1", "seeker-2")))
	require.NoError(t, repo.Create(newApplication("job-2", "seeker-1")))

	removed := repo.DeleteByJob("job-1")
	assert.Equal(t, 2, removed)
	assert.Empty(t, repo.ListByJob("job-1"))
	assert.Len(t, repo.ListByJob("job-2"), 1)
	assert.Equal(t, 1, repo.Count())

	// Пара снова свободна
	require.NoError(t, repo.Create(newApplication("job-1", "seeker-1")))
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	t.Parallel()

	repo := repositories.NewApplicationRepository()
	app := newApplication("job-1", "seeker-1")
	require.NoError(t, repo.Create(app))

	require.NoError(t, repo.UpdateStatus(app.ID, models.ApplicationStatusUnderReview))

	got, err := repo.FindByID(app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusUnderReview, got.Status)

	err = repo.UpdateStatus("no-such-app", models.ApplicationStatusAccepted)
	assert.ErrorIs(t, err, repositories.ErrApplicationNotFound)
}

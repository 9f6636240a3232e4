package services_test

import (
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"

	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApplyToJob_Success - отклик создается со статусом applied.
func TestApplyToJob_Success(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employer := env.createUser(t, "Employer", "employer@test.com", models.UserRoleEmployer)
	seeker := env.createUser(t, "Seeker", "seeker@test.com", models.UserRoleSeeker)
	jobID := env.createJob(t, employer, "Software Developer", "Information Technology")

	appID, err := env.svc.Applications.ApplyToJob(seeker, &dto.ApplyRequest{
		JobID:       jobID,
		CoverLetter: "I'm interested",
	})
	require.NoError(t, err)
	require.NotEmpty(t, appID)

	apps := env.svc.Applications.ApplicationsForJob(jobID)
	require.Len(t, apps, 1)
	assert.Equal(t, models.ApplicationStatusApplied, apps[0].Status)
	assert.Equal(t, seeker.ID, apps[0].SeekerID)
	assert.Equal(t, "I'm interested", apps[0].CoverLetter)
	assert.False(t, apps[0].AppliedDate.IsZero())
}

// TestApplyToJob_DuplicateRejected - второй отклик той же пары (job, seeker)
// отклоняется, число откликов остается 1.
func TestApplyToJob_DuplicateRejected(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employer := env.createUser(t, "Employer", "employer@test.com", models.UserRoleEmployer)
	seeker := env.createUser(t, "Seeker", "seeker@test.com", models.UserRoleSeeker)
	jobID := env.createJob(t, employer, "Software Developer", "Information Technology")

	_, err := env.svc.Applications.ApplyToJob(seeker, &dto.ApplyRequest{JobID: jobID})
	require.NoError(t, err)

	_, err = env.svc.Applications.ApplyToJob(seeker, &dto.ApplyRequest{JobID: jobID})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)

	assert.Len(t, env.svc.Applications.ApplicationsForJob(jobID), 1)
}

func TestApplyToJob_NonSeekersDenied(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employer := env.createUser(t, "Employer", "employer@test.com", models.UserRoleEmployer)
	admin := env.createUser(t, "Admin", "admin@test.com", models.UserRoleAdmin)
	jobID := env.createJob(t, employer, "Software Developer", "Information Technology")

	for name, actor := range map[string]*models.User{
		"employer":  employer,
		"admin":     admin,
		"anonymous": nil,
	} {
		_, err := env.svc.Applications.ApplyToJob(actor, &dto.ApplyRequest{JobID: jobID})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied, name)
	}
	assert.Empty(t, env.svc.Applications.ApplicationsForJob(jobID))
}

// TestApplyToJob_UnknownJob - отклик на несуществующую вакансию
// проваливается на NotFound, а не создает висячую ссылку.
func TestApplyToJob_UnknownJob(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	seeker := env.createUser(t, "Seeker", "seeker@test.com", models.UserRoleSeeker)

	_, err := env.svc.Applications.ApplyToJob(seeker, &dto.ApplyRequest{JobID: "no-such-job"})
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
	assert.Empty(t, env.svc.Applications.ApplicationsForActor(seeker.ID))
}

// TestApplicationLifecycle - сценарий из продукта: работодатель создает
// вакансию, соискатель откликается, работодатель принимает отклик.
func TestApplicationLifecycle(t *testing.T) {
	t.Parallel()

	// 1. Подготовка (Arrange)
	env := newTestEnv(t)
	employer := env.createUser(t, "Employer A", "a@test.com", models.UserRoleEmployer)
	seeker := env.createUser(t, "Seeker B", "b@test.com", models.UserRoleSeeker)
	jobID := env.createJob(t, employer, "Software Developer", "Information Technology")

	// 2. Действие: отклик (Act)
	appID, err := env.svc.Applications.ApplyToJob(seeker, &dto.ApplyRequest{
		JobID:       jobID,
		CoverLetter: "I'm interested",
	})
	require.NoError(t, err)

	apps := env.svc.Applications.ApplicationsForJob(jobID)
	require.Len(t, apps, 1)
	require.Equal(t, models.ApplicationStatusApplied, apps[0].Status)

	// 3. Действие: работодатель принимает отклик
	err = env.svc.Applications.UpdateApplicationStatus(employer, appID,
		&dto.UpdateApplicationStatusRequest{Status: models.ApplicationStatusAccepted})
	require.NoError(t, err)

	// 4. Проверка (Assert)
	apps = env.svc.Applications.ApplicationsForJob(jobID)
	require.Len(t, apps, 1)
	assert.Equal(t, models.ApplicationStatusAccepted, apps[0].Status)
}

// TestUpdateApplicationStatus_AnyTransitionAllowed - переходы между четырьмя
// статусами не ограничены, включая no-op в тот же статус.
func TestUpdateApplicationStatus_AnyTransitionAllowed(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employer := env.createUser(t, "Employer", "employer@test.com", models.UserRoleEmployer)
	seeker := env.createUser(t, "Seeker", "seeker@test.com", models.UserRoleSeeker)
	jobID := env.createJob(t, employer, "Software Developer", "Information Technology")
	appID, err := env.svc.Applications.ApplyToJob(seeker, &dto.ApplyRequest{JobID: jobID})
	require.NoError(t, err)

	sequence := []models.ApplicationStatus{
		models.ApplicationStatusAccepted,
		models.ApplicationStatusRejected,
		models.ApplicationStatusRejected, // no-op в тот же статус
		models.ApplicationStatusUnderReview,
		models.ApplicationStatusApplied,
	}
	for _, status := range sequence {
		err := env.svc.Applications.UpdateApplicationStatus(employer, appID,
			&dto.UpdateApplicationStatusRequest{Status: status})
		require.NoError(t, err, status)

		apps := env.svc.Applications.ApplicationsForJob(jobID)
		require.Len(t, apps, 1)
		assert.Equal(t, status, apps[0].Status)
	}
}

func TestUpdateApplicationStatus_Failures(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	owner := env.createUser(t, "Owner", "owner@test.com", models.UserRoleEmployer)
	rival := env.createUser(t, "Rival", "rival@test.com", models.UserRoleEmployer)
	seeker := env.createUser(t, "Seeker", "seeker@test.com", models.UserRoleSeeker)
	jobID := env.createJob(t, owner, "Software Developer", "Information Technology")
	appID, err := env.svc.Applications.ApplyToJob(seeker, &dto.ApplyRequest{JobID: jobID})
	require.NoError(t, err)

	accepted := &dto.UpdateApplicationStatusRequest{Status: models.ApplicationStatusAccepted}

	// Провал по роли
	err = env.svc.Applications.UpdateApplicationStatus(seeker, appID, accepted)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// Провал по владению вакансией отклика
	err = env.svc.Applications.UpdateApplicationStatus(rival, appID, accepted)
	assert.ErrorIs(t, err, apperrors.ErrJobNotOwned)

	// Неизвестный отклик
	err = env.svc.Applications.UpdateApplicationStatus(owner, "no-such-app", accepted)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)

	// Недопустимый статус
	err = env.svc.Applications.UpdateApplicationStatus(owner, appID,
		&dto.UpdateApplicationStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidApplicationStatus)

	// Статус не изменился ни одним из провалов
	apps := env.svc.Applications.ApplicationsForJob(jobID)
	require.Len(t, apps, 1)
	assert.Equal(t, models.ApplicationStatusApplied, apps[0].Status)
}

// TestApplicationsForActor - отклики актора видны только для роли seeker.
func TestApplicationsForActor(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employer := env.createUser(t, "Employer", "employer@test.com", models.UserRoleEmployer)
	seeker := env.createUser(t, "Seeker", "seeker@test.com", models.UserRoleSeeker)
	first := env.createJob(t, employer, "Software Developer", "Information Technology")
	second := env.createJob(t, employer, "Data Scientist", "Data Science")

	_, err := env.svc.Applications.ApplyToJob(seeker, &dto.ApplyRequest{JobID: first})
	require.NoError(t, err)
	_, err = env.svc.Applications.ApplyToJob(seeker, &dto.ApplyRequest{JobID: second})
	require.NoError(t, err)

	assert.Len(t, env.svc.Applications.ApplicationsForActor(seeker.ID), 2)
	assert.Empty(t, env.svc.Applications.ApplicationsForActor(employer.ID))
	assert.Empty(t, env.svc.Applications.ApplicationsForActor("no-such-user"))
}

func TestSummaryForActor(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employer := env.createUser(t, "Employer", "employer@test.com", models.UserRoleEmployer)
	seeker := env.createUser(t, "Seeker", "seeker@test.com", models.UserRoleSeeker)
	first := env.createJob(t, employer, "Software Developer", "Information Technology")
	second := env.createJob(t, employer, "Data Scientist", "Data Science")

	firstApp, err := env.svc.Applications.ApplyToJob(seeker, &dto.ApplyRequest{JobID: first})
	require.NoError(t, err)
	_, err = env.svc.Applications.ApplyToJob(seeker, &dto.ApplyRequest{JobID: second})
	require.NoError(t, err)
	require.NoError(t, env.svc.Applications.UpdateApplicationStatus(employer, firstApp,
		&dto.UpdateApplicationStatusRequest{Status: models.ApplicationStatusUnderReview}))

	summary := env.svc.Applications.SummaryForActor(seeker.ID)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.ByStatus[models.ApplicationStatusApplied])
	assert.Equal(t, 1, summary.ByStatus[models.ApplicationStatusUnderReview])
}

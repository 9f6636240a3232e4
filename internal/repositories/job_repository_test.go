package repositories_test

import (
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJob(title, company, location, category, jobType string) *models.Job {
	return &models.Job{
		Title:      title,
		Company:    company,
		Location:   location,
		Category:   category,
		JobType:    jobType,
		Status:     models.JobStatusActive,
		EmployerID: "employer-1",
	}
}

// TestJobRepository_CreateAssignsUniqueIDs - id назначаются при создании
// и не переиспользуются после удаления.
func TestJobRepository_CreateAssignsUniqueIDs(t *testing.T) {
	t.Parallel()

	repo := repositories.NewJobRepository()

	first := newJob("Software Developer", "Tech Solutions", "110001", "IT", "Full-time")
	second := newJob("Data Scientist", "Data Insights", "500001", "Data Science", "Full-time")
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	require.NoError(t, repo.Delete(first.ID))
	third := newJob("Graphic Designer", "Creative Studio", "700001", "Design", "Contract")
	require.NoError(t, repo.Create(third))
	assert.NotEqual(t, first.ID, third.ID)
}

// TestJobRepository_InsertionOrder - List и Search выдают вакансии
// в порядке вставки, удаление порядок остальных не меняет.
func TestJobRepository_InsertionOrder(t *testing.T) {
	t.Parallel()

	repo := repositories.NewJobRepository()
	var ids []string
	for _, title := range []string{"First", "Second", "Third", "Fourth"} {
		job := newJob(title, "Tech Solutions", "110001", "IT", "Full-time")
		require.NoError(t, repo.Create(job))
		ids = append(ids, job.ID)
	}

	require.NoError(t, repo.Delete(ids[1]))

	listed := repo.List()
	require.Len(t, listed, 3)
	assert.Equal(t, []string{ids[0], ids[2], ids[3]},
		[]string{listed[0].ID, listed[1].ID, listed[2].ID})
}

func TestJobRepository_SearchFilters(t *testing.T) {
	t.Parallel()

	repo := repositories.NewJobRepository()
	dev := newJob("Software Developer", "Tech Solutions", "110001", "Information Technology", "Full-time")
	marketing := newJob("Marketing Manager", "Brand Builders", "400001", "Marketing", "Full-time")
	support := newJob("Customer Service Representative", "Support Hub", "110001", "Customer Service", "Part-time")
	for _, job := range []*models.Job{dev, marketing, support} {
		require.NoError(t, repo.Create(job))
	}

	// Пустые критерии - все вакансии
	assert.Len(t, repo.Search(repositories.JobSearchCriteria{}), 3)

	// Точное совпадение location
	byLocation := repo.Search(repositories.JobSearchCriteria{Location: "110001"})
	require.Len(t, byLocation, 2)

	// Подстрока без учета регистра по title/company/description
	byQuery := repo.Search(repositories.JobSearchCriteria{Search: "BRAND"})
	require.Len(t, byQuery, 1)
	assert.Equal(t, marketing.ID, byQuery[0].ID)

	// AND всех заданных фильтров
	combined := repo.Search(repositories.JobSearchCriteria{
		Location: "110001",
		JobType:  "Part-time",
	})
	require.Len(t, combined, 1)
	assert.Equal(t, support.ID, combined[0].ID)
}

// TestJobRepository_ReturnsCopies - мутация результата чтения
// не протекает в хранилище.
func TestJobRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	repo := repositories.NewJobRepository()
	job := newJob("Software Developer", "Tech Solutions", "110001", "IT", "Full-time")
	job.Requirements = []string{"React", "Node.js"}
	require.NoError(t, repo.Create(job))

	got, err := repo.FindByID(job.ID)
	require.NoError(t, err)
	got.Title = "Hacked"
	got.Requirements[0] = "Hacked"

	fresh, err := repo.FindByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Software Developer", fresh.Title)
	assert.Equal(t, "React", fresh.Requirements[0])
}

func TestJobRepository_UpdateAndDeleteUnknown(t *testing.T) {
	t.Parallel()

	repo := repositories.NewJobRepository()

	err := repo.Update(&models.Job{ID: "no-such-job"})
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)

	err = repo.Delete("no-such-job")
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)
}

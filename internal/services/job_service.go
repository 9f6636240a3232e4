package services

import (
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/validator"

	"jobboard_backend/pkg/apperrors"
)

// JobService - операции над вакансиями. Субъект авторизации (actor)
// передается явно в каждую мутацию и перепроверяется в момент вызова;
// запросы на чтение доступны любому, включая анонимных (actor == nil).
type JobService interface {
	// Queries
	Search(filters *dto.JobFilters) []*models.Job
	GetByID(id string) (*models.Job, error)
	JobsForEmployer(employerID string) []*models.Job
	StatsForAdmin(actor *models.User) (*dto.AdminStats, error)

	// Mutations
	CreateJob(actor *models.User, req *dto.CreateJobRequest) (string, error)
	UpdateJob(actor *models.User, id string, req *dto.UpdateJobRequest) error
	CloseJob(actor *models.User, id string) error
	DeleteJob(actor *models.User, id string) error
}

type JobServiceImpl struct {
	jobRepo  *repositories.JobRepository
	appRepo  *repositories.ApplicationRepository
	userRepo *repositories.UserRepository
	validate *validator.Validator
}

func NewJobService(
	jobRepo *repositories.JobRepository,
	appRepo *repositories.ApplicationRepository,
	userRepo *repositories.UserRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:  jobRepo,
		appRepo:  appRepo,
		userRepo: userRepo,
		validate: validator.New(),
	}
}

// Search возвращает вакансии по фильтрам в стабильном порядке вставки.
func (s *JobServiceImpl) Search(filters *dto.JobFilters) []*models.Job {
	criteria := repositories.JobSearchCriteria{}
	if filters != nil {
		criteria = repositories.JobSearchCriteria{
			Location: filters.Location,
			Category: filters.Category,
			JobType:  filters.JobType,
			Search:   filters.Search,
		}
	}
	return s.jobRepo.Search(criteria)
}

func (s *JobServiceImpl) GetByID(id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.ErrJobNotFound
	}
	return job, nil
}

// JobsForEmployer возвращает вакансии работодателя.
// Для несуществующего актора или не-работодателя - пустой список.
func (s *JobServiceImpl) JobsForEmployer(employerID string) []*models.Job {
	employer, err := s.userRepo.FindByID(employerID)
	if err != nil || employer.Role != models.UserRoleEmployer {
		return []*models.Job{}
	}
	return s.jobRepo.ListByEmployer(employerID)
}

// StatsForAdmin - агрегатная статистика, только для администратора.
func (s *JobServiceImpl) StatsForAdmin(actor *models.User) (*dto.AdminStats, error) {
	if !auth.IsAdmin(actor) {
		logger.Denied("stats", actorID(actor), actorRole(actor))
		return nil, apperrors.ErrPermissionDenied
	}

	stats := &dto.AdminStats{
		TotalApplications: s.appRepo.Count(),
		TotalUsers:        s.userRepo.Count(),
		JobsByCategory:    make(map[string]int),
	}
	for _, job := range s.jobRepo.List() {
		stats.TotalJobs++
		if job.Status == models.JobStatusActive {
			stats.ActiveJobs++
		} else {
			stats.ClosedJobs++
		}
		stats.JobsByCategory[job.Category]++
	}
	return stats, nil
}

// CreateJob создает вакансию от имени работодателя.
// На успехе статус active, PostedDate = now, EmployerID = actor.ID.
func (s *JobServiceImpl) CreateJob(actor *models.User, req *dto.CreateJobRequest) (string, error) {
	if !auth.CanManageJobs(actor) {
		logger.Denied("create_job", actorID(actor), actorRole(actor))
		return "", apperrors.ErrPermissionDenied
	}
	if err := s.validate.Validate(req); err != nil {
		return "", apperrors.ValidationError(err.Error())
	}

	job := &models.Job{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		JobType:      req.JobType,
		Category:     req.Category,
		PostedDate:   time.Now(),
		EmployerID:   actor.ID,
		Status:       models.JobStatusActive,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return "", apperrors.InternalError(err)
	}

	logger.Info("job created", "job_id", job.ID, "employer_id", actor.ID)
	return job.ID, nil
}

// UpdateJob - частичное обновление вакансии владеющим работодателем.
// Проверка владения отделена от проверки роли: провалы различимы.
func (s *JobServiceImpl) UpdateJob(actor *models.User, id string, req *dto.UpdateJobRequest) error {
	if !auth.CanManageJobs(actor) {
		logger.Denied("update_job", actorID(actor), actorRole(actor))
		return apperrors.ErrPermissionDenied
	}

	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		return apperrors.ErrJobNotFound
	}

	if job.EmployerID != actor.ID {
		logger.Denied("update_job", actor.ID, string(actor.Role))
		return apperrors.ErrJobNotOwned
	}

	if req.Status != nil && !req.Status.IsValid() {
		return apperrors.ErrInvalidJobStatus
	}

	applyJobUpdate(job, req)
	if err := s.jobRepo.Update(job); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// CloseJob - прямой переход active -> closed, единственный переход,
// который продуктовые сценарии показывают явно. Generic update при этом
// может вернуть вакансию обратно в active; репозиторий это не запрещает.
func (s *JobServiceImpl) CloseJob(actor *models.User, id string) error {
	closed := models.JobStatusClosed
	return s.UpdateJob(actor, id, &dto.UpdateJobRequest{Status: &closed})
}

// DeleteJob удаляет вакансию владеющего работодателя и каскадом
// все ее отклики, чтобы не оставалось висячих ссылок.
func (s *JobServiceImpl) DeleteJob(actor *models.User, id string) error {
	if !auth.CanManageJobs(actor) {
		logger.Denied("delete_job", actorID(actor), actorRole(actor))
		return apperrors.ErrPermissionDenied
	}

	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		return apperrors.ErrJobNotFound
	}

	if job.EmployerID != actor.ID {
		logger.Denied("delete_job", actor.ID, string(actor.Role))
		return apperrors.ErrJobNotOwned
	}

	if err := s.jobRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	removed := s.appRepo.DeleteByJob(id)

	logger.Info("job deleted", "job_id", id, "cascaded_applications", removed)
	return nil
}

func applyJobUpdate(job *models.Job, req *dto.UpdateJobRequest) {
	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = req.Requirements
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
}

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

// ApplicationService - операции над откликами. Мутации перепроверяют
// роль переданного актора; чтение доступно любому.
type ApplicationService interface {
	// Queries
	ApplicationsForJob(jobID string) []*models.JobApplication
	ApplicationsForActor(actorID string) []*models.JobApplication
	SummaryForActor(actorID string) *dto.SeekerSummary

	// Mutations
	ApplyToJob(actor *models.User, req *dto.ApplyRequest) (string, error)
	UpdateApplicationStatus(actor *models.User, applicationID string, req *dto.UpdateApplicationStatusRequest) error
}

type ApplicationServiceImpl struct {
	appRepo  *repositories.ApplicationRepository
	jobRepo  *repositories.JobRepository
	userRepo *repositories.UserRepository
	validate *validator.Validator
}

func NewApplicationService(
	appRepo *repositories.ApplicationRepository,
	jobRepo *repositories.JobRepository,
	userRepo *repositories.UserRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		validate: validator.New(),
	}
}

// ApplicationsForJob - все отклики вакансии в порядке вставки.
func (s *ApplicationServiceImpl) ApplicationsForJob(jobID string) []*models.JobApplication {
	return s.appRepo.ListByJob(jobID)
}

// ApplicationsForActor - отклики актора. Осмысленно только для
// соискателя; для остальных ролей и неизвестных id - пустой список.
func (s *ApplicationServiceImpl) ApplicationsForActor(actorID string) []*models.JobApplication {
	seeker, err := s.userRepo.FindByID(actorID)
	if err != nil || seeker.Role != models.UserRoleSeeker {
		return []*models.JobApplication{}
	}
	return s.appRepo.ListBySeeker(actorID)
}

// SummaryForActor - сводка по статусам откликов для дашборда соискателя.
func (s *ApplicationServiceImpl) SummaryForActor(actorID string) *dto.SeekerSummary {
	summary := &dto.SeekerSummary{
		ByStatus: make(map[models.ApplicationStatus]int),
	}
	for _, app := range s.ApplicationsForActor(actorID) {
		summary.Total++
		summary.ByStatus[app.Status]++
	}
	return summary
}

// ApplyToJob создает отклик соискателя. Порядок проверок:
// роль -> существование вакансии -> дубликат пары (job, seeker).
func (s *ApplicationServiceImpl) ApplyToJob(actor *models.User, req *dto.ApplyRequest) (string, error) {
	if !auth.CanApply(actor) {
		logger.Denied("apply_to_job", actorID(actor), actorRole(actor))
		return "", apperrors.ErrPermissionDenied
	}
	if err := s.validate.Validate(req); err != nil {
		return "", apperrors.ValidationError(err.Error())
	}

	if _, err := s.jobRepo.FindByID(req.JobID); err != nil {
		return "", apperrors.ErrJobNotFound
	}

	app := &models.JobApplication{
		JobID:       req.JobID,
		SeekerID:    actor.ID,
		Status:      models.ApplicationStatusApplied,
		AppliedDate: time.Now(),
		CoverLetter: req.CoverLetter,
	}

	if err := s.appRepo.Create(app); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return "", apperrors.ErrAlreadyApplied
		}
		return "", apperrors.InternalError(err)
	}

	logger.Info("application submitted", "application_id", app.ID,
		"job_id", req.JobID, "seeker_id", actor.ID)
	return app.ID, nil
}

// UpdateApplicationStatus меняет статус отклика. Требует роль работодателя
// и владение вакансией, на которую ссылается отклик; проверки раздельны.
func (s *ApplicationServiceImpl) UpdateApplicationStatus(actor *models.User, applicationID string, req *dto.UpdateApplicationStatusRequest) error {
	if !auth.CanReviewApplications(actor) {
		logger.Denied("update_application_status", actorID(actor), actorRole(actor))
		return apperrors.ErrPermissionDenied
	}
	if req == nil || !req.Status.IsValid() {
		return apperrors.ErrInvalidApplicationStatus
	}

	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		return apperrors.ErrApplicationNotFound
	}

	// Каскадное удаление не оставляет откликов без вакансии,
	// но ссылку все равно разыменовываем через хранилище.
	job, err := s.jobRepo.FindByID(app.JobID)
	if err != nil {
		return apperrors.ErrJobNotFound
	}
	if job.EmployerID != actor.ID {
		logger.Denied("update_application_status", actor.ID, string(actor.Role))
		return apperrors.ErrJobNotOwned
	}

	if err := s.appRepo.UpdateStatus(applicationID, req.Status); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("application status updated", "application_id", applicationID,
		"status", req.Status, "employer_id", actor.ID)
	return nil
}

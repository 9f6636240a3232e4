package services

import (
	"time"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	Auth         AuthService
	Jobs         JobService
	Applications ApplicationService
}

// NewServiceContainer собирает сервисы поверх переданных репозиториев.
// Репозитории создаются снаружи: seed-данные загружаются до сборки сервисов.
func NewServiceContainer(
	cfg *config.Config,
	userRepo *repositories.UserRepository,
	jobRepo *repositories.JobRepository,
	appRepo *repositories.ApplicationRepository,
	sessions storage.SessionStorage,
) *ServiceContainer {
	ttl := time.Duration(cfg.Token.TTLMinutes) * time.Minute

	return &ServiceContainer{
		Auth:         NewAuthService(userRepo, sessions, cfg.Token.Secret, ttl),
		Jobs:         NewJobService(jobRepo, appRepo, userRepo),
		Applications: NewApplicationService(appRepo, jobRepo, userRepo),
	}
}

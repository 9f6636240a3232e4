package services

import (
	"sync"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/validator"

	"jobboard_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// AuthService - хранилище сессии: ноль или один живой актор на процесс.
// Отвечает на вопрос "кто сейчас действует и с какой ролью".
type AuthService interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*models.User, error)
	Logout()
	UpdateLocation(location string)
	CurrentActor() *models.User
	Token() string
	IsAuthenticated() bool
}

type AuthServiceImpl struct {
	userRepo *repositories.UserRepository
	sessions storage.SessionStorage
	validate *validator.Validator

	tokenSecret string
	tokenTTL    time.Duration

	mu      sync.RWMutex
	current *models.User
	token   string
}

func NewAuthService(
	userRepo *repositories.UserRepository,
	sessions storage.SessionStorage,
	tokenSecret string,
	tokenTTL time.Duration,
) AuthService {
	s := &AuthServiceImpl{
		userRepo:    userRepo,
		sessions:    sessions,
		validate:    validator.New(),
		tokenSecret: tokenSecret,
		tokenTTL:    tokenTTL,
	}
	s.restoreSession()
	return s
}

// restoreSession поднимает сессию из снапшота предыдущего запуска.
// Снапшот принимается как есть: хранилище пользователей эфемерно,
// и перепроверить актора после перезапуска не у чего.
func (s *AuthServiceImpl) restoreSession() {
	snapshot, err := s.sessions.Load()
	if err != nil {
		logger.WithError(err).Warn("failed to restore session snapshot")
		return
	}
	if snapshot == nil {
		return
	}
	s.current = snapshot.User.Sanitized()
	s.token = snapshot.Token
	logger.Info("session restored", "actor_id", s.current.ID, "role", s.current.Role)
}

// Register - регистрация нового пользователя с немедленным входом.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*models.User, error) {
	// Нормализация до валидации: email с пробелами по краям
	// иначе не пройдет правило email и не дойдет до проверки дубликата.
	req.Email = repositories.NormalizeEmail(req.Email)
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}
	if !auth.ValidateRole(req.Role) {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		Location:     req.Location,
	}

	// Токен выпускается до записи пользователя: провал любого шага
	// оставляет и хранилище, и сессию нетронутыми.
	token, err := auth.GenerateToken(user.ID, string(user.Role), s.tokenSecret, s.tokenTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			logger.AuthEvent("register", "", apperrors.ErrEmailAlreadyExists)
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	actor := s.applySession(user, token)
	logger.AuthEvent("register", actor.ID, nil)
	return actor, nil
}

// Login - аутентификация по точному совпадению email и пароля.
// Провал не трогает уже существующую сессию другого актора.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*models.User, error) {
	req.Email = repositories.NormalizeEmail(req.Email)
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			logger.AuthEvent("login", "", apperrors.ErrInvalidCredentials)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.AuthEvent("login", user.ID, apperrors.ErrInvalidCredentials)
		return nil, apperrors.ErrInvalidCredentials
	}

	actor, err := s.establishSession(user)
	if err != nil {
		return nil, err
	}

	logger.AuthEvent("login", actor.ID, nil)
	return actor, nil
}

// Logout очищает актора и токен. Идемпотентен.
func (s *AuthServiceImpl) Logout() {
	s.mu.Lock()
	actorID := ""
	if s.current != nil {
		actorID = s.current.ID
	}
	s.current = nil
	s.token = ""
	s.mu.Unlock()

	if err := s.sessions.Clear(); err != nil {
		logger.WithError(err).Warn("failed to clear session snapshot")
	}
	if actorID != "" {
		logger.AuthEvent("logout", actorID, nil)
	}
}

// UpdateLocation меняет location живого актора. Без сессии - no-op.
func (s *AuthServiceImpl) UpdateLocation(location string) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	s.current.Location = location
	actor := s.current.Sanitized()
	token := s.token
	s.mu.Unlock()

	// Для восстановленной сессии актора может не быть в хранилище
	if err := s.userRepo.UpdateLocation(actor.ID, location); err != nil &&
		!apperrors.Is(err, repositories.ErrUserNotFound) {
		logger.WithError(err).Warn("failed to persist actor location")
	}
	s.saveSnapshot(actor, token)
}

// CurrentActor возвращает снимок живого актора или nil.
// Снимок читается в момент вызова: именно он передается в операции
// репозитория как субъект авторизации.
func (s *AuthServiceImpl) CurrentActor() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Sanitized()
}

func (s *AuthServiceImpl) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated - актор и токен присутствуют одновременно.
func (s *AuthServiceImpl) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.token != ""
}

// establishSession выпускает токен и делает пользователя живым актором.
func (s *AuthServiceImpl) establishSession(user *models.User) (*models.User, error) {
	token, err := auth.GenerateToken(user.ID, string(user.Role), s.tokenSecret, s.tokenTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.applySession(user, token), nil
}

// applySession делает пользователя живым актором с уже выпущенным токеном.
func (s *AuthServiceImpl) applySession(user *models.User, token string) *models.User {
	actor := user.Sanitized()

	s.mu.Lock()
	s.current = actor
	s.token = token
	s.mu.Unlock()

	s.saveSnapshot(actor, token)
	return actor
}

func (s *AuthServiceImpl) saveSnapshot(actor *models.User, token string) {
	err := s.sessions.Save(&storage.SessionSnapshot{User: actor, Token: token})
	if err != nil {
		logger.WithError(err).Warn("failed to save session snapshot")
	}
}

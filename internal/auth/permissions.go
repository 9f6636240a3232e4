package auth

import "jobboard_backend/internal/models"

// Ролевые предикаты. Каждая мутация перепроверяет роль актора
// в момент вызова; nil-актор (анонимный клиент) не проходит ни одну проверку.

// CanManageJobs - создавать, менять и удалять вакансии может только работодатель.
func CanManageJobs(actor *models.User) bool {
	return actor != nil && actor.Role == models.UserRoleEmployer
}

// CanApply - откликаться на вакансии может только соискатель.
func CanApply(actor *models.User) bool {
	return actor != nil && actor.Role == models.UserRoleSeeker
}

// CanReviewApplications - менять статус откликов может только работодатель.
func CanReviewApplications(actor *models.User) bool {
	return actor != nil && actor.Role == models.UserRoleEmployer
}

// IsAdmin - агрегатная статистика доступна только администратору.
func IsAdmin(actor *models.User) bool {
	return actor != nil && actor.Role == models.UserRoleAdmin
}

// ValidateRole проверяет валидность роли при регистрации.
// Роль декларируется самим клиентом и не перепроверяется никаким
// авторитетом - известная слабость, унаследованная от продукта.
func ValidateRole(role models.UserRole) bool {
	switch role {
	case models.UserRoleSeeker, models.UserRoleEmployer, models.UserRoleAdmin:
		return true
	}
	return false
}

package services

import "jobboard_backend/internal/models"

// Хелперы для логирования субъекта авторизации (актор может быть nil).

func actorID(actor *models.User) string {
	if actor == nil {
		return "anonymous"
	}
	return actor.ID
}

func actorRole(actor *models.User) string {
	if actor == nil {
		return "none"
	}
	return string(actor.Role)
}

package dto

import "jobboard_backend/internal/models"

// ApplyRequest - отклик соискателя на вакансию.
type ApplyRequest struct {
	JobID       string `json:"job_id" validate:"required"`
	CoverLetter string `json:"cover_letter,omitempty"`
}

// UpdateApplicationStatusRequest - смена статуса отклика работодателем.
// Допустимы все четыре статуса, переходы между ними не ограничены.
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,oneof=applied under_review accepted rejected"`
}

// SeekerSummary - сводка откликов актора для дашборда соискателя.
type SeekerSummary struct {
	Total    int                              `json:"total"`
	ByStatus map[models.ApplicationStatus]int `json:"by_status"`
}

package models

type UserRole string
type JobStatus string
type ApplicationStatus string

const (
	UserRoleSeeker   UserRole = "seeker"
	UserRoleEmployer UserRole = "employer"
	UserRoleAdmin    UserRole = "admin"

	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"

	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// IsValid проверяет, что статус вакансии один из известных.
func (s JobStatus) IsValid() bool {
	return s == JobStatusActive || s == JobStatusClosed
}

// IsValid проверяет, что статус отклика один из четырех известных.
// Переходы между статусами не ограничены, терминального статуса нет.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusUnderReview,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

package models

import "time"

// JobApplication — отклик соискателя на вакансию.
// Пара (JobID, SeekerID) уникальна: повторный отклик на ту же вакансию невозможен.
type JobApplication struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	SeekerID    string            `json:"seeker_id"`
	Status      ApplicationStatus `json:"status"`
	AppliedDate time.Time         `json:"applied_date"`
	CoverLetter string            `json:"cover_letter,omitempty"`
}

package models

import "time"

// Job — вакансия, принадлежит одному работодателю (EmployerID не меняется).
// PostedDate выставляется один раз при создании.
type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Salary       string    `json:"salary"`
	JobType      string    `json:"job_type"`
	Category     string    `json:"category"`
	PostedDate   time.Time `json:"posted_date"`
	EmployerID   string    `json:"employer_id"`
	Status       JobStatus `json:"status"`
}

package dto

import "jobboard_backend/internal/models"

// CreateJobRequest - запрос создания вакансии. Все отображаемые поля обязательны.
type CreateJobRequest struct {
	Title        string   `json:"title" validate:"required"`
	Company      string   `json:"company" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Requirements []string `json:"requirements,omitempty"`
	Salary       string   `json:"salary" validate:"required"`
	JobType      string   `json:"job_type" validate:"required"`
	Category     string   `json:"category" validate:"required"`
}

// UpdateJobRequest - частичное обновление вакансии: nil-поле остается как было.
// ID, PostedDate и EmployerID не обновляются никогда.
type UpdateJobRequest struct {
	Title        *string           `json:"title,omitempty"`
	Company      *string           `json:"company,omitempty"`
	Location     *string           `json:"location,omitempty"`
	Description  *string           `json:"description,omitempty"`
	Requirements []string          `json:"requirements,omitempty"`
	Salary       *string           `json:"salary,omitempty"`
	JobType      *string           `json:"job_type,omitempty"`
	Category     *string           `json:"category,omitempty"`
	Status       *models.JobStatus `json:"status,omitempty"`
}

// JobFilters - фильтры поиска вакансий; заданные поля объединяются по AND.
type JobFilters struct {
	Location string `json:"location,omitempty"`
	Category string `json:"category,omitempty"`
	JobType  string `json:"job_type,omitempty"`
	Search   string `json:"search,omitempty"`
}

// AdminStats - агрегатная статистика для дашборда администратора.
type AdminStats struct {
	TotalJobs         int            `json:"total_jobs"`
	ActiveJobs        int            `json:"active_jobs"`
	ClosedJobs        int            `json:"closed_jobs"`
	TotalApplications int            `json:"total_applications"`
	TotalUsers        int            `json:"total_users"`
	JobsByCategory    map[string]int `json:"jobs_by_category"`
}

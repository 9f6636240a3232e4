package seed

import (
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

// Fixtures - созданные demo-сущности, чтобы вызывающий код знал их id.
type Fixtures struct {
	Seeker   *models.User
	Employer *models.User
	Admin    *models.User
	Jobs     []*models.Job
	Apps     []*models.JobApplication
}

// DemoPassword - пароль всех demo-аккаунтов.
const DemoPassword = "password123"

// Load наполняет репозитории демонстрационным набором: три аккаунта
// (seeker@example.com, employer@example.com, admin@example.com),
// пять вакансий работодателя и два отклика соискателя.
func Load(
	userRepo *repositories.UserRepository,
	jobRepo *repositories.JobRepository,
	appRepo *repositories.ApplicationRepository,
) (*Fixtures, error) {
	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return nil, err
	}

	f := &Fixtures{
		Seeker: &models.User{
			Name:     "Job Seeker",
			Email:    "seeker@example.com",
			Role:     models.UserRoleSeeker,
			Location: "110001",
		},
		Employer: &models.User{
			Name:     "Employer",
			Email:    "employer@example.com",
			Role:     models.UserRoleEmployer,
			Location: "110001",
		},
		Admin: &models.User{
			Name:  "Admin",
			Email: "admin@example.com",
			Role:  models.UserRoleAdmin,
		},
	}

	for _, u := range []*models.User{f.Seeker, f.Employer, f.Admin} {
		u.PasswordHash = hash
		if err := userRepo.Create(u); err != nil {
			return nil, err
		}
	}

	f.Jobs = demoJobs(f.Employer.ID)
	for _, job := range f.Jobs {
		if err := jobRepo.Create(job); err != nil {
			return nil, err
		}
	}

	f.Apps = []*models.JobApplication{
		{
			JobID:       f.Jobs[0].ID,
			SeekerID:    f.Seeker.ID,
			Status:      models.ApplicationStatusApplied,
			AppliedDate: time.Date(2023, 4, 16, 0, 0, 0, 0, time.UTC),
			CoverLetter: "I am excited to apply for this position...",
		},
		{
			JobID:       f.Jobs[2].ID,
			SeekerID:    f.Seeker.ID,
			Status:      models.ApplicationStatusUnderReview,
			AppliedDate: time.Date(2023, 4, 21, 0, 0, 0, 0, time.UTC),
			CoverLetter: "I believe my skills in customer service make me a perfect fit...",
		},
	}
	for _, app := range f.Apps {
		if err := appRepo.Create(app); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func demoJobs(employerID string) []*models.Job {
	return []*models.Job{
		{
			Title:        "Software Developer",
			Company:      "Tech Solutions",
			Location:     "110001",
			Description:  "We are looking for a skilled software developer to join our team...",
			Requirements: []string{"React", "Node.js", "3+ years experience", "Bachelor's degree"},
			Salary:       "₹6,00,000 - ₹10,00,000 per annum",
			JobType:      "Full-time",
			Category:     "Information Technology",
			PostedDate:   time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC),
			EmployerID:   employerID,
			Status:       models.JobStatusActive,
		},
		{
			Title:        "Marketing Manager",
			Company:      "Brand Builders",
			Location:     "400001",
			Description:  "Seeking a marketing professional to lead our brand strategy...",
			Requirements: []string{"5+ years marketing experience", "MBA preferred", "Digital marketing skills"},
			Salary:       "₹8,00,000 - ₹12,00,000 per annum",
			JobType:      "Full-time",
			Category:     "Marketing",
			PostedDate:   time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC),
			EmployerID:   employerID,
			Status:       models.JobStatusActive,
		},
		{
			Title:        "Customer Service Representative",
			Company:      "Support Hub",
			Location:     "110001",
			Description:  "Join our team to provide excellent customer support...",
			Requirements: []string{"Good communication skills", "Problem-solving ability", "Customer-oriented"},
			Salary:       "₹2,50,000 - ₹3,50,000 per annum",
			JobType:      "Part-time",
			Category:     "Customer Service",
			PostedDate:   time.Date(2023, 4, 20, 0, 0, 0, 0, time.UTC),
			EmployerID:   employerID,
			Status:       models.JobStatusActive,
		},
		{
			Title:        "Data Scientist",
			Company:      "Data Insights",
			Location:     "500001",
			Description:  "Looking for a data scientist to analyze large datasets and extract insights...",
			Requirements: []string{"Python", "Machine Learning", "Statistics", "Master's degree preferred"},
			Salary:       "₹10,00,000 - ₹15,00,000 per annum",
			JobType:      "Full-time",
			Category:     "Data Science",
			PostedDate:   time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC),
			EmployerID:   employerID,
			Status:       models.JobStatusActive,
		},
		{
			Title:        "Graphic Designer",
			Company:      "Creative Studio",
			Location:     "700001",
			Description:  "Join our creative team to design visual content for our clients...",
			Requirements: []string{"Adobe Creative Suite", "Portfolio", "2+ years experience"},
			Salary:       "₹4,00,000 - ₹7,00,000 per annum",
			JobType:      "Contract",
			Category:     "Design",
			PostedDate:   time.Date(2023, 4, 12, 0, 0, 0, 0, time.UTC),
			EmployerID:   employerID,
			Status:       models.JobStatusActive,
		},
	}
}

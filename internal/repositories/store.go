package repositories

import (
	"context"

	"github.com/maxaizer/job-board/internal/domain/models"
)

// Store is the backend contract shared by the in-memory and Mongo
// implementations. Point lookups report a miss as (nil, nil): not finding
// a record is a normal outcome, only infrastructure faults are errors.
// Create assigns a fresh id and defaulted fields and never overwrites.
type Store interface {
	Cities(ctx context.Context) ([]models.City, error)
	City(ctx context.Context, id string) (*models.City, error)
	CreateCity(ctx context.Context, city models.InsertCity) (*models.City, error)

	Companies(ctx context.Context) ([]models.Company, error)
	Company(ctx context.Context, id string) (*models.Company, error)
	CreateCompany(ctx context.Context, company models.InsertCompany) (*models.Company, error)

	JobCategories(ctx context.Context) ([]models.JobCategory, error)
	JobCategory(ctx context.Context, id string) (*models.JobCategory, error)
	CreateJobCategory(ctx context.Context, category models.InsertJobCategory) (*models.JobCategory, error)

	Qualifications(ctx context.Context) ([]models.Qualification, error)
	Qualification(ctx context.Context, id string) (*models.Qualification, error)
	CreateQualification(ctx context.Context, qualification models.InsertQualification) (*models.Qualification, error)

	JobTypes(ctx context.Context) ([]models.JobType, error)
	JobType(ctx context.Context, id string) (*models.JobType, error)
	CreateJobType(ctx context.Context, jobType models.InsertJobType) (*models.JobType, error)

	Jobs(ctx context.Context) ([]models.Job, error)
	Job(ctx context.Context, id string) (*models.Job, error)
	CreateJob(ctx context.Context, job models.InsertJob) (*models.Job, error)

	CreateApplication(ctx context.Context, application models.InsertJobApplication) (*models.JobApplication, error)
	ApplicationsByJob(ctx context.Context, jobID string) ([]models.JobApplication, error)
}

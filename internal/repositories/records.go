package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/maxaizer/job-board/internal/domain/models"
)

// Record constructors apply the creation-time defaults once, so both
// backends store byte-for-byte identical shapes for the same input.

func newCity(insert models.InsertCity) models.City {
	return models.City{
		ID:       uuid.NewString(),
		Name:     insert.Name,
		State:    insert.State,
		JobCount: insert.JobCount,
		ImageURL: insert.ImageURL,
	}
}

func newCompany(insert models.InsertCompany) models.Company {
	return models.Company{
		ID:          uuid.NewString(),
		Name:        insert.Name,
		Logo:        insert.Logo,
		Description: insert.Description,
		Website:     insert.Website,
		Industry:    insert.Industry,
		Size:        insert.Size,
		CreatedAt:   time.Now().UTC(),
	}
}

func newJobCategory(insert models.InsertJobCategory) models.JobCategory {
	return models.JobCategory{
		ID:       uuid.NewString(),
		Name:     insert.Name,
		Icon:     insert.Icon,
		JobCount: insert.JobCount,
	}
}

func newQualification(insert models.InsertQualification) models.Qualification {
	return models.Qualification{
		ID:       uuid.NewString(),
		Name:     insert.Name,
		Level:    insert.Level,
		JobCount: insert.JobCount,
	}
}

func newJobType(insert models.InsertJobType) models.JobType {
	return models.JobType{
		ID:       uuid.NewString(),
		Name:     insert.Name,
		Icon:     insert.Icon,
		JobCount: insert.JobCount,
	}
}

func newJob(insert models.InsertJob) models.Job {

	now := time.Now().UTC()

	postedAt := now
	if insert.PostedAt != nil {
		postedAt = *insert.PostedAt
	}

	isActive := true
	if insert.IsActive != nil {
		isActive = *insert.IsActive
	}

	isFeatured := false
	if insert.IsFeatured != nil {
		isFeatured = *insert.IsFeatured
	}

	return models.Job{
		ID:              uuid.NewString(),
		Title:           insert.Title,
		Description:     insert.Description,
		Location:        insert.Location,
		CompanyID:       insert.CompanyID,
		CityID:          insert.CityID,
		CategoryID:      insert.CategoryID,
		QualificationID: insert.QualificationID,
		JobTypeID:       insert.JobTypeID,
		SalaryMin:       insert.SalaryMin,
		SalaryMax:       insert.SalaryMax,
		Experience:      insert.Experience,
		IsActive:        isActive,
		IsFeatured:      isFeatured,
		ContactPhone:    insert.ContactPhone,
		ContactEmail:    insert.ContactEmail,
		Requirements:    insert.Requirements,
		Benefits:        insert.Benefits,
		PostedAt:        &postedAt,
		CreatedAt:       now,
	}
}

func newApplication(insert models.InsertJobApplication) models.JobApplication {

	status := insert.Status
	if status == "" {
		status = "pending"
	}

	return models.JobApplication{
		ID:             uuid.NewString(),
		JobID:          insert.JobID,
		ApplicantName:  insert.ApplicantName,
		ApplicantEmail: insert.ApplicantEmail,
		ApplicantPhone: insert.ApplicantPhone,
		Resume:         insert.Resume,
		CoverLetter:    insert.CoverLetter,
		Status:         status,
		AppliedAt:      time.Now().UTC(),
	}
}

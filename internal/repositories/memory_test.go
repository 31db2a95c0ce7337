package repositories

import (
	"context"
	"testing"

	"github.com/maxaizer/job-board/internal/domain/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func Test_Memory_SeedsDemoDataset(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	cities, _ := store.Cities(ctx)
	companies, _ := store.Companies(ctx)
	categories, _ := store.JobCategories(ctx)
	qualifications, _ := store.Qualifications(ctx)
	jobTypes, _ := store.JobTypes(ctx)
	jobs, _ := store.Jobs(ctx)

	assert.Len(t, cities, 5)
	assert.Len(t, companies, 9)
	assert.Len(t, categories, 12)
	assert.Len(t, qualifications, 6)
	assert.Len(t, jobTypes, 5)
	assert.Len(t, jobs, 4)
}

func Test_Memory_SeededJobsReferenceExistingEntities(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	jobs, _ := store.Jobs(ctx)

	for _, job := range jobs {
		assert.NotEmpty(t, job.ID)
		assert.True(t, job.IsActive)
		assert.NotNil(t, job.PostedAt)

		company, err := store.Company(ctx, *job.CompanyID)
		assert.NoError(t, err)
		assert.NotNil(t, company)

		city, err := store.City(ctx, *job.CityID)
		assert.NoError(t, err)
		assert.NotNil(t, city)
	}
}

func Test_Memory_MissingEntityReturnsNilWithoutError(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	city, err := store.City(ctx, "no-such-id")
	assert.NoError(t, err)
	assert.Nil(t, city)

	job, err := store.Job(ctx, "no-such-id")
	assert.NoError(t, err)
	assert.Nil(t, job)
}

func Test_Memory_CreateJobAppliesDefaults(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	job, err := store.CreateJob(ctx, models.InsertJob{Title: "Backend Developer"})

	assert.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.True(t, job.IsActive)
	assert.False(t, job.IsFeatured)
	assert.NotNil(t, job.PostedAt)

	found, err := store.Job(ctx, job.ID)
	assert.NoError(t, err)
	assert.Equal(t, *job, *found)
}

func Test_Memory_CreateJobHonorsExplicitFlags(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	job, err := store.CreateJob(ctx, models.InsertJob{
		Title:      "Hidden Job",
		IsActive:   lo.ToPtr(false),
		IsFeatured: lo.ToPtr(true),
	})

	assert.NoError(t, err)
	assert.False(t, job.IsActive)
	assert.True(t, job.IsFeatured)
}

func Test_Memory_ApplicationsByJobFiltersOnJobId(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	first, _ := store.CreateJob(ctx, models.InsertJob{Title: "First"})
	second, _ := store.CreateJob(ctx, models.InsertJob{Title: "Second"})

	application, err := store.CreateApplication(ctx, models.InsertJobApplication{
		JobID:          &first.ID,
		ApplicantName:  "Ann",
		ApplicantEmail: "ann@example.com",
		ApplicantPhone: "111-111",
	})
	assert.NoError(t, err)
	assert.Equal(t, "pending", application.Status)

	_, err = store.CreateApplication(ctx, models.InsertJobApplication{
		JobID:          &second.ID,
		ApplicantName:  "Bob",
		ApplicantEmail: "bob@example.com",
		ApplicantPhone: "222-222",
	})
	assert.NoError(t, err)

	applications, err := store.ApplicationsByJob(ctx, first.ID)
	assert.NoError(t, err)
	assert.Len(t, applications, 1)
	assert.Equal(t, "Ann", applications[0].ApplicantName)
}

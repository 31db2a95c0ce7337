package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/job-board/internal/domain/models"
	"github.com/maxaizer/job-board/internal/events"
	"github.com/maxaizer/job-board/internal/metrics"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	defaultPageSize  = 20
	featuredPageSize = 8
	recentPageSize   = 6
)

var ErrJobNotFound = errors.New("job not found")

type jobStore interface {
	Jobs(ctx context.Context) ([]models.Job, error)
	Job(ctx context.Context, id string) (*models.Job, error)
	CreateJob(ctx context.Context, job models.InsertJob) (*models.Job, error)
	CreateCompany(ctx context.Context, company models.InsertCompany) (*models.Company, error)
	Company(ctx context.Context, id string) (*models.Company, error)
	City(ctx context.Context, id string) (*models.City, error)
	JobCategory(ctx context.Context, id string) (*models.JobCategory, error)
	Qualification(ctx context.Context, id string) (*models.Qualification, error)
	JobType(ctx context.Context, id string) (*models.JobType, error)
	CreateApplication(ctx context.Context, application models.InsertJobApplication) (*models.JobApplication, error)
	ApplicationsByJob(ctx context.Context, jobID string) ([]models.JobApplication, error)
}

// JobFilter carries the listing predicates. Id predicates are exact string
// matches ANDed together; Search is a case-insensitive substring match
// against title, description or location.
type JobFilter struct {
	CityID          string
	CategoryID      string
	QualificationID string
	JobTypeID       string
	Search          string
	Limit           int
	Offset          int
}

type JobPage struct {
	Jobs  []models.JobWithDetails `json:"jobs"`
	Total int                     `json:"total"`
}

// PostJobInput is a job to create plus, optionally, inline fields for a
// company that does not exist yet. When the job carries no companyId and
// the inline company has a name, the company is created first.
type PostJobInput struct {
	Job     models.InsertJob
	Company *models.InsertCompany
}

// Jobs answers every job query the same way for both storage backends:
// filtering, ordering and pagination run here over the store contract, so
// the active backend can never change listing semantics.
type Jobs struct {
	store jobStore
	bus   EventBus.Bus
}

func NewJobs(store jobStore, bus EventBus.Bus) *Jobs {
	return &Jobs{store: store, bus: bus}
}

// List returns one page of active jobs matching the filter, hydrated with
// their related entities, plus the total match count before pagination.
func (s *Jobs) List(ctx context.Context, filter JobFilter) (*JobPage, error) {

	jobs, err := s.store.Jobs(ctx)
	if err != nil {
		return nil, err
	}

	matched := lo.Filter(jobs, func(job models.Job, _ int) bool {
		return job.IsActive && matchesFilter(job, filter)
	})
	sortByPostedAt(matched)

	total := len(matched)

	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	page := []models.Job{}
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		page = matched[offset:end]
	}

	hydrated, err := s.hydrateAll(ctx, page)
	if err != nil {
		return nil, err
	}

	return &JobPage{Jobs: hydrated, Total: total}, nil
}

// Get is a direct lookup and deliberately ignores isActive: a direct link
// to an unpublished job still resolves. A miss returns (nil, nil).
func (s *Jobs) Get(ctx context.Context, id string) (*models.JobWithDetails, error) {

	job, err := s.store.Job(ctx, id)
	if err != nil || job == nil {
		return nil, err
	}

	hydrated, err := s.hydrate(ctx, *job)
	if err != nil {
		return nil, err
	}
	return &hydrated, nil
}

func (s *Jobs) Featured(ctx context.Context) ([]models.JobWithDetails, error) {

	jobs, err := s.store.Jobs(ctx)
	if err != nil {
		return nil, err
	}

	featured := lo.Filter(jobs, func(job models.Job, _ int) bool {
		return job.IsActive && job.IsFeatured
	})
	sortByPostedAt(featured)

	if len(featured) > featuredPageSize {
		featured = featured[:featuredPageSize]
	}
	return s.hydrateAll(ctx, featured)
}

func (s *Jobs) Recent(ctx context.Context, limit int) ([]models.JobWithDetails, error) {

	if limit <= 0 {
		limit = recentPageSize
	}

	jobs, err := s.store.Jobs(ctx)
	if err != nil {
		return nil, err
	}

	recent := lo.Filter(jobs, func(job models.Job, _ int) bool {
		return job.IsActive
	})
	sortByPostedAt(recent)

	if len(recent) > limit {
		recent = recent[:limit]
	}
	return s.hydrateAll(ctx, recent)
}

func (s *Jobs) Post(ctx context.Context, input PostJobInput) (*models.Job, error) {

	insert := input.Job

	companyName := ""
	if insert.CompanyID == nil || *insert.CompanyID == "" {
		insert.CompanyID = nil
		if input.Company != nil && input.Company.Name != "" {
			company, err := s.store.CreateCompany(ctx, *input.Company)
			if err != nil {
				return nil, err
			}
			insert.CompanyID = &company.ID
			companyName = company.Name
		}
	} else if company, err := s.store.Company(ctx, *insert.CompanyID); err == nil && company != nil {
		companyName = company.Name
	}

	job, err := s.store.CreateJob(ctx, insert)
	if err != nil {
		return nil, err
	}

	metrics.PostedJobsCounter.Inc()
	s.bus.Publish(events.JobPostedTopic, events.JobPosted{Job: *job, CompanyName: companyName})
	return job, nil
}

// Apply records an application against an existing job. The job lookup is
// the same unfiltered one Get uses, so applying to an inactive job works.
func (s *Jobs) Apply(ctx context.Context, jobID string, insert models.InsertJobApplication) (*models.JobApplication, error) {

	job, err := s.store.Job(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	insert.JobID = &job.ID
	application, err := s.store.CreateApplication(ctx, insert)
	if err != nil {
		return nil, err
	}

	metrics.ApplicationsCounter.Inc()
	s.bus.Publish(events.ApplicationReceivedTopic, events.ApplicationReceived{
		Application: *application,
		JobTitle:    job.Title,
	})
	return application, nil
}

func (s *Jobs) ApplicationsForJob(ctx context.Context, jobID string) ([]models.JobApplication, error) {

	applications, err := s.store.ApplicationsByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	sort.Slice(applications, func(i, j int) bool {
		if applications[i].AppliedAt.Equal(applications[j].AppliedAt) {
			return applications[i].ID < applications[j].ID
		}
		return applications[i].AppliedAt.After(applications[j].AppliedAt)
	})
	return applications, nil
}

func matchesFilter(job models.Job, filter JobFilter) bool {

	if filter.CityID != "" && (job.CityID == nil || *job.CityID != filter.CityID) {
		return false
	}
	if filter.CategoryID != "" && (job.CategoryID == nil || *job.CategoryID != filter.CategoryID) {
		return false
	}
	if filter.QualificationID != "" && (job.QualificationID == nil || *job.QualificationID != filter.QualificationID) {
		return false
	}
	if filter.JobTypeID != "" && (job.JobTypeID == nil || *job.JobTypeID != filter.JobTypeID) {
		return false
	}

	if filter.Search != "" {
		search := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(job.Title), search) &&
			!strings.Contains(strings.ToLower(job.Description), search) &&
			!strings.Contains(strings.ToLower(job.Location), search) {
			return false
		}
	}

	return true
}

// sortByPostedAt orders newest first; a missing postedAt counts as the zero
// time and sinks to the end. Ties fall back to id so that repeated queries
// over an unchanged snapshot always paginate identically.
func sortByPostedAt(jobs []models.Job) {
	sort.Slice(jobs, func(i, j int) bool {
		a, b := postedAtOrZero(jobs[i]), postedAtOrZero(jobs[j])
		if a.Equal(b) {
			return jobs[i].ID < jobs[j].ID
		}
		return a.After(b)
	})
}

func postedAtOrZero(job models.Job) time.Time {
	if job.PostedAt == nil {
		return time.Time{}
	}
	return *job.PostedAt
}

func (s *Jobs) hydrateAll(ctx context.Context, jobs []models.Job) ([]models.JobWithDetails, error) {

	hydrated := make([]models.JobWithDetails, 0, len(jobs))
	for _, job := range jobs {
		details, err := s.hydrate(ctx, job)
		if err != nil {
			return nil, err
		}
		hydrated = append(hydrated, details)
	}
	return hydrated, nil
}

// hydrate resolves each non-null foreign key with a point lookup. A
// dangling reference hydrates to null; only storage faults are errors.
func (s *Jobs) hydrate(ctx context.Context, job models.Job) (models.JobWithDetails, error) {

	details := models.JobWithDetails{Job: job}
	var err error

	if job.CompanyID != nil {
		if details.Company, err = s.store.Company(ctx, *job.CompanyID); err != nil {
			return details, err
		}
	}
	if job.CityID != nil {
		if details.City, err = s.store.City(ctx, *job.CityID); err != nil {
			return details, err
		}
	}
	if job.CategoryID != nil {
		if details.Category, err = s.store.JobCategory(ctx, *job.CategoryID); err != nil {
			return details, err
		}
	}
	if job.QualificationID != nil {
		if details.Qualification, err = s.store.Qualification(ctx, *job.QualificationID); err != nil {
			return details, err
		}
	}
	if job.JobTypeID != nil {
		if details.JobType, err = s.store.JobType(ctx, *job.JobTypeID); err != nil {
			return details, err
		}
	}

	return details, nil
}

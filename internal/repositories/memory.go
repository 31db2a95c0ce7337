package repositories

import (
	"context"
	"sync"

	"github.com/maxaizer/job-board/internal/domain/models"
	"github.com/samber/lo"
)

// Memory keeps every entity kind in a map keyed by id, seeded with the
// demonstration dataset. Handlers run concurrently, so unlike a
// single-threaded event loop this store needs its own lock.
type Memory struct {
	mu             sync.RWMutex
	cities         map[string]models.City
	companies      map[string]models.Company
	jobCategories  map[string]models.JobCategory
	qualifications map[string]models.Qualification
	jobTypes       map[string]models.JobType
	jobs           map[string]models.Job
	applications   map[string]models.JobApplication
}

func NewMemory() *Memory {
	m := &Memory{
		cities:         make(map[string]models.City),
		companies:      make(map[string]models.Company),
		jobCategories:  make(map[string]models.JobCategory),
		qualifications: make(map[string]models.Qualification),
		jobTypes:       make(map[string]models.JobType),
		jobs:           make(map[string]models.Job),
		applications:   make(map[string]models.JobApplication),
	}
	m.seed()
	return m
}

func (m *Memory) Cities(_ context.Context) ([]models.City, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.Values(m.cities), nil
}

func (m *Memory) City(_ context.Context, id string) (*models.City, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if city, ok := m.cities[id]; ok {
		return &city, nil
	}
	return nil, nil
}

func (m *Memory) CreateCity(_ context.Context, insert models.InsertCity) (*models.City, error) {
	city := newCity(insert)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cities[city.ID] = city
	return &city, nil
}

func (m *Memory) Companies(_ context.Context) ([]models.Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.Values(m.companies), nil
}

func (m *Memory) Company(_ context.Context, id string) (*models.Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if company, ok := m.companies[id]; ok {
		return &company, nil
	}
	return nil, nil
}

func (m *Memory) CreateCompany(_ context.Context, insert models.InsertCompany) (*models.Company, error) {
	company := newCompany(insert)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.companies[company.ID] = company
	return &company, nil
}

func (m *Memory) JobCategories(_ context.Context) ([]models.JobCategory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.Values(m.jobCategories), nil
}

func (m *Memory) JobCategory(_ context.Context, id string) (*models.JobCategory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if category, ok := m.jobCategories[id]; ok {
		return &category, nil
	}
	return nil, nil
}

func (m *Memory) CreateJobCategory(_ context.Context, insert models.InsertJobCategory) (*models.JobCategory, error) {
	category := newJobCategory(insert)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobCategories[category.ID] = category
	return &category, nil
}

func (m *Memory) Qualifications(_ context.Context) ([]models.Qualification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.Values(m.qualifications), nil
}

func (m *Memory) Qualification(_ context.Context, id string) (*models.Qualification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if qualification, ok := m.qualifications[id]; ok {
		return &qualification, nil
	}
	return nil, nil
}

func (m *Memory) CreateQualification(_ context.Context, insert models.InsertQualification) (*models.Qualification, error) {
	qualification := newQualification(insert)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.qualifications[qualification.ID] = qualification
	return &qualification, nil
}

func (m *Memory) JobTypes(_ context.Context) ([]models.JobType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.Values(m.jobTypes), nil
}

func (m *Memory) JobType(_ context.Context, id string) (*models.JobType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if jobType, ok := m.jobTypes[id]; ok {
		return &jobType, nil
	}
	return nil, nil
}

func (m *Memory) CreateJobType(_ context.Context, insert models.InsertJobType) (*models.JobType, error) {
	jobType := newJobType(insert)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobTypes[jobType.ID] = jobType
	return &jobType, nil
}

func (m *Memory) Jobs(_ context.Context) ([]models.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.Values(m.jobs), nil
}

func (m *Memory) Job(_ context.Context, id string) (*models.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if job, ok := m.jobs[id]; ok {
		return &job, nil
	}
	return nil, nil
}

func (m *Memory) CreateJob(_ context.Context, insert models.InsertJob) (*models.Job, error) {
	job := newJob(insert)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[job.ID] = job
	return &job, nil
}

func (m *Memory) CreateApplication(_ context.Context, insert models.InsertJobApplication) (*models.JobApplication, error) {
	application := newApplication(insert)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applications[application.ID] = application
	return &application, nil
}

func (m *Memory) ApplicationsByJob(_ context.Context, jobID string) ([]models.JobApplication, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.Filter(lo.Values(m.applications), func(application models.JobApplication, _ int) bool {
		return application.JobID != nil && *application.JobID == jobID
	}), nil
}

package models

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Job references its related entities by id only. The references are weak:
// a dangling id is legal and hydrates to null instead of failing.
type Job struct {
	ID              string     `json:"id" bson:"id"`
	Title           string     `json:"title" bson:"title"`
	Description     string     `json:"description" bson:"description"`
	CompanyID       *string    `json:"companyId" bson:"companyId"`
	CityID          *string    `json:"cityId" bson:"cityId"`
	CategoryID      *string    `json:"categoryId" bson:"categoryId"`
	QualificationID *string    `json:"qualificationId" bson:"qualificationId"`
	JobTypeID       *string    `json:"jobTypeId" bson:"jobTypeId"`
	SalaryMin       *int       `json:"salaryMin" bson:"salaryMin"`
	SalaryMax       *int       `json:"salaryMax" bson:"salaryMax"`
	Experience      *string    `json:"experience" bson:"experience"`
	Location        string     `json:"location" bson:"location"`
	IsActive        bool       `json:"isActive" bson:"isActive"`
	IsFeatured      bool       `json:"isFeatured" bson:"isFeatured"`
	ContactPhone    *string    `json:"contactPhone" bson:"contactPhone"`
	ContactEmail    *string    `json:"contactEmail" bson:"contactEmail"`
	Requirements    StringList `json:"requirements" bson:"requirements"`
	Benefits        StringList `json:"benefits" bson:"benefits"`
	PostedAt        *time.Time `json:"postedAt" bson:"postedAt"`
	CreatedAt       time.Time  `json:"createdAt" bson:"createdAt"`
}

type InsertJob struct {
	Title           string
	Description     string
	Location        string
	CompanyID       *string
	CityID          *string
	CategoryID      *string
	QualificationID *string
	JobTypeID       *string
	SalaryMin       *int
	SalaryMax       *int
	Experience      *string
	IsActive        *bool
	IsFeatured      *bool
	ContactPhone    *string
	ContactEmail    *string
	Requirements    StringList
	Benefits        StringList
	PostedAt        *time.Time
}

// JobWithDetails is a read-only view: a job plus whatever of its related
// entities still resolve. It is assembled fresh on every read, never stored.
type JobWithDetails struct {
	Job           `bson:",inline"`
	Company       *Company       `json:"company"`
	City          *City          `json:"city"`
	Category      *JobCategory   `json:"category"`
	Qualification *Qualification `json:"qualification"`
	JobType       *JobType       `json:"jobType"`
}

// StringList accepts either a JSON array of strings or a single string that
// gets split on newlines or commas, the way job posting forms submit it.
type StringList []string

var stringListSeparator = regexp.MustCompile(`\r?\n|,\s*`)

func (l *StringList) UnmarshalJSON(data []byte) error {

	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parts := lo.Map(stringListSeparator.Split(raw, -1), func(part string, _ int) string {
		return strings.TrimSpace(part)
	})
	*l = lo.Filter(parts, func(part string, _ int) bool {
		return part != ""
	})
	return nil
}

package models

// Taxonomy entities are seeded once and never mutated afterwards; their
// jobCount fields are display-only values, not derived from live jobs.

type JobCategory struct {
	ID       string  `json:"id" bson:"id"`
	Name     string  `json:"name" bson:"name"`
	Icon     *string `json:"icon" bson:"icon"`
	JobCount int     `json:"jobCount" bson:"jobCount"`
}

type InsertJobCategory struct {
	Name     string
	Icon     *string
	JobCount int
}

type Qualification struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Level    *int   `json:"level" bson:"level"`
	JobCount int    `json:"jobCount" bson:"jobCount"`
}

type InsertQualification struct {
	Name     string
	Level    *int
	JobCount int
}

type JobType struct {
	ID       string  `json:"id" bson:"id"`
	Name     string  `json:"name" bson:"name"`
	Icon     *string `json:"icon" bson:"icon"`
	JobCount int     `json:"jobCount" bson:"jobCount"`
}

type InsertJobType struct {
	Name     string
	Icon     *string
	JobCount int
}

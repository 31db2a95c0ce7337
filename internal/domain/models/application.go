package models

import "time"

// JobApplication is append-only: created by the apply endpoint and never
// updated or deleted afterwards.
type JobApplication struct {
	ID             string    `json:"id" bson:"id"`
	JobID          *string   `json:"jobId" bson:"jobId"`
	ApplicantName  string    `json:"applicantName" bson:"applicantName"`
	ApplicantEmail string    `json:"applicantEmail" bson:"applicantEmail"`
	ApplicantPhone string    `json:"applicantPhone" bson:"applicantPhone"`
	Resume         *string   `json:"resume" bson:"resume"`
	CoverLetter    *string   `json:"coverLetter" bson:"coverLetter"`
	Status         string    `json:"status" bson:"status"`
	AppliedAt      time.Time `json:"appliedAt" bson:"appliedAt"`
}

type InsertJobApplication struct {
	JobID          *string
	ApplicantName  string
	ApplicantEmail string
	ApplicantPhone string
	Resume         *string
	CoverLetter    *string
	Status         string
}

package events

import "github.com/maxaizer/job-board/internal/domain/models"

var JobPostedTopic = "JobPostedEvent"

type JobPosted struct {
	Job         models.Job
	CompanyName string
}

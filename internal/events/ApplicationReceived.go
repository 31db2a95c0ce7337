package events

import "github.com/maxaizer/job-board/internal/domain/models"

var ApplicationReceivedTopic = "ApplicationReceivedEvent"

type ApplicationReceived struct {
	Application models.JobApplication
	JobTitle    string
}

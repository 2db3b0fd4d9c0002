package job

import (
	"time"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/matching"

	"github.com/google/uuid"
)

type Job struct {
	ID              uuid.UUID              `json:"id"`
	Title           string                 `json:"title"`
	Company         string                 `json:"company"`
	Location        string                 `json:"location"`
	Description     string                 `json:"description"`
	RequiredSkills  []string               `json:"requiredSkills"`
	ExperienceLevel career.ExperienceLevel `json:"experienceLevel"`
	JobType         career.JobType         `json:"jobType"`
	Track           career.Track           `json:"track"`
	Salary          string                 `json:"salary"`
	ApplicationLink string                 `json:"applicationLink"`
	PostedAt        time.Time              `json:"postedDate"`
	IsActive        bool                   `json:"isActive"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// MatchProfile projects the fields the scorer reads.
func (j Job) MatchProfile() matching.JobProfile {
	return matching.JobProfile{
		RequiredSkills:  j.RequiredSkills,
		ExperienceLevel: j.ExperienceLevel,
		Track:           j.Track,
	}
}

package resource

import (
	"time"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/matching"

	"github.com/google/uuid"
)

type LearningResource struct {
	ID            uuid.UUID         `json:"id"`
	Title         string            `json:"title"`
	Platform      career.Platform   `json:"platform"`
	URL           string            `json:"url"`
	Description   string            `json:"description"`
	RelatedSkills []string          `json:"relatedSkills"`
	Cost          career.Cost       `json:"cost"`
	Duration      string            `json:"duration"`
	Difficulty    career.Difficulty `json:"difficulty"`
	Track         career.Track      `json:"track"`
	Rating        float64           `json:"rating"`
	CreatedAt     time.Time         `json:"createdAt"`
}

func (r LearningResource) MatchProfile() matching.ResourceProfile {
	return matching.ResourceProfile{
		RelatedSkills: r.RelatedSkills,
		Track:         r.Track,
		Cost:          r.Cost,
		Difficulty:    r.Difficulty,
	}
}

package user

import (
	"time"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/matching"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID              `json:"id"`
	Email           string                 `json:"email"`
	PasswordHash    string                 `json:"-"`
	FullName        string                 `json:"fullName"`
	EducationLevel  career.EducationLevel  `json:"educationLevel"`
	Department      string                 `json:"department"`
	ExperienceLevel career.ExperienceLevel `json:"experienceLevel"`
	PreferredTrack  career.Track           `json:"preferredTrack"`
	Skills          []string               `json:"skills"`
	TargetRoles     []string               `json:"targetRoles"`
	Bio             string                 `json:"bio"`
	Projects        []Project              `json:"projects"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// Project is a portfolio entry listed on the profile. It does not take part
// in scoring.
type Project struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
}

// Profile is the fixed-shape candidate record the recommenders score against.
func (u User) Profile() matching.Profile {
	return matching.Profile{
		Skills:          u.Skills,
		ExperienceLevel: u.ExperienceLevel,
		PreferredTrack:  u.PreferredTrack,
	}
}

package matching

import (
	"fmt"
	"math"
	"strings"

	"career-compass/internal/domain/career"
)

const (
	skillWeight = 70.0

	experienceMet      = 15.0
	experienceOneBelow = 10.0
	experienceFloor    = 5.0

	trackExact   = 15.0
	trackRelated = 8.0

	maxReasonMatches = 5
	maxReasonMissing = 3
)

// Profile is the candidate side of every scoring call.
type Profile struct {
	Skills          []string
	ExperienceLevel career.ExperienceLevel
	PreferredTrack  career.Track
}

// JobProfile carries the job fields that take part in scoring.
type JobProfile struct {
	RequiredSkills  []string
	ExperienceLevel career.ExperienceLevel
	Track           career.Track
}

type Result struct {
	Score         int      `json:"score"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
	Reasons       []string `json:"reasons"`
}

// Score computes the 0-100 compatibility between a candidate and one job:
// up to 70 points for required-skill coverage, 15 for experience and 15 for
// track alignment. It never fails; degenerate input lowers a component to its
// floor instead.
//
// Every required skill lands in exactly one of MatchedSkills or MissingSkills,
// in job order and exactly as stored on the job. Entries are trimmed only for
// comparison, so a blank requirement matches any non-blank candidate skill.
func Score(skills []string, exp career.ExperienceLevel, track career.Track, job JobProfile) Result {
	userSkills := CleanSkills(skills)
	required := job.RequiredSkills

	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for _, r := range required {
		if anySkillMatches(strings.TrimSpace(r), userSkills) {
			matched = append(matched, r)
		} else {
			missing = append(missing, r)
		}
	}

	total := skillComponent(len(matched), len(required)) +
		experienceComponent(exp, job.ExperienceLevel) +
		trackComponent(track, job.Track)

	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Result{
		Score:         score,
		MatchedSkills: matched,
		MissingSkills: missing,
		Reasons:       matchReasons(matched, missing, exp, job.ExperienceLevel),
	}
}

// ScoreProfile is Score with the candidate fields taken from p.
func ScoreProfile(p Profile, job JobProfile) Result {
	return Score(p.Skills, p.ExperienceLevel, p.PreferredTrack, job)
}

func skillComponent(matched, required int) float64 {
	if required == 0 {
		return 0
	}
	return float64(matched) / float64(required) * skillWeight
}

func experienceComponent(candidate, job career.ExperienceLevel) float64 {
	ci, cok := candidate.Rank()
	ji, jok := job.Rank()
	if !cok || !jok {
		return experienceFloor
	}
	switch {
	case ci >= ji:
		return experienceMet
	case ci == ji-1:
		return experienceOneBelow
	default:
		return experienceFloor
	}
}

func trackComponent(candidate, job career.Track) float64 {
	if !candidate.Valid() || !job.Valid() {
		return 0
	}
	if candidate == job {
		return trackExact
	}
	if isRelatedTrack(candidate, job) {
		return trackRelated
	}
	return 0
}

// matchReasons lists matched skills lowercased, missing skills as given, and
// notes the experience level only on an exact match (not on "at least").
func matchReasons(matched, missing []string, candidate, job career.ExperienceLevel) []string {
	reasons := make([]string, 0, 3)

	if len(matched) > 0 {
		shown := matched
		if len(shown) > maxReasonMatches {
			shown = shown[:maxReasonMatches]
		}
		lower := make([]string, 0, len(shown))
		for _, s := range shown {
			lower = append(lower, strings.ToLower(s))
		}
		reasons = append(reasons, "Matches: "+strings.Join(lower, ", "))
	}

	if len(missing) > 0 {
		shown := missing
		if len(shown) > maxReasonMissing {
			shown = shown[:maxReasonMissing]
		}
		reasons = append(reasons, "Missing: "+strings.Join(shown, ", "))
	}

	if candidate.Valid() && candidate == job {
		reasons = append(reasons, fmt.Sprintf("Experience level matches (%s)", job))
	}

	return reasons
}

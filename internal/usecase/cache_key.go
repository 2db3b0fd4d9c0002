package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

const (
	JobsCachePrefix      = "jobs:"
	ResourcesCachePrefix = "resources:"
)

type jobListCacheKeyInput struct {
	Track           string `json:"track"`
	Location        string `json:"location"`
	JobType         string `json:"job_type"`
	ExperienceLevel string `json:"experience_level"`
	Search          string `json:"search"`
	Limit           int    `json:"limit"`
	Offset          int    `json:"offset"`
}

type resourceListCacheKeyInput struct {
	Skill      string   `json:"skill"`
	AnySkills  []string `json:"any_skills"`
	Platform   string   `json:"platform"`
	Cost       string   `json:"cost"`
	Difficulty string   `json:"difficulty"`
	Track      string   `json:"track"`
	Search     string   `json:"search"`
	Limit      int      `json:"limit"`
	Offset     int      `json:"offset"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func hashKey(prefix string, in any) string {
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return prefix + hex.EncodeToString(sum[:])
}

func JobsListCacheKey(p JobListParams) string {
	return hashKey(JobsCachePrefix+"list:", jobListCacheKeyInput{
		Track:           p.Track,
		Location:        normalizeSearchValue(p.Location),
		JobType:         p.JobType,
		ExperienceLevel: p.ExperienceLevel,
		Search:          normalizeSearchValue(p.Search),
		Limit:           p.Limit,
		Offset:          p.Offset,
	})
}

func JobCacheKey(id uuid.UUID) string {
	return JobsCachePrefix + "item:" + id.String()
}

func ResourcesListCacheKey(p ResourceListParams) string {
	skills := make([]string, 0, len(p.AnySkills))
	for _, s := range p.AnySkills {
		s = normalizeSearchValue(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}
	return hashKey(ResourcesCachePrefix+"list:", resourceListCacheKeyInput{
		Skill:      normalizeSearchValue(p.Skill),
		AnySkills:  skills,
		Platform:   p.Platform,
		Cost:       p.Cost,
		Difficulty: p.Difficulty,
		Track:      p.Track,
		Search:     normalizeSearchValue(p.Search),
		Limit:      p.Limit,
		Offset:     p.Offset,
	})
}

func ResourceCacheKey(id uuid.UUID) string {
	return ResourcesCachePrefix + "item:" + id.String()
}

func cacheLockKey(key string) string {
	key = strings.TrimSpace(key)
	if i := strings.Index(key, ":"); i >= 0 {
		return key[:i] + ":lock:" + key[i+1:]
	}
	return "lock:" + key
}

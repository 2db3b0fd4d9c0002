package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"career-compass/internal/domain/job"
	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/resource"
	"career-compass/internal/domain/user"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]user.User
	err   error
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uuid.UUID]user.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) CreateUser(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return user.User{}, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return user.User{}, r.err
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetUserByEmail(ctx, email)
	if err == user.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	r.users[u.ID] = u
	return nil
}

type fakeJobRepo struct {
	jobs      []job.Job
	err       error
	listCalls int
	lastList  repository.JobFilter
}

func (r *fakeJobRepo) ListActive(context.Context) ([]job.Job, error) {
	r.listCalls++
	if r.err != nil {
		return nil, r.err
	}
	out := make([]job.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		if j.IsActive {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) List(_ context.Context, f repository.JobFilter) ([]job.Job, int, error) {
	r.listCalls++
	r.lastList = f
	if r.err != nil {
		return nil, 0, r.err
	}
	return r.jobs, len(r.jobs), nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	if r.err != nil {
		return job.Job{}, r.err
	}
	for _, j := range r.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, repository.ErrJobNotFound
}

func (r *fakeJobRepo) Create(_ context.Context, j job.Job) error {
	r.jobs = append(r.jobs, j)
	return nil
}

type fakeResourceRepo struct {
	mu        sync.Mutex
	resources []resource.LearningResource
	err       error

	tagCalls       [][]string
	tagLimits      []int
	candidateCalls []matching.ResourceQuery
	candidateLimit int
	lastList       repository.ResourceFilter
}

// FindBySkillTags mirrors the store query: a tag must contain a skill.
func (r *fakeResourceRepo) FindBySkillTags(_ context.Context, skills []string, limit int) ([]resource.LearningResource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tagCalls = append(r.tagCalls, skills)
	r.tagLimits = append(r.tagLimits, limit)
	if r.err != nil {
		return nil, r.err
	}
	out := make([]resource.LearningResource, 0)
	for _, res := range r.resources {
		if len(out) == limit {
			break
		}
		if anyTagCovers(res.RelatedSkills, skills) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeResourceRepo) FindCandidates(_ context.Context, q matching.ResourceQuery, limit int) ([]resource.LearningResource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.candidateCalls = append(r.candidateCalls, q)
	r.candidateLimit = limit
	if r.err != nil {
		return nil, r.err
	}
	out := make([]resource.LearningResource, 0)
	for _, res := range r.resources {
		if len(out) == limit {
			break
		}
		onTrack := q.Track != "" && res.Track == q.Track
		if onTrack || anyTagMatches(res.RelatedSkills, q.Skills) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeResourceRepo) List(_ context.Context, f repository.ResourceFilter) ([]resource.LearningResource, int, error) {
	r.mu.Lock()
	r.lastList = f
	r.mu.Unlock()
	if r.err != nil {
		return nil, 0, r.err
	}
	return append([]resource.LearningResource{}, r.resources...), len(r.resources), nil
}

func (r *fakeResourceRepo) GetByID(_ context.Context, id uuid.UUID) (resource.LearningResource, error) {
	if r.err != nil {
		return resource.LearningResource{}, r.err
	}
	for _, res := range r.resources {
		if res.ID == id {
			return res, nil
		}
	}
	return resource.LearningResource{}, repository.ErrResourceNotFound
}

func (r *fakeResourceRepo) Create(_ context.Context, res resource.LearningResource) error {
	r.resources = append(r.resources, res)
	return nil
}

func anyTagCovers(tags, skills []string) bool {
	for _, t := range tags {
		for _, s := range skills {
			if matching.TagCoversSkill(t, s) {
				return true
			}
		}
	}
	return false
}

func anyTagMatches(tags, skills []string) bool {
	for _, t := range tags {
		for _, s := range skills {
			if matching.SkillsMatch(t, s) {
				return true
			}
		}
	}
	return false
}

type memCache struct {
	mu     sync.Mutex
	values map[string][]byte
	sets   int
}

func newMemCache() *memCache {
	return &memCache{values: map[string][]byte{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = b
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}

func (c *memCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.values[key]; ok {
		return false, nil
	}
	c.values[key] = []byte(value)
	return true, nil
}

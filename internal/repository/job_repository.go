package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"career-compass/internal/database"
	"career-compass/internal/domain/career"
	"career-compass/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobFilter struct {
	Track           career.Track
	Location        string
	JobType         career.JobType
	ExperienceLevel career.ExperienceLevel
	SearchTerms     []string
	Limit           int
	Offset          int
}

type JobRepository interface {
	// ListActive returns every active job in insertion order.
	ListActive(ctx context.Context) ([]job.Job, error)
	List(ctx context.Context, f JobFilter) ([]job.Job, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	Create(ctx context.Context, j job.Job) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, company, location, description, required_skills,
	experience_level, job_type, track, salary, application_link, posted_at, is_active, created_at`

func (r *PostgresJobRepository) ListActive(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE is_active = true
		 ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *PostgresJobRepository) List(ctx context.Context, f JobFilter) ([]job.Job, int, error) {
	conditions := []string{"is_active = true"}
	var args []any
	argIndex := 1

	if f.Track != "" {
		conditions = append(conditions, fmt.Sprintf("track = $%d", argIndex))
		args = append(args, string(f.Track))
		argIndex++
	}
	if f.JobType != "" {
		conditions = append(conditions, fmt.Sprintf("job_type = $%d", argIndex))
		args = append(args, string(f.JobType))
		argIndex++
	}
	if f.ExperienceLevel != "" {
		conditions = append(conditions, fmt.Sprintf("experience_level = $%d", argIndex))
		args = append(args, string(f.ExperienceLevel))
		argIndex++
	}
	if loc := strings.TrimSpace(f.Location); loc != "" {
		conditions = append(conditions, fmt.Sprintf("strpos(lower(location), lower($%d)) > 0", argIndex))
		args = append(args, loc)
		argIndex++
	}
	if terms := lowerTerms(f.SearchTerms); len(terms) > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM unnest($%d::text[]) AS q WHERE "+
				"strpos(lower(title), q) > 0 OR strpos(lower(company), q) > 0 OR strpos(lower(description), q) > 0)",
			argIndex,
		))
		args = append(args, terms)
		argIndex++
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM jobs "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT %s
		 FROM jobs %s
		 ORDER BY posted_at DESC, id ASC
		 LIMIT $%d OFFSET $%d`,
		jobColumns, whereClause, argIndex, argIndex+1,
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	out, err := collectJobs(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	skills := j.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, title, company, location, description, required_skills,
			experience_level, job_type, track, salary, application_link, posted_at, is_active)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,COALESCE($12, now()),$13)
		 ON CONFLICT (id) DO NOTHING`,
		j.ID, j.Title, j.Company, j.Location, j.Description, skills,
		string(j.ExperienceLevel), string(j.JobType), string(j.Track),
		j.Salary, j.ApplicationLink, nullTime(j.PostedAt), j.IsActive,
	)
	return err
}

func scanJob(row database.Row) (job.Job, error) {
	var (
		j                     job.Job
		exp, jobType, trackID string
	)
	if err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.Description, &j.RequiredSkills,
		&exp, &jobType, &trackID, &j.Salary, &j.ApplicationLink, &j.PostedAt, &j.IsActive, &j.CreatedAt,
	); err != nil {
		return job.Job{}, err
	}
	j.ExperienceLevel = career.ExperienceLevel(exp)
	j.JobType = career.JobType(jobType)
	j.Track = career.Track(trackID)
	if j.RequiredSkills == nil {
		j.RequiredSkills = []string{}
	}
	return j, nil
}

func collectJobs(rows database.Rows) ([]job.Job, error) {
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"career-compass/internal/database"
	"career-compass/internal/domain/career"
	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/resource"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrResourceNotFound = errors.New("learning resource not found")
)

type ResourceFilter struct {
	Skill       string
	AnySkills   []string
	Platform    career.Platform
	Cost        career.Cost
	Difficulty  career.Difficulty
	Track       career.Track
	SearchTerms []string
	Limit       int
	Offset      int
}

type ResourceRepository interface {
	// FindBySkillTags returns resources with a tag containing any of skills,
	// case-insensitively, in insertion order.
	FindBySkillTags(ctx context.Context, skills []string, limit int) ([]resource.LearningResource, error)
	// FindCandidates returns resources on q.Track or with a tag that matches
	// one of q.Skills in either direction.
	FindCandidates(ctx context.Context, q matching.ResourceQuery, limit int) ([]resource.LearningResource, error)
	List(ctx context.Context, f ResourceFilter) ([]resource.LearningResource, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (resource.LearningResource, error)
	Create(ctx context.Context, r resource.LearningResource) error
}

type PostgresResourceRepository struct {
	db database.DB
}

func NewPostgresResourceRepository(db database.DB) *PostgresResourceRepository {
	return &PostgresResourceRepository{db: db}
}

const resourceColumns = `id, title, platform, url, description, related_skills,
	cost, duration, difficulty, track, rating, created_at`

// tagContainsAny matches when some trimmed, non-blank tag of related_skills
// contains one of the text[] parameter's entries.
const tagContainsAny = `EXISTS (
	SELECT 1 FROM unnest(related_skills) AS tag, unnest($%d::text[]) AS s
	WHERE btrim(tag) <> '' AND btrim(s) <> ''
	  AND strpos(lower(btrim(tag)), lower(btrim(s))) > 0
)`

const tagMatchesAny = `EXISTS (
	SELECT 1 FROM unnest(related_skills) AS tag, unnest($%d::text[]) AS s
	WHERE btrim(tag) <> '' AND btrim(s) <> ''
	  AND (strpos(lower(btrim(tag)), lower(btrim(s))) > 0 OR strpos(lower(btrim(s)), lower(btrim(tag))) > 0)
)`

func (r *PostgresResourceRepository) FindBySkillTags(ctx context.Context, skills []string, limit int) ([]resource.LearningResource, error) {
	if len(skills) == 0 {
		return []resource.LearningResource{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+resourceColumns+`
		 FROM learning_resources
		 WHERE `+fmt.Sprintf(tagContainsAny, 1)+`
		 ORDER BY created_at ASC, id ASC
		 LIMIT $2`,
		skills, limit,
	)
	if err != nil {
		return nil, err
	}
	return collectResources(rows)
}

func (r *PostgresResourceRepository) FindCandidates(ctx context.Context, q matching.ResourceQuery, limit int) ([]resource.LearningResource, error) {
	if q.Track == "" && len(q.Skills) == 0 {
		return []resource.LearningResource{}, nil
	}
	if limit <= 0 {
		limit = 20
	}
	skills := q.Skills
	if skills == nil {
		skills = []string{}
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+resourceColumns+`
		 FROM learning_resources
		 WHERE ($1 <> '' AND track = $1) OR `+fmt.Sprintf(tagMatchesAny, 2)+`
		 ORDER BY created_at ASC, id ASC
		 LIMIT $3`,
		string(q.Track), skills, limit,
	)
	if err != nil {
		return nil, err
	}
	return collectResources(rows)
}

func (r *PostgresResourceRepository) List(ctx context.Context, f ResourceFilter) ([]resource.LearningResource, int, error) {
	var conditions []string
	var args []any
	argIndex := 1

	if s := strings.TrimSpace(f.Skill); s != "" {
		conditions = append(conditions, fmt.Sprintf(tagContainsAny, argIndex))
		args = append(args, []string{s})
		argIndex++
	}
	if len(f.AnySkills) > 0 {
		conditions = append(conditions, fmt.Sprintf(tagContainsAny, argIndex))
		args = append(args, f.AnySkills)
		argIndex++
	}
	if f.Platform != "" {
		conditions = append(conditions, fmt.Sprintf("platform = $%d", argIndex))
		args = append(args, string(f.Platform))
		argIndex++
	}
	if f.Cost != "" {
		conditions = append(conditions, fmt.Sprintf("cost = $%d", argIndex))
		args = append(args, string(f.Cost))
		argIndex++
	}
	if f.Difficulty != "" {
		conditions = append(conditions, fmt.Sprintf("difficulty = $%d", argIndex))
		args = append(args, string(f.Difficulty))
		argIndex++
	}
	if f.Track != "" {
		conditions = append(conditions, fmt.Sprintf("track = $%d", argIndex))
		args = append(args, string(f.Track))
		argIndex++
	}
	if terms := lowerTerms(f.SearchTerms); len(terms) > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM unnest($%d::text[]) AS q WHERE "+
				"strpos(lower(title), q) > 0 OR strpos(lower(description), q) > 0 OR "+
				"EXISTS (SELECT 1 FROM unnest(related_skills) AS tag WHERE strpos(lower(tag), q) > 0))",
			argIndex,
		))
		args = append(args, terms)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM learning_resources "+whereClause, args...).Scan(&total); err != nil {
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
		 FROM learning_resources %s
		 ORDER BY rating DESC, id ASC
		 LIMIT $%d OFFSET $%d`,
		resourceColumns, whereClause, argIndex, argIndex+1,
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	out, err := collectResources(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresResourceRepository) GetByID(ctx context.Context, id uuid.UUID) (resource.LearningResource, error) {
	row := r.db.QueryRow(ctx, `SELECT `+resourceColumns+` FROM learning_resources WHERE id = $1`, id)
	res, err := scanResource(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resource.LearningResource{}, ErrResourceNotFound
		}
		return resource.LearningResource{}, err
	}
	return res, nil
}

func (r *PostgresResourceRepository) Create(ctx context.Context, res resource.LearningResource) error {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	skills := res.RelatedSkills
	if skills == nil {
		skills = []string{}
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO learning_resources (id, title, platform, url, description, related_skills,
			cost, duration, difficulty, track, rating)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		 ON CONFLICT (id) DO NOTHING`,
		res.ID, res.Title, string(res.Platform), res.URL, res.Description, skills,
		string(res.Cost), res.Duration, string(res.Difficulty), string(res.Track), res.Rating,
	)
	return err
}

func scanResource(row database.Row) (resource.LearningResource, error) {
	var (
		res                                 resource.LearningResource
		platform, cost, difficulty, trackID string
	)
	if err := row.Scan(
		&res.ID, &res.Title, &platform, &res.URL, &res.Description, &res.RelatedSkills,
		&cost, &res.Duration, &difficulty, &trackID, &res.Rating, &res.CreatedAt,
	); err != nil {
		return resource.LearningResource{}, err
	}
	res.Platform = career.Platform(platform)
	res.Cost = career.Cost(cost)
	res.Difficulty = career.Difficulty(difficulty)
	res.Track = career.Track(trackID)
	if res.RelatedSkills == nil {
		res.RelatedSkills = []string{}
	}
	return res, nil
}

func collectResources(rows database.Rows) ([]resource.LearningResource, error) {
	defer rows.Close()

	out := make([]resource.LearningResource, 0)
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

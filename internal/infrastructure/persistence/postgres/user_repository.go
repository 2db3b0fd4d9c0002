package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"career-compass/internal/database"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/domain/career"
	"career-compass/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, password_hash, full_name, education_level, department,
	experience_level, preferred_track, skills, target_roles, bio, projects, created_at, updated_at`

func (r *UserRepository) CreateUser(ctx context.Context, u user.User) error {
	projects, err := encodeProjects(u.Projects)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, full_name, education_level, department,
			experience_level, preferred_track, skills, target_roles, bio, projects)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12::jsonb)`,
		u.ID,
		strings.ToLower(strings.TrimSpace(u.Email)),
		u.PasswordHash,
		u.FullName,
		string(u.EducationLevel),
		u.Department,
		string(u.ExperienceLevel),
		string(u.PreferredTrack),
		nonNil(u.Skills),
		nonNil(u.TargetRoles),
		u.Bio,
		projects,
	)
	if dbpostgres.IsUniqueViolation(err) {
		return user.ErrEmailTaken
	}
	return err
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(strings.TrimSpace(email)))
	return scanUser(row)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, strings.ToLower(strings.TrimSpace(email)))
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, u user.User) error {
	projects, err := encodeProjects(u.Projects)
	if err != nil {
		return err
	}

	n, err := r.db.Exec(ctx,
		`UPDATE users SET
			full_name = $2,
			education_level = $3,
			department = $4,
			experience_level = $5,
			preferred_track = $6,
			skills = $7,
			target_roles = $8,
			bio = $9,
			projects = $10::jsonb,
			updated_at = now()
		 WHERE id = $1`,
		u.ID,
		u.FullName,
		string(u.EducationLevel),
		u.Department,
		string(u.ExperienceLevel),
		string(u.PreferredTrack),
		nonNil(u.Skills),
		nonNil(u.TargetRoles),
		u.Bio,
		projects,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var (
		u                         user.User
		education, exp, preferred string
		projects                  []byte
	)
	if err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &education, &u.Department,
		&exp, &preferred, &u.Skills, &u.TargetRoles, &u.Bio, &projects, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	decoded, err := decodeProjects(projects)
	if err != nil {
		return user.User{}, err
	}
	u.Projects = decoded
	u.EducationLevel = career.EducationLevel(education)
	u.ExperienceLevel = career.ExperienceLevel(exp)
	u.PreferredTrack = career.Track(preferred)
	u.Skills = nonNil(u.Skills)
	u.TargetRoles = nonNil(u.TargetRoles)
	return u, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func encodeProjects(projects []user.Project) (string, error) {
	if projects == nil {
		projects = []user.Project{}
	}
	b, err := json.Marshal(projects)
	if err != nil {
		return "", fmt.Errorf("encode projects: %w", err)
	}
	return string(b), nil
}

func decodeProjects(raw []byte) ([]user.Project, error) {
	out := []user.Project{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	if out == nil {
		out = []user.Project{}
	}
	for i := range out {
		out[i].Technologies = nonNil(out[i].Technologies)
	}
	return out, nil
}

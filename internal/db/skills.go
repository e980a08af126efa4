package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jaewoo/careerfolio/internal/profile"
)

const skillColumns = `id, user_id, category, name, level, created_at`

func scanSkill(row pgx.Row) (*profile.Skill, error) {
	var s profile.Skill
	err := row.Scan(&s.ID, &s.UserID, &s.Category, &s.Name, &s.Level, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSkills retrieves a user's skills in insertion order. Category grouping
// happens at render time and depends on this order being stable.
func (db *DB) ListSkills(ctx context.Context, userID uuid.UUID) ([]profile.Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+skillColumns+` FROM skills
		 WHERE user_id = $1 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := []profile.Skill{}
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, *s)
	}
	return skills, nil
}

// GetSkill retrieves one skill by ID, or nil if absent
func (db *DB) GetSkill(ctx context.Context, id uuid.UUID) (*profile.Skill, error) {
	s, err := scanSkill(db.pool.QueryRow(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return s, nil
}

// CreateSkill inserts a skill entry
func (db *DB) CreateSkill(ctx context.Context, s *profile.Skill) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO skills (user_id, category, name, level)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		s.UserID, s.Category, s.Name, s.Level,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return id, nil
}

// UpdateSkill replaces a skill record in full
func (db *DB) UpdateSkill(ctx context.Context, s *profile.Skill) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE skills SET category = $1, name = $2, level = $3 WHERE id = $4`,
		s.Category, s.Name, s.Level, s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("skill not found: %s", s.ID)
	}
	return nil
}

// DeleteSkill removes a skill entry
func (db *DB) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("skill not found: %s", id)
	}
	return nil
}

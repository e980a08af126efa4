package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jaewoo/careerfolio/internal/profile"
)

const educationColumns = `id, user_id, school, major, degree, start_date, end_date,
	gpa, logo, logo_fit, display_order, created_at, updated_at`

func scanEducation(row pgx.Row) (*profile.Education, error) {
	var e profile.Education
	var gpa, logo, logoFit *string
	err := row.Scan(&e.ID, &e.UserID, &e.School, &e.Major, &e.Degree,
		&e.StartDate, &e.EndDate, &gpa, &logo, &logoFit,
		&e.DisplayOrder, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.GPA = orEmpty(gpa)
	e.Logo = orEmpty(logo)
	e.LogoFit = orEmpty(logoFit)
	return &e, nil
}

// ListEducations retrieves a user's education entries ordered by display_order
func (db *DB) ListEducations(ctx context.Context, userID uuid.UUID) ([]profile.Education, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+educationColumns+` FROM educations
		 WHERE user_id = $1 ORDER BY display_order, created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list educations: %w", err)
	}
	defer rows.Close()

	educations := []profile.Education{}
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		educations = append(educations, *e)
	}
	return educations, nil
}

// GetEducation retrieves one education entry by ID, or nil if absent
func (db *DB) GetEducation(ctx context.Context, id uuid.UUID) (*profile.Education, error) {
	e, err := scanEducation(db.pool.QueryRow(ctx,
		`SELECT `+educationColumns+` FROM educations WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get education: %w", err)
	}
	return e, nil
}

// CreateEducation inserts an education entry at the end of the user's list
func (db *DB) CreateEducation(ctx context.Context, e *profile.Education) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO educations (user_id, school, major, degree, start_date, end_date,
		                         gpa, logo, logo_fit, display_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
		         (SELECT COALESCE(MAX(display_order) + 1, 0) FROM educations WHERE user_id = $1))
		 RETURNING id`,
		e.UserID, e.School, e.Major, e.Degree, e.StartDate, e.EndDate,
		nullIfEmpty(e.GPA), nullIfEmpty(e.Logo), nullIfEmpty(e.LogoFit),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create education: %w", err)
	}
	return id, nil
}

// UpdateEducation replaces an education record in full, preserving display_order
func (db *DB) UpdateEducation(ctx context.Context, e *profile.Education) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE educations SET school = $1, major = $2, degree = $3, start_date = $4,
		        end_date = $5, gpa = $6, logo = $7, logo_fit = $8, updated_at = NOW()
		 WHERE id = $9`,
		e.School, e.Major, e.Degree, e.StartDate, e.EndDate,
		nullIfEmpty(e.GPA), nullIfEmpty(e.Logo), nullIfEmpty(e.LogoFit), e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update education: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("education not found: %s", e.ID)
	}
	return nil
}

// DeleteEducation removes an education entry and closes the display_order gap
func (db *DB) DeleteEducation(ctx context.Context, id uuid.UUID) error {
	return db.inTx(ctx, func(tx pgx.Tx) error {
		var userID uuid.UUID
		err := tx.QueryRow(ctx, `DELETE FROM educations WHERE id = $1 RETURNING user_id`, id).Scan(&userID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return fmt.Errorf("education not found: %s", id)
			}
			return fmt.Errorf("failed to delete education: %w", err)
		}
		return compactOrders(ctx, tx, tableEducations, userID)
	})
}

// MoveEducation repositions an education entry within the user's list
func (db *DB) MoveEducation(ctx context.Context, userID, id uuid.UUID, newIndex int) error {
	return db.moveItem(ctx, tableEducations, userID, id, newIndex)
}

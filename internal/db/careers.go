package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jaewoo/careerfolio/internal/profile"
)

const careerColumns = `id, user_id, company, position, start_date, end_date, current,
	description, achievements, logo, logo_fit, display_order, created_at, updated_at`

func scanCareer(row pgx.Row) (*profile.Career, error) {
	var c profile.Career
	var description, logo, logoFit *string
	err := row.Scan(&c.ID, &c.UserID, &c.Company, &c.Position, &c.StartDate, &c.EndDate,
		&c.Current, &description, &c.Achievements, &logo, &logoFit,
		&c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Description = orEmpty(description)
	c.Logo = orEmpty(logo)
	c.LogoFit = orEmpty(logoFit)
	return &c, nil
}

// ListCareers retrieves a user's careers ordered by display_order
func (db *DB) ListCareers(ctx context.Context, userID uuid.UUID) ([]profile.Career, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+careerColumns+` FROM careers
		 WHERE user_id = $1 ORDER BY display_order, created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list careers: %w", err)
	}
	defer rows.Close()

	careers := []profile.Career{}
	for rows.Next() {
		c, err := scanCareer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan career: %w", err)
		}
		careers = append(careers, *c)
	}
	return careers, nil
}

// GetCareer retrieves one career by ID, or nil if absent
func (db *DB) GetCareer(ctx context.Context, id uuid.UUID) (*profile.Career, error) {
	c, err := scanCareer(db.pool.QueryRow(ctx,
		`SELECT `+careerColumns+` FROM careers WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get career: %w", err)
	}
	return c, nil
}

// CreateCareer inserts a career at the end of the user's list
func (db *DB) CreateCareer(ctx context.Context, c *profile.Career) (uuid.UUID, error) {
	achievements := c.Achievements
	if achievements == nil {
		achievements = []string{}
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO careers (user_id, company, position, start_date, end_date, current,
		                      description, achievements, logo, logo_fit, display_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		         (SELECT COALESCE(MAX(display_order) + 1, 0) FROM careers WHERE user_id = $1))
		 RETURNING id`,
		c.UserID, c.Company, c.Position, c.StartDate, c.EndDate, c.Current,
		nullIfEmpty(c.Description), achievements, nullIfEmpty(c.Logo), nullIfEmpty(c.LogoFit),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create career: %w", err)
	}
	return id, nil
}

// UpdateCareer replaces a career record in full, preserving display_order
func (db *DB) UpdateCareer(ctx context.Context, c *profile.Career) error {
	achievements := c.Achievements
	if achievements == nil {
		achievements = []string{}
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE careers SET company = $1, position = $2, start_date = $3, end_date = $4,
		        current = $5, description = $6, achievements = $7, logo = $8,
		        logo_fit = $9, updated_at = NOW()
		 WHERE id = $10`,
		c.Company, c.Position, c.StartDate, c.EndDate, c.Current,
		nullIfEmpty(c.Description), achievements, nullIfEmpty(c.Logo),
		nullIfEmpty(c.LogoFit), c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update career: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("career not found: %s", c.ID)
	}
	return nil
}

// DeleteCareer removes a career and closes the display_order gap
func (db *DB) DeleteCareer(ctx context.Context, id uuid.UUID) error {
	return db.inTx(ctx, func(tx pgx.Tx) error {
		var userID uuid.UUID
		err := tx.QueryRow(ctx, `DELETE FROM careers WHERE id = $1 RETURNING user_id`, id).Scan(&userID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return fmt.Errorf("career not found: %s", id)
			}
			return fmt.Errorf("failed to delete career: %w", err)
		}
		return compactOrders(ctx, tx, tableCareers, userID)
	})
}

// MoveCareer repositions a career within the user's list
func (db *DB) MoveCareer(ctx context.Context, userID, id uuid.UUID, newIndex int) error {
	return db.moveItem(ctx, tableCareers, userID, id, newIndex)
}

package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jaewoo/careerfolio/internal/profile"
)

const projectColumns = `id, user_id, name, description, start_date, end_date, role,
	tech_stack, achievements, url, logo, logo_fit, display_order, created_at, updated_at`

func scanProject(row pgx.Row) (*profile.Project, error) {
	var p profile.Project
	var url, logo, logoFit *string
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.StartDate, &p.EndDate,
		&p.Role, &p.TechStack, &p.Achievements, &url, &logo, &logoFit,
		&p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.URL = orEmpty(url)
	p.Logo = orEmpty(logo)
	p.LogoFit = orEmpty(logoFit)
	return &p, nil
}

// ListProjects retrieves a user's projects ordered by display_order
func (db *DB) ListProjects(ctx context.Context, userID uuid.UUID) ([]profile.Project, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects
		 WHERE user_id = $1 ORDER BY display_order, created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []profile.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, nil
}

// GetProject retrieves one project by ID, or nil if absent
func (db *DB) GetProject(ctx context.Context, id uuid.UUID) (*profile.Project, error) {
	p, err := scanProject(db.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// CreateProject inserts a project at the end of the user's list
func (db *DB) CreateProject(ctx context.Context, p *profile.Project) (uuid.UUID, error) {
	techStack := p.TechStack
	if techStack == nil {
		techStack = []string{}
	}
	achievements := p.Achievements
	if achievements == nil {
		achievements = []string{}
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO projects (user_id, name, description, start_date, end_date, role,
		                       tech_stack, achievements, url, logo, logo_fit, display_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
		         (SELECT COALESCE(MAX(display_order) + 1, 0) FROM projects WHERE user_id = $1))
		 RETURNING id`,
		p.UserID, p.Name, p.Description, p.StartDate, p.EndDate, p.Role,
		techStack, achievements, nullIfEmpty(p.URL), nullIfEmpty(p.Logo), nullIfEmpty(p.LogoFit),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create project: %w", err)
	}
	return id, nil
}

// UpdateProject replaces a project record in full, preserving display_order
func (db *DB) UpdateProject(ctx context.Context, p *profile.Project) error {
	techStack := p.TechStack
	if techStack == nil {
		techStack = []string{}
	}
	achievements := p.Achievements
	if achievements == nil {
		achievements = []string{}
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE projects SET name = $1, description = $2, start_date = $3, end_date = $4,
		        role = $5, tech_stack = $6, achievements = $7, url = $8, logo = $9,
		        logo_fit = $10, updated_at = NOW()
		 WHERE id = $11`,
		p.Name, p.Description, p.StartDate, p.EndDate, p.Role,
		techStack, achievements, nullIfEmpty(p.URL), nullIfEmpty(p.Logo),
		nullIfEmpty(p.LogoFit), p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("project not found: %s", p.ID)
	}
	return nil
}

// DeleteProject removes a project and closes the display_order gap
func (db *DB) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return db.inTx(ctx, func(tx pgx.Tx) error {
		var userID uuid.UUID
		err := tx.QueryRow(ctx, `DELETE FROM projects WHERE id = $1 RETURNING user_id`, id).Scan(&userID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return fmt.Errorf("project not found: %s", id)
			}
			return fmt.Errorf("failed to delete project: %w", err)
		}
		return compactOrders(ctx, tx, tableProjects, userID)
	})
}

// MoveProject repositions a project within the user's list
func (db *DB) MoveProject(ctx context.Context, userID, id uuid.UUID, newIndex int) error {
	return db.moveItem(ctx, tableProjects, userID, id, newIndex)
}

package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jaewoo/careerfolio/internal/profile"
)

const otherItemColumns = `id, user_id, category, title, organization, item_date,
	description, display_order, created_at, updated_at`

func scanOtherItem(row pgx.Row) (*profile.OtherItem, error) {
	var o profile.OtherItem
	var organization, description *string
	err := row.Scan(&o.ID, &o.UserID, &o.Category, &o.Title, &organization, &o.Date,
		&description, &o.DisplayOrder, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.Organization = orEmpty(organization)
	o.Description = orEmpty(description)
	return &o, nil
}

// ListOtherItems retrieves a user's misc achievements ordered by display_order
func (db *DB) ListOtherItems(ctx context.Context, userID uuid.UUID) ([]profile.OtherItem, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+otherItemColumns+` FROM other_items
		 WHERE user_id = $1 ORDER BY display_order, created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list other items: %w", err)
	}
	defer rows.Close()

	items := []profile.OtherItem{}
	for rows.Next() {
		o, err := scanOtherItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan other item: %w", err)
		}
		items = append(items, *o)
	}
	return items, nil
}

// GetOtherItem retrieves one item by ID, or nil if absent
func (db *DB) GetOtherItem(ctx context.Context, id uuid.UUID) (*profile.OtherItem, error) {
	o, err := scanOtherItem(db.pool.QueryRow(ctx,
		`SELECT `+otherItemColumns+` FROM other_items WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get other item: %w", err)
	}
	return o, nil
}

// CreateOtherItem inserts an item at the end of the user's list
func (db *DB) CreateOtherItem(ctx context.Context, o *profile.OtherItem) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO other_items (user_id, category, title, organization, item_date,
		                          description, display_order)
		 VALUES ($1, $2, $3, $4, $5, $6,
		         (SELECT COALESCE(MAX(display_order) + 1, 0) FROM other_items WHERE user_id = $1))
		 RETURNING id`,
		o.UserID, o.Category, o.Title, nullIfEmpty(o.Organization), o.Date,
		nullIfEmpty(o.Description),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create other item: %w", err)
	}
	return id, nil
}

// UpdateOtherItem replaces an item record in full, preserving display_order
func (db *DB) UpdateOtherItem(ctx context.Context, o *profile.OtherItem) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE other_items SET category = $1, title = $2, organization = $3,
		        item_date = $4, description = $5, updated_at = NOW()
		 WHERE id = $6`,
		o.Category, o.Title, nullIfEmpty(o.Organization), o.Date,
		nullIfEmpty(o.Description), o.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update other item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("other item not found: %s", o.ID)
	}
	return nil
}

// DeleteOtherItem removes an item and closes the display_order gap
func (db *DB) DeleteOtherItem(ctx context.Context, id uuid.UUID) error {
	return db.inTx(ctx, func(tx pgx.Tx) error {
		var userID uuid.UUID
		err := tx.QueryRow(ctx, `DELETE FROM other_items WHERE id = $1 RETURNING user_id`, id).Scan(&userID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return fmt.Errorf("other item not found: %s", id)
			}
			return fmt.Errorf("failed to delete other item: %w", err)
		}
		return compactOrders(ctx, tx, tableOtherItems, userID)
	})
}

// MoveOtherItem repositions an item within the user's list
func (db *DB) MoveOtherItem(ctx context.Context, userID, id uuid.UUID, newIndex int) error {
	return db.moveItem(ctx, tableOtherItems, userID, id, newIndex)
}

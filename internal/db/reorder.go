package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Tables carrying a display_order column. Only these names are ever
// interpolated into reorder SQL.
const (
	tableCareers    = "careers"
	tableEducations = "educations"
	tableProjects   = "projects"
	tableOtherItems = "other_items"
)

// moveItem repositions one row within its user's sibling set and rewrites
// display_order for the whole set as contiguous integers starting at zero.
// Rewriting everything on each move keeps order values from drifting into
// fractional or colliding keys over time. newIndex is clamped to the valid
// range.
func (db *DB) moveItem(ctx context.Context, table string, userID, itemID uuid.UUID, newIndex int) error {
	return db.inTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			fmt.Sprintf(`SELECT id FROM %s WHERE user_id = $1 ORDER BY display_order, created_at`, table),
			userID,
		)
		if err != nil {
			return fmt.Errorf("failed to list %s for reorder: %w", table, err)
		}
		ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
		if err != nil {
			return fmt.Errorf("failed to scan %s ids: %w", table, err)
		}

		from := -1
		for i, id := range ids {
			if id == itemID {
				from = i
				break
			}
		}
		if from == -1 {
			return fmt.Errorf("%s row not found: %s", table, itemID)
		}

		if newIndex < 0 {
			newIndex = 0
		}
		if newIndex > len(ids)-1 {
			newIndex = len(ids) - 1
		}

		ids = append(ids[:from], ids[from+1:]...)
		ids = append(ids[:newIndex], append([]uuid.UUID{itemID}, ids[newIndex:]...)...)

		for i, id := range ids {
			if _, err := tx.Exec(ctx,
				fmt.Sprintf(`UPDATE %s SET display_order = $1, updated_at = NOW() WHERE id = $2`, table),
				i, id,
			); err != nil {
				return fmt.Errorf("failed to rewrite %s order: %w", table, err)
			}
		}
		return nil
	})
}

// compactOrders rewrites display_order contiguously after a delete so gaps
// never accumulate.
func compactOrders(ctx context.Context, tx pgx.Tx, table string, userID uuid.UUID) error {
	rows, err := tx.Query(ctx,
		fmt.Sprintf(`SELECT id FROM %s WHERE user_id = $1 ORDER BY display_order, created_at`, table),
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to list %s for compaction: %w", table, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return fmt.Errorf("failed to scan %s ids: %w", table, err)
	}

	for i, id := range ids {
		if _, err := tx.Exec(ctx,
			fmt.Sprintf(`UPDATE %s SET display_order = $1 WHERE id = $2`, table),
			i, id,
		); err != nil {
			return fmt.Errorf("failed to compact %s order: %w", table, err)
		}
	}
	return nil
}

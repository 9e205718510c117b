package wishlist

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/photocards/internal/common"
	"github.com/dmitrijs2005/photocards/internal/dbx"
	"github.com/dmitrijs2005/photocards/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context, userID int64) ([]models.WishlistItem, error) {
	query :=
		`SELECT l.id, l.listing_name, l.photo, l.price, l.description, l.condition
		 FROM wishlist w
		 JOIN listings l ON l.id = w.product_id
		 WHERE w.user_id = ?
		 ORDER BY w.added_at, l.id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.WishlistItem, 0)
	for rows.Next() {
		var it models.WishlistItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Photo, &it.Price, &it.Description, &it.Condition); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Add(ctx context.Context, userID, productID int64) (bool, error) {
	query :=
		`INSERT INTO wishlist (user_id, product_id)
		 VALUES (?, ?)
		 ON CONFLICT (user_id, product_id) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query, userID, productID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, userID, productID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM wishlist WHERE user_id = ? AND product_id = ?`, userID, productID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

package cart

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

func (r *SQLiteRepository) List(ctx context.Context, userID int64) ([]models.CartItem, error) {
	query :=
		`SELECT l.id, l.listing_name, l.photo, l.price, c.quantity
		 FROM cart c
		 JOIN listings l ON l.id = c.product_id
		 WHERE c.user_id = ?
		 ORDER BY c.added_at, l.id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.CartItem, 0)
	for rows.Next() {
		var it models.CartItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Photo, &it.Price, &it.Quantity); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Add relies on UNIQUE(user_id, product_id): a second insert of the same
// pair affects no rows.
func (r *SQLiteRepository) Add(ctx context.Context, userID, productID int64, quantity int) (bool, error) {
	query :=
		`INSERT INTO cart (user_id, product_id, quantity)
		 VALUES (?, ?, ?)
		 ON CONFLICT (user_id, product_id) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query, userID, productID, quantity)
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM cart WHERE user_id = ? AND product_id = ?`, userID, productID)
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

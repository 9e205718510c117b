package comments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/photocards/internal/common"
	"github.com/dmitrijs2005/photocards/internal/dbx"
	"github.com/dmitrijs2005/photocards/internal/server/models"
)

// Dates are stored as fixed-width RFC 3339 text in UTC so that text order
// is time order.
const dateLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const selectComment =
	`SELECT c.comment_id, c.product_id, c.user_id, u.username, c.comment_text, c.comment_date
	 FROM comments c
	 JOIN users u ON u.id = c.user_id`

func scanComment(row interface{ Scan(...any) error }) (*models.Comment, error) {
	var (
		c    models.Comment
		date string
	)
	if err := row.Scan(&c.ID, &c.ProductID, &c.UserID, &c.Username, &c.Text, &date); err != nil {
		return nil, err
	}
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("comment %d date: %w", c.ID, err)
	}
	c.CreatedAt = t
	return &c, nil
}

// Create inserts c and fills in its id and author username.
func (r *SQLiteRepository) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	c.CreatedAt = c.CreatedAt.UTC()

	query :=
		`INSERT INTO comments (product_id, user_id, comment_text, comment_date)
		 VALUES (?, ?, ?, ?)
		 RETURNING comment_id`

	err := r.db.QueryRowContext(ctx, query, c.ProductID, c.UserID, c.Text, c.CreatedAt.Format(dateLayout)).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return r.GetByID(ctx, c.ID)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	c, err := scanComment(r.db.QueryRowContext(ctx, selectComment+` WHERE c.comment_id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

// ListByProduct returns the comments of a listing, oldest first.
func (r *SQLiteRepository) ListByProduct(ctx context.Context, productID int64) ([]models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, selectComment+` WHERE c.product_id = ? ORDER BY c.comment_date, c.comment_id`, productID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = ?`, id)
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

package listings

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/photocards/internal/dbx"
	"github.com/dmitrijs2005/photocards/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, l *models.Listing) (*models.Listing, error) {
	query :=
		`INSERT INTO listings (listing_name, description, condition, price, user_id, photo)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		l.Name, l.Description, l.Condition, l.Price, l.UserID, l.Photo).Scan(&l.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return l, nil
}

// List returns every listing, oldest first.
func (r *SQLiteRepository) List(ctx context.Context) ([]models.Listing, error) {
	query :=
		`SELECT id, listing_name, description, condition, price, user_id, photo
		 FROM listings
		 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Listing, 0)
	for rows.Next() {
		var l models.Listing
		if err := rows.Scan(&l.ID, &l.Name, &l.Description, &l.Condition, &l.Price, &l.UserID, &l.Photo); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM listings WHERE id = ?)`, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}

package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/photocards/internal/common"
	"github.com/dmitrijs2005/photocards/internal/dbx"
	"github.com/dmitrijs2005/photocards/internal/server/models"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/repomanager"
)

type CommentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewCommentService(db *sql.DB, m repomanager.RepositoryManager) *CommentService {
	return &CommentService{db: db, repomanager: m, now: time.Now}
}

func (s *CommentService) List(ctx context.Context, productID int64) ([]models.Comment, error) {
	return s.repomanager.Comments(s.db).ListByProduct(ctx, productID)
}

// Create posts text under the listing on behalf of userID.
func (s *CommentService) Create(ctx context.Context, userID, productID int64, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalid("comment_text is required")
	}
	if userID <= 0 || productID <= 0 {
		return nil, invalid("user_id and product_id are required")
	}

	var created *models.Comment
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Users(tx).GetByID(ctx, userID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return notFound("user", userID)
			}
			return err
		}
		ok, err := s.repomanager.Listings(tx).Exists(ctx, productID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("listing", productID)
		}

		created, err = s.repomanager.Comments(tx).Create(ctx, &models.Comment{
			ProductID: productID,
			UserID:    userID,
			Text:      text,
			CreatedAt: s.now(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Delete removes the comment if userID wrote it.
func (s *CommentService) Delete(ctx context.Context, userID, commentID int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Comments(tx)
		c, err := repo.GetByID(ctx, commentID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return notFound("comment", commentID)
			}
			return err
		}
		if c.UserID != userID {
			return common.ErrorForbidden
		}
		return repo.Delete(ctx, commentID)
	})
}

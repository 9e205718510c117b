package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/photocards/internal/common"
	"github.com/dmitrijs2005/photocards/internal/cryptox"
	"github.com/dmitrijs2005/photocards/internal/dbx"
	"github.com/dmitrijs2005/photocards/internal/server/models"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/repomanager"
)

// Registration is the body of POST /users/register.
type Registration struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
	Age      int    `json:"age"`
	Address  string `json:"address"`
}

// UserService handles registration, login and profile edits.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Register creates an account. Username and email must both be unused.
func (s *UserService) Register(ctx context.Context, reg Registration) (*models.User, error) {
	reg.Username = strings.TrimSpace(reg.Username)
	reg.Email = strings.TrimSpace(reg.Email)

	switch {
	case reg.Username == "":
		return nil, invalid("username is required")
	case reg.Email == "":
		return nil, invalid("email is required")
	case !strings.Contains(reg.Email, "@"):
		return nil, invalid("email must be an email address")
	case reg.Password == "":
		return nil, invalid("password is required")
	case reg.Age < 0:
		return nil, invalid("age must not be negative")
	}

	hash, err := cryptox.HashPassword([]byte(reg.Password))
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: hash,
		Name:         reg.Name,
		Surname:      reg.Surname,
		Bio:          reg.Bio,
		Age:          reg.Age,
		Address:      reg.Address,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		taken, err := repo.Taken(ctx, user.Username, user.Email)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("username or email %w", common.ErrorAlreadyExists)
		}
		user, err = repo.Create(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the password of the account registered under email. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, invalid("email and password are required")
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, err
	}

	if err := cryptox.CheckPassword(user.PasswordHash, []byte(password)); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("check password: %w", err)
	}
	return user, nil
}

// UpdateProfile replaces bio, address and profile picture and returns the
// stored user.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, upd models.ProfileUpdate) (*models.User, error) {
	var user *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		if err := repo.UpdateProfile(ctx, userID, upd); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return notFound("user", userID)
			}
			return err
		}
		var err error
		user, err = repo.GetByID(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

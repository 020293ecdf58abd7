package account

import (
	"context"
	"errors"

	"github.com/voicedoc/clinic-api/internal/models"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	// CreateUser returns a email_taken business error when the address is
	// already registered.
	CreateUser(ctx context.Context, user *models.User) error
}

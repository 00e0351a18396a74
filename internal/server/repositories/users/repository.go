package users

import (
	"context"

	"github.com/mediavault/mediavault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail matches case-insensitively; stored emails are lowercase.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

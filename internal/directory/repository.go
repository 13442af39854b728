package directory

import (
	"context"

	"github.com/dmitrijs2005/farmkeeper/internal/models"
)

type Repository interface {
	Create(ctx context.Context, acc *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	Update(ctx context.Context, acc *models.Account) error
	List(ctx context.Context) ([]*models.Account, error)
}

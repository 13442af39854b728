package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/farmkeeper/internal/common"
	"github.com/dmitrijs2005/farmkeeper/internal/models"
)

// Seed inserts acc unless an account with the same email already exists.
func Seed(ctx context.Context, repo Repository, acc *models.Account) error {
	_, err := repo.GetByEmail(ctx, acc.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("error looking up seed account: %w", err)
	}
	if err := repo.Create(ctx, acc); err != nil {
		return fmt.Errorf("error creating seed account: %w", err)
	}
	return nil
}

package directory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/farmkeeper/internal/common"
	"github.com/dmitrijs2005/farmkeeper/internal/models"
)

// MemoryRepository keeps accounts in a map keyed by email.
type MemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*models.Account
	emailOf map[string]string // id -> email
	order   []string          // ids in insertion order
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byEmail: make(map[string]*models.Account),
		emailOf: make(map[string]string),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, acc *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[acc.Email]; ok {
		return common.ErrEmailAlreadyRegistered
	}
	if _, ok := r.emailOf[acc.ID]; ok {
		return fmt.Errorf("account id %q already exists", acc.ID)
	}

	r.byEmail[acc.Email] = acc.Clone()
	r.emailOf[acc.ID] = acc.Email
	r.order = append(r.order, acc.ID)
	return nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return acc.Clone(), nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email, ok := r.emailOf[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r.byEmail[email].Clone(), nil
}

// Update replaces the stored account with the same ID. If the email changed,
// the record is re-keyed; the new email must be free.
func (r *MemoryRepository) Update(ctx context.Context, acc *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	oldEmail, ok := r.emailOf[acc.ID]
	if !ok {
		return common.ErrorNotFound
	}
	if acc.Email != oldEmail {
		if _, taken := r.byEmail[acc.Email]; taken {
			return common.ErrEmailAlreadyRegistered
		}
		delete(r.byEmail, oldEmail)
		r.emailOf[acc.ID] = acc.Email
	}
	r.byEmail[acc.Email] = acc.Clone()
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Account, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byEmail[r.emailOf[id]].Clone())
	}
	return out, nil
}

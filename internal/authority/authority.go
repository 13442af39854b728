// Package authority implements the client-side authentication component of
// the dashboard: it owns the account directory, the single current session
// and the outstanding password reset ticket.
//
// All operations are serialised by one mutex, so each one is atomic with
// respect to directory, session and ticket state. Every account handed to a
// caller is a models.PublicAccount.
package authority

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/farmkeeper/internal/authz"
	"github.com/dmitrijs2005/farmkeeper/internal/common"
	"github.com/dmitrijs2005/farmkeeper/internal/directory"
	"github.com/dmitrijs2005/farmkeeper/internal/logging"
	"github.com/dmitrijs2005/farmkeeper/internal/models"
)

// resetTicket is the single outstanding reset ticket and the account it
// was issued for.
type resetTicket struct {
	value     string
	accountID string
	email     string
}

type Authority struct {
	mu      sync.Mutex
	loading atomic.Bool

	dir         directory.Repository
	log         logging.Logger
	permissions *authz.Table
	ticketSize  int
	newID       func() string

	session *models.PublicAccount
	ticket  *resetTicket
}

type Option func(*Authority)

// WithTicketSize sets the number of random bytes behind a reset ticket.
func WithTicketSize(n int) Option {
	return func(a *Authority) {
		if n > 0 {
			a.ticketSize = n
		}
	}
}

// WithIDGenerator replaces the account id generator (uuid by default).
func WithIDGenerator(fn func() string) Option {
	return func(a *Authority) { a.newID = fn }
}

// WithPermissions replaces the role precedence table.
func WithPermissions(t *authz.Table) Option {
	return func(a *Authority) { a.permissions = t }
}

func New(dir directory.Repository, log logging.Logger, opts ...Option) *Authority {
	a := &Authority{
		dir:         dir,
		log:         log.With("component", "authority"),
		permissions: authz.Default(),
		ticketSize:  common.DefaultResetTicketSize,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Login opens a session for the account whose email and password both match
// exactly. On failure the current session is left as it was.
func (a *Authority) Login(ctx context.Context, email, password string) (*models.PublicAccount, error) {
	defer a.track()()

	a.mu.Lock()
	defer a.mu.Unlock()

	acc, err := a.dir.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.log.Warn(ctx, "login failed", "email", email, "reason", "unknown email")
			return nil, common.ErrInvalidCredentials
		}
		return nil, a.internal(ctx, "login", err)
	}

	if !checkSecret(acc.Password, password) {
		a.log.Warn(ctx, "login failed", "email", email, "reason", "wrong password")
		return nil, common.ErrInvalidCredentials
	}

	a.session = acc.Public()
	a.log.Info(ctx, "login succeeded", "account_id", acc.ID, "role", acc.Role)
	return a.session.Clone(), nil
}

// Register creates a farmer account and opens a session for it. Profile
// fields start empty unless reg.Profile supplies them.
func (a *Authority) Register(ctx context.Context, reg models.Registration) (*models.PublicAccount, error) {
	defer a.track()()

	a.mu.Lock()
	defer a.mu.Unlock()

	_, err := a.dir.GetByEmail(ctx, reg.Email)
	if err == nil {
		a.log.Warn(ctx, "registration rejected", "email", reg.Email, "reason", "email taken")
		return nil, common.ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, a.internal(ctx, "register", err)
	}

	acc := &models.Account{
		ID:       a.newID(),
		Email:    reg.Email,
		Password: reg.Password,
		Name:     reg.Name,
		Role:     models.RoleFarmer,
		Profile:  reg.Profile.ApplyTo(models.Profile{}),
	}

	if err := a.dir.Create(ctx, acc); err != nil {
		if errors.Is(err, common.ErrEmailAlreadyRegistered) {
			return nil, common.ErrEmailAlreadyRegistered
		}
		return nil, a.internal(ctx, "register", err)
	}

	a.session = acc.Public()
	a.log.Info(ctx, "account registered", "account_id", acc.ID, "email", acc.Email)
	return a.session.Clone(), nil
}

// RequestPasswordReset issues a fresh ticket for the account with the given
// email and returns it. Any earlier ticket stops being valid.
func (a *Authority) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	acc, err := a.dir.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrEmailNotFound
		}
		return "", a.internal(ctx, "request password reset", err)
	}

	value, err := common.MakeRandHexString(a.ticketSize)
	if err != nil {
		return "", a.internal(ctx, "request password reset", err)
	}

	if a.ticket != nil {
		a.log.Debug(ctx, "previous reset ticket superseded", "account_id", a.ticket.accountID)
	}
	a.ticket = &resetTicket{value: value, accountID: acc.ID, email: acc.Email}
	a.log.Info(ctx, "password reset requested", "account_id", acc.ID)
	return value, nil
}

// ResetPassword sets newPassword on the account the outstanding ticket was
// issued for and consumes the ticket. It does not open a session.
func (a *Authority) ResetPassword(ctx context.Context, ticket, newPassword string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ticket == nil || !checkSecret(a.ticket.value, ticket) {
		a.log.Warn(ctx, "password reset rejected", "reason", "ticket mismatch")
		return common.ErrInvalidOrExpiredTicket
	}

	acc, err := a.dir.GetByID(ctx, a.ticket.accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// the account vanished; the ticket is useless either way
			a.ticket = nil
			return common.ErrInvalidOrExpiredTicket
		}
		return a.internal(ctx, "reset password", err)
	}

	acc.Password = newPassword
	if err := a.dir.Update(ctx, acc); err != nil {
		return a.internal(ctx, "reset password", err)
	}

	a.log.Info(ctx, "password reset completed", "account_id", acc.ID, "email", a.ticket.email)
	a.ticket = nil
	return nil
}

// UpdateProfile merges patch into the session account, stores the result and
// refreshes the session with it.
func (a *Authority) UpdateProfile(ctx context.Context, patch models.AccountPatch) (*models.PublicAccount, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		return nil, common.ErrNoActiveSession
	}

	acc, err := a.dir.GetByID(ctx, a.session.ID)
	if err != nil {
		return nil, a.internal(ctx, "update profile", err)
	}

	merged := patch.ApplyTo(acc)
	if err := a.dir.Update(ctx, merged); err != nil {
		return nil, a.internal(ctx, "update profile", err)
	}

	a.session = merged.Public()
	a.log.Info(ctx, "profile updated", "account_id", merged.ID)
	return a.session.Clone(), nil
}

// Logout ends the session and drops any outstanding reset ticket. Calling it
// while logged out does nothing.
func (a *Authority) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session != nil {
		a.log.Info(context.Background(), "logged out", "account_id", a.session.ID)
	}
	a.session = nil
	a.ticket = nil
}

// CheckPermission reports whether a session is open and its role satisfies
// required. It never fails.
func (a *Authority) CheckPermission(required models.Role) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		return false
	}
	return a.permissions.Satisfies(a.session.Role, required)
}

// CurrentAccount returns a copy of the session account, if any.
func (a *Authority) CurrentAccount() (*models.PublicAccount, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		return nil, false
	}
	return a.session.Clone(), true
}

func (a *Authority) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session != nil
}

// IsLoading reports whether a login or registration is in flight. It is
// advisory UI state and does not block.
func (a *Authority) IsLoading() bool {
	return a.loading.Load()
}

// track raises the loading flag and returns the function that lowers it.
func (a *Authority) track() func() {
	a.loading.Store(true)
	return func() { a.loading.Store(false) }
}

func (a *Authority) internal(ctx context.Context, op string, err error) error {
	a.log.Error(ctx, "directory failure", "op", op, "error", err)
	return fmt.Errorf("%w: %s: %w", common.ErrorInternal, op, err)
}

func checkSecret(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

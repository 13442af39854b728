package authority

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/farmkeeper/internal/authz"
	"github.com/dmitrijs2005/farmkeeper/internal/common"
	"github.com/dmitrijs2005/farmkeeper/internal/config"
	"github.com/dmitrijs2005/farmkeeper/internal/directory"
	"github.com/dmitrijs2005/farmkeeper/internal/logging"
	"github.com/dmitrijs2005/farmkeeper/internal/models"
)

// ---- helpers ----

func seededDirectories(t *testing.T) map[string]directory.Repository {
	t.Helper()
	ctx := context.Background()

	cfg := &config.Config{}
	cfg.LoadDefaults()

	db, err := directory.OpenSQL(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	dirs := map[string]directory.Repository{
		"memory": directory.NewMemoryRepository(),
		"sqlite": directory.NewSQLRepository(db),
	}
	for _, d := range dirs {
		require.NoError(t, directory.Seed(ctx, d, cfg.SeedAdmin()))
	}
	return dirs
}

// forEachDirectory runs fn against a fresh Authority over every directory backend.
func forEachDirectory(t *testing.T, fn func(t *testing.T, a *Authority, dir directory.Repository)) {
	t.Helper()
	for name, dir := range seededDirectories(t) {
		t.Run(name, func(t *testing.T) {
			n := 0
			a := New(dir, logging.Discard(), WithIDGenerator(func() string {
				n++
				return fmt.Sprintf("id-%d", n)
			}))
			fn(t, a, dir)
		})
	}
}

func register(t *testing.T, a *Authority, name, email, password string) *models.PublicAccount {
	t.Helper()
	acc, err := a.Register(context.Background(), models.Registration{Name: name, Email: email, Password: password})
	require.NoError(t, err)
	return acc
}

// ---- login ----

func TestLogin_SeedAdmin(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		acc, err := a.Login(context.Background(), "demo@farm.com", "password")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, acc.Role)
		assert.Equal(t, "Demo User", acc.Name)
		assert.Equal(t, config.SeedAdminID, acc.ID)
		assert.True(t, a.IsAuthenticated())
	})
}

func TestLogin_WrongPasswordKeepsSession(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		ctx := context.Background()

		_, err := a.Login(ctx, "demo@farm.com", "wrong")
		require.ErrorIs(t, err, common.ErrInvalidCredentials)
		assert.False(t, a.IsAuthenticated())

		_, err = a.Login(ctx, "demo@farm.com", "password")
		require.NoError(t, err)

		_, err = a.Login(ctx, "demo@farm.com", "wrong")
		require.ErrorIs(t, err, common.ErrInvalidCredentials)

		cur, ok := a.CurrentAccount()
		require.True(t, ok, "failed login must not drop the open session")
		assert.Equal(t, "demo@farm.com", cur.Email)
	})
}

func TestLogin_ExactMatchOnly(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		ctx := context.Background()
		cases := []struct{ email, password string }{
			{"DEMO@farm.com", "password"},
			{"demo@farm.com ", "password"},
			{"demo@farm.com", "Password"},
			{"demo@farm.com", "password "},
			{"demo@farm.com", ""},
			{"nobody@farm.com", "password"},
		}
		for _, c := range cases {
			_, err := a.Login(ctx, c.email, c.password)
			require.ErrorIs(t, err, common.ErrInvalidCredentials, "%q/%q", c.email, c.password)
		}
		assert.False(t, a.IsAuthenticated())
	})
}

// ---- register ----

func TestRegister_CreatesFarmerSession(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, dir directory.Repository) {
		acc := register(t, a, "Ann", "ann@x.com", "p1")

		assert.Equal(t, models.RoleFarmer, acc.Role)
		assert.Equal(t, "id-1", acc.ID)
		assert.Equal(t, "Ann", acc.Name)
		assert.Equal(t, models.Profile{PreferredCrops: []string{}, Certifications: []string{}}, acc.Profile)

		assert.True(t, a.CheckPermission(models.RoleFarmer))
		assert.False(t, a.CheckPermission(models.RoleAdmin))

		stored, err := dir.GetByEmail(context.Background(), "ann@x.com")
		require.NoError(t, err)
		assert.Equal(t, "p1", stored.Password)
	})
}

func TestRegister_DuplicateEmail(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		ctx := context.Background()
		register(t, a, "Ann", "ann@x.com", "p1")
		a.Logout()

		_, err := a.Register(ctx, models.Registration{Name: "Other", Email: "ann@x.com", Password: "p2"})
		require.ErrorIs(t, err, common.ErrEmailAlreadyRegistered)
		assert.False(t, a.IsAuthenticated(), "failed registration must not open a session")

		_, err = a.Register(ctx, models.Registration{Name: "Seed", Email: "demo@farm.com", Password: "x"})
		require.ErrorIs(t, err, common.ErrEmailAlreadyRegistered)

		// no normalisation: a different case is a different email
		_, err = a.Register(ctx, models.Registration{Name: "Ann2", Email: "Ann@x.com", Password: "p3"})
		require.NoError(t, err)
	})
}

func TestRegister_ProfileSeed(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		acc, err := a.Register(context.Background(), models.Registration{
			Name:     "Bob",
			Email:    "bob@x.com",
			Password: "pw",
			Profile: &models.ProfilePatch{
				Phone:   models.Ptr("555-1234"),
				Address: models.Ptr("1 Barn Road"),
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "555-1234", acc.Profile.Phone)
		assert.Equal(t, "1 Barn Road", acc.Profile.Address)
		assert.Equal(t, "", acc.Profile.FarmSize)
		assert.Empty(t, acc.Profile.PreferredCrops)
		assert.Equal(t, models.RoleFarmer, acc.Role)
	})
}

func TestRegister_ThenLogin(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		register(t, a, "Ann", "ann@x.com", "p1")
		a.Logout()

		acc, err := a.Login(context.Background(), "ann@x.com", "p1")
		require.NoError(t, err)
		assert.Equal(t, "Ann", acc.Name)
	})
}

// ---- password reset ----

func TestPasswordReset_FullFlow(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		ctx := context.Background()

		ticket, err := a.RequestPasswordReset(ctx, "demo@farm.com")
		require.NoError(t, err)
		assert.Len(t, ticket, 2*common.DefaultResetTicketSize)

		require.NoError(t, a.ResetPassword(ctx, ticket, "newpw"))
		assert.False(t, a.IsAuthenticated(), "reset must not open a session")

		_, err = a.Login(ctx, "demo@farm.com", "password")
		require.ErrorIs(t, err, common.ErrInvalidCredentials)

		_, err = a.Login(ctx, "demo@farm.com", "newpw")
		require.NoError(t, err)
	})
}

func TestPasswordReset_UnknownEmail(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		_, err := a.RequestPasswordReset(context.Background(), "ghost@farm.com")
		require.ErrorIs(t, err, common.ErrEmailNotFound)
	})
}

func TestPasswordReset_TicketIsSingleUse(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		ctx := context.Background()
		ticket, err := a.RequestPasswordReset(ctx, "demo@farm.com")
		require.NoError(t, err)

		require.NoError(t, a.ResetPassword(ctx, ticket, "first"))
		require.ErrorIs(t, a.ResetPassword(ctx, ticket, "second"), common.ErrInvalidOrExpiredTicket)

		_, err = a.Login(ctx, "demo@farm.com", "first")
		require.NoError(t, err)
	})
}

func TestPasswordReset_NewRequestSupersedesOld(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		ctx := context.Background()
		register(t, a, "Ann", "ann@x.com", "p1")
		a.Logout()

		first, err := a.RequestPasswordReset(ctx, "demo@farm.com")
		require.NoError(t, err)
		second, err := a.RequestPasswordReset(ctx, "ann@x.com")
		require.NoError(t, err)
		require.NotEqual(t, first, second)

		require.ErrorIs(t, a.ResetPassword(ctx, first, "x"), common.ErrInvalidOrExpiredTicket)
		require.NoError(t, a.ResetPassword(ctx, second, "ann-new"))

		_, err = a.Login(ctx, "ann@x.com", "ann-new")
		require.NoError(t, err)
		a.Logout()
		_, err = a.Login(ctx, "demo@farm.com", "password")
		require.NoError(t, err, "the superseded ticket's account must be untouched")
	})
}

func TestPasswordReset_SameEmailTwice(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		ctx := context.Background()
		first, err := a.RequestPasswordReset(ctx, "demo@farm.com")
		require.NoError(t, err)
		second, err := a.RequestPasswordReset(ctx, "demo@farm.com")
		require.NoError(t, err)

		require.ErrorIs(t, a.ResetPassword(ctx, first, "x"), common.ErrInvalidOrExpiredTicket)
		require.NoError(t, a.ResetPassword(ctx, second, "y"))
	})
}

func TestPasswordReset_BoundToRequestedAccountNotSession(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		ctx := context.Background()
		register(t, a, "Ann", "ann@x.com", "p1")

		// Ann is logged in, but the ticket is for the admin
		ticket, err := a.RequestPasswordReset(ctx, "demo@farm.com")
		require.NoError(t, err)
		require.NoError(t, a.ResetPassword(ctx, ticket, "admin-new"))

		a.Logout()
		_, err = a.Login(ctx, "ann@x.com", "p1")
		require.NoError(t, err, "session account's password must not change")
		a.Logout()
		_, err = a.Login(ctx, "demo@farm.com", "admin-new")
		require.NoError(t, err)
	})
}

func TestPasswordReset_WrongOrMissingTicket(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		ctx := context.Background()

		require.ErrorIs(t, a.ResetPassword(ctx, "", "x"), common.ErrInvalidOrExpiredTicket)
		require.ErrorIs(t, a.ResetPassword(ctx, "deadbeef", "x"), common.ErrInvalidOrExpiredTicket)

		ticket, err := a.RequestPasswordReset(ctx, "demo@farm.com")
		require.NoError(t, err)
		require.ErrorIs(t, a.ResetPassword(ctx, ticket[:len(ticket)-1], "x"), common.ErrInvalidOrExpiredTicket)
		require.ErrorIs(t, a.ResetPassword(ctx, "", "x"), common.ErrInvalidOrExpiredTicket)

		// a failed attempt does not burn the outstanding ticket
		require.NoError(t, a.ResetPassword(ctx, ticket, "ok"))
	})
}

func TestLogout_ClearsTicket(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		ctx := context.Background()
		ticket, err := a.RequestPasswordReset(ctx, "demo@farm.com")
		require.NoError(t, err)

		a.Logout()
		require.ErrorIs(t, a.ResetPassword(ctx, ticket, "x"), common.ErrInvalidOrExpiredTicket)
	})
}

func TestTicketSizeOption(t *testing.T) {
	dir := directory.NewMemoryRepository()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	require.NoError(t, directory.Seed(context.Background(), dir, cfg.SeedAdmin()))

	a := New(dir, logging.Discard(), WithTicketSize(4))
	ticket, err := a.RequestPasswordReset(context.Background(), "demo@farm.com")
	require.NoError(t, err)
	assert.Len(t, ticket, 8)
}

// ---- profile ----

func TestUpdateProfile_NoSession(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		ctx := context.Background()
		patches := []models.AccountPatch{
			{},
			{Name: models.Ptr("x")},
			{Profile: &models.ProfilePatch{FarmSize: models.Ptr("1 acre")}},
		}
		for _, p := range patches {
			_, err := a.UpdateProfile(ctx, p)
			require.ErrorIs(t, err, common.ErrNoActiveSession)
		}
	})
}

func TestUpdateProfile_AdminFarmSize(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, dir directory.Repository) {
		ctx := context.Background()
		before, err := a.Login(ctx, "demo@farm.com", "password")
		require.NoError(t, err)

		after, err := a.UpdateProfile(ctx, models.AccountPatch{
			Profile: &models.ProfilePatch{FarmSize: models.Ptr("200 acres")},
		})
		require.NoError(t, err)

		assert.Equal(t, "200 acres", after.Profile.FarmSize)
		assert.Equal(t, before.Name, after.Name)
		assert.Equal(t, before.Profile.Phone, after.Profile.Phone)
		assert.Equal(t, before.Profile.Address, after.Profile.Address)
		assert.Equal(t, before.Profile.PreferredCrops, after.Profile.PreferredCrops)
		assert.Equal(t, before.Profile.Certifications, after.Profile.Certifications)

		cur, ok := a.CurrentAccount()
		require.True(t, ok)
		assert.Equal(t, after, cur, "session must hold the updated account")

		stored, err := dir.GetByID(ctx, before.ID)
		require.NoError(t, err)
		assert.Equal(t, "200 acres", stored.Profile.FarmSize)
		assert.Equal(t, "password", stored.Password, "profile update must keep the password")
	})
}

func TestUpdateProfile_NameAndSequences(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		ctx := context.Background()
		_, err := a.Login(ctx, "demo@farm.com", "password")
		require.NoError(t, err)

		acc, err := a.UpdateProfile(ctx, models.AccountPatch{
			Name: models.Ptr("Farm Boss"),
			Profile: &models.ProfilePatch{
				PreferredCrops: []string{"Barley"},
				Certifications: []string{},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "Farm Boss", acc.Name)
		assert.Equal(t, []string{"Barley"}, acc.Profile.PreferredCrops)
		assert.Empty(t, acc.Profile.Certifications)
		assert.Equal(t, models.RoleAdmin, acc.Role)
		assert.Equal(t, "500 acres", acc.Profile.FarmSize)
	})
}

func TestUpdateProfile_FarmerCannotEscalate(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		register(t, a, "Ann", "ann@x.com", "p1")

		acc, err := a.UpdateProfile(context.Background(), models.AccountPatch{Name: models.Ptr("Ann B")})
		require.NoError(t, err)
		assert.Equal(t, models.RoleFarmer, acc.Role)
		assert.False(t, a.CheckPermission(models.RoleAdmin))
	})
}

// ---- logout / permissions / state ----

func TestLogout_Idempotent(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		a.Logout()
		a.Logout()
		assert.False(t, a.IsAuthenticated())

		_, err := a.Login(context.Background(), "demo@farm.com", "password")
		require.NoError(t, err)
		a.Logout()
		a.Logout()

		_, ok := a.CurrentAccount()
		assert.False(t, ok)
	})
}

func TestCheckPermission(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		ctx := context.Background()

		assert.False(t, a.CheckPermission(models.RoleAdmin))
		assert.False(t, a.CheckPermission(models.RoleFarmer))

		_, err := a.Login(ctx, "demo@farm.com", "password")
		require.NoError(t, err)
		assert.True(t, a.CheckPermission(models.RoleAdmin))
		assert.True(t, a.CheckPermission(models.RoleFarmer))
		assert.True(t, a.CheckPermission(models.Role("anything")), "admin satisfies every check")

		a.Logout()
		assert.False(t, a.CheckPermission(models.RoleFarmer))
	})
}

func TestCurrentAccount_ReturnsCopy(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		_, err := a.Login(context.Background(), "demo@farm.com", "password")
		require.NoError(t, err)

		cur, _ := a.CurrentAccount()
		cur.Role = models.RoleFarmer
		cur.Profile.PreferredCrops[0] = "Rice"

		again, _ := a.CurrentAccount()
		assert.Equal(t, models.RoleAdmin, again.Role)
		assert.Equal(t, "Wheat", again.Profile.PreferredCrops[0])
	})
}

func TestIsLoading_IdleOutsideOperations(t *testing.T) {
	forEachDirectory(t, func(t *testing.T, a *Authority, _ directory.Repository) {
		assert.False(t, a.IsLoading())
		_, _ = a.Login(context.Background(), "demo@farm.com", "wrong")
		assert.False(t, a.IsLoading())
		register(t, a, "Ann", "ann@x.com", "p1")
		assert.False(t, a.IsLoading())
	})
}

// loadingSpy records the authority's loading flag on every email lookup.
type loadingSpy struct {
	directory.Repository
	auth *Authority
	seen []bool
}

func (s *loadingSpy) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	s.seen = append(s.seen, s.auth.IsLoading())
	return s.Repository.GetByEmail(ctx, email)
}

func TestIsLoading_RaisedDuringLoginAndRegister(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	mem := directory.NewMemoryRepository()
	require.NoError(t, directory.Seed(ctx, mem, cfg.SeedAdmin()))

	spy := &loadingSpy{Repository: mem}
	a := New(spy, logging.Discard())
	spy.auth = a

	_, err := a.Login(ctx, "demo@farm.com", "password")
	require.NoError(t, err)
	assert.False(t, a.IsLoading())

	_, err = a.Login(ctx, "demo@farm.com", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, a.IsLoading())

	_, err = a.Register(ctx, models.Registration{Name: "Ann", Email: "ann@x.com", Password: "p1"})
	require.NoError(t, err)
	assert.False(t, a.IsLoading())

	_, err = a.RequestPasswordReset(ctx, "ann@x.com")
	require.NoError(t, err)

	assert.Equal(t, []bool{true, true, true, false}, spy.seen)
}

// ---- directory faults ----

// flakyDirectory wraps a real directory and fails the configured calls.
type flakyDirectory struct {
	directory.Repository
	failGetByEmail bool
	failGetByID    bool
	failCreate     bool
	failUpdate     bool
}

var errDisk = errors.New("disk on fire")

func (f *flakyDirectory) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	if f.failGetByEmail {
		return nil, errDisk
	}
	return f.Repository.GetByEmail(ctx, email)
}

func (f *flakyDirectory) GetByID(ctx context.Context, id string) (*models.Account, error) {
	if f.failGetByID {
		return nil, errDisk
	}
	return f.Repository.GetByID(ctx, id)
}

func (f *flakyDirectory) Create(ctx context.Context, acc *models.Account) error {
	if f.failCreate {
		return errDisk
	}
	return f.Repository.Create(ctx, acc)
}

func (f *flakyDirectory) Update(ctx context.Context, acc *models.Account) error {
	if f.failUpdate {
		return errDisk
	}
	return f.Repository.Update(ctx, acc)
}

func newFlaky(t *testing.T) (*Authority, *flakyDirectory) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()

	mem := directory.NewMemoryRepository()
	require.NoError(t, directory.Seed(context.Background(), mem, cfg.SeedAdmin()))

	f := &flakyDirectory{Repository: mem}
	return New(f, logging.Discard()), f
}

func TestDirectoryFaults_AreInternal(t *testing.T) {
	ctx := context.Background()

	t.Run("login", func(t *testing.T) {
		a, f := newFlaky(t)
		f.failGetByEmail = true
		_, err := a.Login(ctx, "demo@farm.com", "password")
		require.ErrorIs(t, err, common.ErrorInternal)
		require.ErrorIs(t, err, errDisk)
		assert.NotErrorIs(t, err, common.ErrInvalidCredentials)
		assert.False(t, a.IsAuthenticated())
	})

	t.Run("register lookup", func(t *testing.T) {
		a, f := newFlaky(t)
		f.failGetByEmail = true
		_, err := a.Register(ctx, models.Registration{Name: "A", Email: "a@x.com", Password: "p"})
		require.ErrorIs(t, err, common.ErrorInternal)
		assert.False(t, a.IsAuthenticated())
	})

	t.Run("register insert", func(t *testing.T) {
		a, f := newFlaky(t)
		f.failCreate = true
		_, err := a.Register(ctx, models.Registration{Name: "A", Email: "a@x.com", Password: "p"})
		require.ErrorIs(t, err, common.ErrorInternal)
		assert.False(t, a.IsAuthenticated())
		assert.False(t, a.IsLoading())
	})

	t.Run("request reset", func(t *testing.T) {
		a, f := newFlaky(t)
		f.failGetByEmail = true
		_, err := a.RequestPasswordReset(ctx, "demo@farm.com")
		require.ErrorIs(t, err, common.ErrorInternal)
	})

	t.Run("reset keeps ticket on update failure", func(t *testing.T) {
		a, f := newFlaky(t)
		ticket, err := a.RequestPasswordReset(ctx, "demo@farm.com")
		require.NoError(t, err)

		f.failUpdate = true
		require.ErrorIs(t, a.ResetPassword(ctx, ticket, "x"), common.ErrorInternal)

		f.failUpdate = false
		require.NoError(t, a.ResetPassword(ctx, ticket, "x"))
	})

	t.Run("update profile keeps session", func(t *testing.T) {
		a, f := newFlaky(t)
		before, err := a.Login(ctx, "demo@farm.com", "password")
		require.NoError(t, err)

		f.failUpdate = true
		_, err = a.UpdateProfile(ctx, models.AccountPatch{Name: models.Ptr("X")})
		require.ErrorIs(t, err, common.ErrorInternal)

		cur, ok := a.CurrentAccount()
		require.True(t, ok)
		assert.Equal(t, before, cur)
	})
}

func TestResetPassword_AccountVanished(t *testing.T) {
	ctx := context.Background()
	a, f := newFlaky(t)
	ticket, err := a.RequestPasswordReset(ctx, "demo@farm.com")
	require.NoError(t, err)

	// swap in an empty directory so the ticket's account is gone
	f.Repository = directory.NewMemoryRepository()
	require.ErrorIs(t, a.ResetPassword(ctx, ticket, "x"), common.ErrInvalidOrExpiredTicket)
	require.ErrorIs(t, a.ResetPassword(ctx, ticket, "x"), common.ErrInvalidOrExpiredTicket)
}

func TestWithPermissions(t *testing.T) {
	ctx := context.Background()
	a, _ := newFlaky(t)
	a = New(a.dir, logging.Discard(), WithPermissions(authz.NewTable(nil, map[models.Role][]models.Role{
		models.RoleAdmin: {models.RoleAdmin},
	})))

	_, err := a.Login(ctx, "demo@farm.com", "password")
	require.NoError(t, err)
	assert.True(t, a.CheckPermission(models.RoleAdmin))
	assert.False(t, a.CheckPermission(models.RoleFarmer))
}

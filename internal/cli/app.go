package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/farmkeeper/internal/logging"
	"github.com/dmitrijs2005/farmkeeper/internal/models"
	"github.com/dmitrijs2005/farmkeeper/internal/router"
)

// AuthService is the authority surface the client drives.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.PublicAccount, error)
	Register(ctx context.Context, reg models.Registration) (*models.PublicAccount, error)
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, ticket, newPassword string) error
	UpdateProfile(ctx context.Context, patch models.AccountPatch) (*models.PublicAccount, error)
	Logout()
	CheckPermission(required models.Role) bool
	CurrentAccount() (*models.PublicAccount, bool)
	IsAuthenticated() bool
}

type App struct {
	auth   AuthService
	router *router.Router
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(auth AuthService, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		auth:   auth,
		router: router.New(auth),
		log:    log.With("component", "cli"),
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run prints the banner and serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) {
	a.println("Sustainable Agriculture Monitor (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	a.log.Debug(ctx, "session ended")
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) getStatus() string {
	acc, ok := a.auth.CurrentAccount()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s %s)", acc.Email, acc.Role)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

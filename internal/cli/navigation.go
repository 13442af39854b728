package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/farmkeeper/internal/models"
	"github.com/dmitrijs2005/farmkeeper/internal/router"
)

// Tabs lists the navigation bar entries the session may open.
func (a *App) Tabs(ctx context.Context) error {
	for _, r := range a.router.Navigation() {
		a.printf("  %-10s %s\n", r.Screen, r.Title)
	}
	return nil
}

// Open shows the screen the router resolves tab to.
func (a *App) Open(ctx context.Context, tab string) error {
	screen := a.router.Resolve(tab)
	switch screen {
	case router.ScreenAuth:
		a.println("Please log in first")
	case router.ScreenAccessDenied:
		a.println("Access Denied")
	case router.ScreenProfile:
		return a.Profile(ctx)
	default:
		route, _ := router.Lookup(string(screen))
		a.printf("== %s ==\n", route.Title)
	}
	return nil
}

// Can reports whether the session passes a check for role.
func (a *App) Can(ctx context.Context, role string) error {
	r, err := models.ParseRole(role)
	if err != nil {
		return err
	}
	a.println(fmt.Sprintf("%s: %t", r, a.auth.CheckPermission(r)))
	return nil
}

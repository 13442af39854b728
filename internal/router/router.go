// Package router maps dashboard tabs to screens, gating each one through the
// session's role.
package router

import "github.com/dmitrijs2005/farmkeeper/internal/models"

type Screen string

const (
	ScreenDashboard    Screen = "dashboard"
	ScreenFarmers      Screen = "farmers"
	ScreenCrops        Screen = "crops"
	ScreenReports      Screen = "reports"
	ScreenProfile      Screen = "profile"
	ScreenAuth         Screen = "auth"
	ScreenAccessDenied Screen = "access-denied"
)

// Route describes one tab of the dashboard.
type Route struct {
	Screen   Screen
	Title    string
	Required models.Role
	// InNav is false for tabs reached from the user menu rather than the
	// navigation bar.
	InNav bool
}

var routes = []Route{
	{Screen: ScreenDashboard, Title: "Dashboard", Required: models.RoleFarmer, InNav: true},
	{Screen: ScreenFarmers, Title: "Farmers", Required: models.RoleAdmin, InNav: true},
	{Screen: ScreenCrops, Title: "Crops", Required: models.RoleFarmer, InNav: true},
	{Screen: ScreenReports, Title: "Reports", Required: models.RoleFarmer, InNav: true},
	{Screen: ScreenProfile, Title: "Profile", Required: models.RoleFarmer},
}

// Gate is the part of the authority the router consults.
type Gate interface {
	IsAuthenticated() bool
	CheckPermission(required models.Role) bool
}

type Router struct {
	gate Gate
}

func New(gate Gate) *Router {
	return &Router{gate: gate}
}

// Resolve returns the screen to show for tab. Without a session it is always
// the auth screen; unknown tabs fall back to the dashboard.
func (r *Router) Resolve(tab string) Screen {
	if !r.gate.IsAuthenticated() {
		return ScreenAuth
	}

	route, ok := Lookup(tab)
	if !ok {
		route, _ = Lookup(string(ScreenDashboard))
	}
	if !r.gate.CheckPermission(route.Required) {
		return ScreenAccessDenied
	}
	return route.Screen
}

// Navigation lists the navigation bar tabs the current session may open.
func (r *Router) Navigation() []Route {
	if !r.gate.IsAuthenticated() {
		return nil
	}
	var out []Route
	for _, route := range routes {
		if route.InNav && r.gate.CheckPermission(route.Required) {
			out = append(out, route)
		}
	}
	return out
}

// Lookup finds the route for tab.
func Lookup(tab string) (Route, bool) {
	for _, route := range routes {
		if string(route.Screen) == tab {
			return route, true
		}
	}
	return Route{}, false
}

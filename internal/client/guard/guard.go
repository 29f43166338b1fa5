// Package guard authorizes navigation between views. Evaluate is a pure
// function of the session snapshot and the destination's requirements; it is
// re-evaluated on every navigation and never cached.
package guard

import (
	"slices"

	"github.com/foundlab/lostfound/internal/client/models"
)

type Action int

const (
	// Allow lets the navigation proceed.
	Allow Action = iota
	// ToLogin redirects an anonymous visitor to the login view, remembering
	// the originally requested destination.
	ToLogin
	// ToDashboard redirects silently: either an authenticated user hitting a
	// public auth view, or an authenticated-but-unauthorized role. No error
	// is surfaced in either case.
	ToDashboard
)

// Route describes a destination's access requirements. A nil Roles slice
// means any authenticated user may enter.
type Route struct {
	Name   string
	Public bool
	Roles  []models.Role
}

// Decision is the outcome of one navigation attempt.
type Decision struct {
	Action   Action
	Remember string
}

// Evaluate decides whether the session may navigate to route.
func Evaluate(sess models.Session, route Route) Decision {
	if route.Public {
		// An already-authenticated user visiting login/signup lands on the
		// dashboard instead.
		if sess.Authenticated() {
			return Decision{Action: ToDashboard}
		}
		return Decision{Action: Allow}
	}

	if !sess.Authenticated() {
		return Decision{Action: ToLogin, Remember: route.Name}
	}

	if len(route.Roles) == 0 || slices.Contains(route.Roles, sess.User.Role) {
		return Decision{Action: Allow}
	}

	return Decision{Action: ToDashboard}
}

// View names used by the route table and the CLI dispatcher.
const (
	ViewLogin          = "login"
	ViewSignup         = "signup"
	ViewDashboard      = "dashboard"
	ViewItems          = "items"
	ViewReport         = "report"
	ViewMyItems        = "my-items"
	ViewMyRequests     = "my-requests"
	ViewManageItems    = "manage-items"
	ViewManageRequests = "manage-requests"
	ViewManageUsers    = "manage-users"
)

var routes = map[string]Route{
	ViewLogin:          {Name: ViewLogin, Public: true},
	ViewSignup:         {Name: ViewSignup, Public: true},
	ViewDashboard:      {Name: ViewDashboard},
	ViewItems:          {Name: ViewItems},
	ViewReport:         {Name: ViewReport},
	ViewMyItems:        {Name: ViewMyItems},
	ViewMyRequests:     {Name: ViewMyRequests},
	ViewManageItems:    {Name: ViewManageItems, Roles: []models.Role{models.RoleAdmin, models.RoleStaff}},
	ViewManageRequests: {Name: ViewManageRequests, Roles: []models.Role{models.RoleAdmin, models.RoleStaff}},
	ViewManageUsers:    {Name: ViewManageUsers, Roles: []models.Role{models.RoleAdmin}},
}

// Lookup resolves a view name to its route. The empty name aliases the
// dashboard (the application's default landing view).
func Lookup(name string) (Route, bool) {
	if name == "" {
		name = ViewDashboard
	}
	r, ok := routes[name]
	return r, ok
}

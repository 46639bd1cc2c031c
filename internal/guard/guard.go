// Package guard implements the navigation gatekeeper: before entering a
// route it restores the persisted session once, then allows, redirects to
// login or bounces based on the route's requirements and the user's role.
package guard

import (
	"context"
	"net/url"

	"github.com/luizavanter/guialmeidapersonal/internal/stores"
)

type Route struct {
	Path         string
	RequiresAuth bool

	// RequiredRole further restricts an authenticated route; empty means
	// any signed-in user.
	RequiredRole string

	// Public marks routes like /login that an authenticated user should
	// be bounced away from.
	Public bool
}

type Decision struct {
	Allowed    bool
	RedirectTo string
}

type Guard struct {
	auth      *stores.AuthStore
	loginPath string
	homePath  string
}

func New(auth *stores.AuthStore) *Guard {
	return &Guard{auth: auth, loginPath: "/login", homePath: "/"}
}

// Check decides whether navigation to route may proceed. The persisted
// session is restored and revalidated lazily; a dead token degrades to the
// anonymous flow rather than surfacing an error to navigation.
func (g *Guard) Check(ctx context.Context, route Route) Decision {
	user, _ := g.auth.CheckAuth(ctx)

	if route.Public && user != nil {
		return Decision{RedirectTo: g.homePath}
	}

	if !route.RequiresAuth {
		return Decision{Allowed: true}
	}

	if user == nil {
		return Decision{RedirectTo: g.loginPath + "?redirect=" + url.QueryEscape(route.Path)}
	}

	if route.RequiredRole != "" && user.Role != route.RequiredRole {
		return Decision{RedirectTo: g.homePath}
	}

	return Decision{Allowed: true}
}

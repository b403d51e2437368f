package session

import (
	"slices"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// Default view paths.
const (
	LoginPath   = "/login"
	LandingPath = "/dashboard"
)

// Outcome is what the navigator should do with a requested view.
type Outcome int

const (
	Loading Outcome = iota
	RedirectLogin
	RedirectLanding
	Render
)

func (o Outcome) String() string {
	switch o {
	case Loading:
		return "loading"
	case RedirectLogin:
		return "redirect-login"
	case RedirectLanding:
		return "redirect-landing"
	case Render:
		return "render"
	default:
		return "unknown"
	}
}

// Decision is the result of Policy.Authorize. Path is the redirect target
// and From the originally requested path for login redirects.
type Decision struct {
	Outcome Outcome
	Path    string
	From    string
}

// Policy gates views by authentication and role.
type Policy struct {
	LoginPath   string
	LandingPath string
}

func DefaultPolicy() Policy {
	return Policy{LoginPath: LoginPath, LandingPath: LandingPath}
}

// Authorize decides what to do with requested given s and the roles the
// view accepts. An empty required set admits any authenticated user. A role
// mismatch sends the user to the landing view rather than an error.
func (p Policy) Authorize(s Session, required []domain.Role, requested string) Decision {
	switch {
	case !s.Initialized:
		return Decision{Outcome: Loading}
	case !s.IsAuthenticated:
		return Decision{Outcome: RedirectLogin, Path: p.LoginPath, From: requested}
	case len(required) > 0 && (s.User == nil || !slices.Contains(required, s.User.Role)):
		return Decision{Outcome: RedirectLanding, Path: p.LandingPath}
	default:
		return Decision{Outcome: Render, Path: requested}
	}
}

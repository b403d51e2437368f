package router

import (
	"context"

	"github.com/inc-inventory/inventory-system/internal/console/session"
)

// maxHops bounds redirect chains; the route table never needs more than three.
const maxHops = 8

// Resolution is where a navigation ended up.
type Resolution struct {
	// Path is the view to show. While loading it is the path being resolved.
	Path     string
	Decision session.Decision
	// From is the first protected path that sent the user to login.
	From string
	Hops int
}

// Loading reports whether the session was not yet initialised.
func (r Resolution) Loading() bool { return r.Decision.Outcome == session.Loading }

// Navigator resolves view paths against the current session.
type Navigator struct {
	store  *session.Store
	policy session.Policy
}

func NewNavigator(store *session.Store, policy session.Policy) *Navigator {
	return &Navigator{store: store, policy: policy}
}

// Resolve follows redirects from path until a view renders or the session
// is still loading.
func (n *Navigator) Resolve(path string) Resolution {
	s := n.store.Get()
	res := Resolution{}

	for ; res.Hops < maxHops; res.Hops++ {
		if path == PathRoot {
			if !s.Initialized {
				res.Path = path
				res.Decision = session.Decision{Outcome: session.Loading}
				return res
			}
			if s.IsAuthenticated {
				path = n.policy.LandingPath
			} else {
				path = n.policy.LoginPath
			}
			continue
		}

		route, ok := Lookup(path)
		if !ok {
			path = PathRoot
			continue
		}
		if route.Public {
			res.Path = path
			res.Decision = session.Decision{Outcome: session.Render, Path: path}
			return res
		}

		d := n.policy.Authorize(s, route.Roles, path)
		switch d.Outcome {
		case session.Loading:
			res.Path = path
			res.Decision = d
			return res
		case session.RedirectLogin:
			if res.From == "" {
				res.From = d.From
			}
			path = d.Path
		case session.RedirectLanding:
			path = d.Path
		default:
			res.Path = path
			res.Decision = d
			return res
		}
	}

	// Only a misconfigured policy can loop; fall back to login.
	res.Path = n.policy.LoginPath
	res.Decision = session.Decision{Outcome: session.Render, Path: n.policy.LoginPath}
	return res
}

// Await resolves path, re-evaluating on every session change while the
// session is loading.
func (n *Navigator) Await(ctx context.Context, path string) (Resolution, error) {
	changed := make(chan struct{}, 1)
	unsubscribe := n.store.Subscribe(func(session.Session) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	for {
		res := n.Resolve(path)
		if !res.Loading() {
			return res, nil
		}
		select {
		case <-changed:
		case <-ctx.Done():
			return res, ctx.Err()
		}
	}
}

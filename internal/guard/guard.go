// Package guard decides, from session state and the route being served,
// whether a screen may render or the visitor must be redirected. The
// decision table is pure so it can be tested without any HTTP machinery;
// redirects are transition actions applied by the middleware.
package guard

import "github.com/phishdirectory/dashboard/internal/session"

// State classifies the current session.
type State int

const (
	// StateUnknown means bootstrap has not begun yet.
	StateUnknown State = iota
	// StateLoading means the initial profile resolution is in flight.
	StateLoading
	// StateAnonymous means the session settled without a user.
	StateAnonymous
	// StateAuthenticated means a user profile is resolved.
	StateAuthenticated
)

// String implements fmt.Stringer for log output.
func (s State) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateLoading:
		return "loading"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "invalid"
	}
}

// RouteClass classifies the route being served.
type RouteClass int

const (
	// RoutePublic routes render regardless of session state.
	RoutePublic RouteClass = iota
	// RouteProtected routes require an authenticated session.
	RouteProtected
	// RouteAuthOnly routes (login, signup) are for anonymous visitors.
	RouteAuthOnly
)

// Decision is the guard's verdict for one request.
type Decision int

const (
	// Allow renders the screen.
	Allow Decision = iota
	// Wait renders a neutral loading page; protected content must not
	// flash before the session settles.
	Wait
	// RedirectToLogin sends the visitor to the login screen.
	RedirectToLogin
	// RedirectToHome sends the visitor to the protected home.
	RedirectToHome
)

// String implements fmt.Stringer for log output.
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Wait:
		return "wait"
	case RedirectToLogin:
		return "redirect_to_login"
	case RedirectToHome:
		return "redirect_to_home"
	default:
		return "invalid"
	}
}

// StateOf derives the guard state from a session snapshot.
func StateOf(snap session.Snapshot) State {
	switch {
	case !snap.Started:
		return StateUnknown
	case snap.Loading:
		return StateLoading
	case snap.User != nil:
		return StateAuthenticated
	default:
		return StateAnonymous
	}
}

// Evaluate is the transition table. An HTTP redirect is issued at most
// once per request, so an anonymous visitor bouncing to the login
// screen (an auth-only route, which anonymous sessions may render)
// cannot loop.
func Evaluate(state State, route RouteClass) Decision {
	if route == RoutePublic {
		return Allow
	}

	switch state {
	case StateUnknown, StateLoading:
		return Wait
	case StateAnonymous:
		if route == RouteProtected {
			return RedirectToLogin
		}
		return Allow
	case StateAuthenticated:
		if route == RouteAuthOnly {
			return RedirectToHome
		}
		return Allow
	default:
		// Fail closed: treat an invalid state like an anonymous one.
		if route == RouteProtected {
			return RedirectToLogin
		}
		return Allow
	}
}

package router

// Route is a screen address.
type Route string

const (
	None     Route = ""
	Root     Route = "/"
	Login    Route = "/login"
	Register Route = "/register"
	Chat     Route = "/chat"
)

// Authenticator reports whether a user is logged in.
type Authenticator interface {
	IsAuthenticated() bool
}

type Router struct {
	auth Authenticator
}

func New(auth Authenticator) *Router {
	return &Router{auth: auth}
}

// Resolve applies the route guards and returns the route that should actually
// be shown. It only looks at the local session, nothing is checked server-side.
func (r *Router) Resolve(route Route) Route {
	authenticated := r.auth.IsAuthenticated()

	switch route {
	case Root:
		if authenticated {
			return Chat
		}

		return Login
	case Login, Register:
		// authenticated users are sent away from the auth screens
		if authenticated {
			return Chat
		}

		return route
	case Chat:
		if !authenticated {
			return Login
		}

		return Chat
	default:
		return r.Resolve(Root)
	}
}

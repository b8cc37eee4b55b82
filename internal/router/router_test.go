package router

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type staticAuth bool

func (a staticAuth) IsAuthenticated() bool { return bool(a) }

func TestRouter_Resolve(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		route         Route
		want          Route
	}{
		{"root goes to login when logged out", false, Root, Login},
		{"root goes to chat when logged in", true, Root, Chat},
		{"login is shown when logged out", false, Login, Login},
		{"login redirects to chat when logged in", true, Login, Chat},
		{"register is shown when logged out", false, Register, Register},
		{"register redirects to chat when logged in", true, Register, Chat},
		{"chat redirects to login when logged out", false, Chat, Login},
		{"chat is shown when logged in", true, Chat, Chat},
		{"unknown route falls back to root when logged out", false, Route("/nope"), Login},
		{"unknown route falls back to root when logged in", true, Route("/nope"), Chat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(staticAuth(tt.authenticated))
			require.Equal(t, tt.want, r.Resolve(tt.route))
		})
	}
}

package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Mobo140/platform_common/pkg/logger"
	"github.com/Mobo140/vupp-cli/internal/clients"
	"github.com/Mobo140/vupp-cli/internal/model"
	"github.com/Mobo140/vupp-cli/internal/router"
	"go.uber.org/zap"
)

type Authenticator interface {
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, form model.Registration) error
}

type Session interface {
	Username() (string, error)
	Clear() error
	IsAuthenticated() bool
}

type Settings struct {
	PollInterval          time.Duration
	ViewportHeight        int
	ScrollThreshold       int
	RegisterRedirectDelay time.Duration
}

type screen func(ctx context.Context) (router.Route, error)

// App switches between the login, register and chat screens the way a browser
// router would, reading user input line by line from in.
type App struct {
	router   *router.Router
	session  Session
	auth     Authenticator
	chat     clients.ChatServiceClient
	settings Settings

	in  io.Reader
	out io.Writer

	readOnce sync.Once
	lines    chan string

	screens map[router.Route]screen
	history []router.Route

	prefill *prefill
}

// prefill carries credentials given on the command line to the first auth screen.
type prefill struct {
	username string
	password string
	confirm  string
}

func New(
	session Session,
	auth Authenticator,
	chat clients.ChatServiceClient,
	settings Settings,
	in io.Reader,
	out io.Writer,
) *App {
	a := &App{
		router:   router.New(session),
		session:  session,
		auth:     auth,
		chat:     chat,
		settings: settings,
		in:       in,
		out:      out,
	}

	a.screens = map[router.Route]screen{
		router.Login:    a.loginScreen,
		router.Register: a.registerScreen,
		router.Chat:     a.chatScreen,
	}

	return a
}

// WithCredentials makes the next login or register screen use the given
// values instead of prompting. confirm is only used by registration.
func (a *App) WithCredentials(username, password, confirm string) *App {
	a.prefill = &prefill{username: username, password: password, confirm: confirm}

	return a
}

// Run shows route and follows navigation until a screen ends the program.
func (a *App) Run(ctx context.Context, route router.Route) error {
	for route != router.None {
		resolved := a.router.Resolve(route)
		if resolved != route {
			logger.Info("redirect", zap.String("from", string(route)), zap.String("to", string(resolved)))
		}
		a.history = append(a.history, resolved)

		next, err := a.screens[resolved](ctx)
		if err != nil {
			return err
		}

		route = next
	}

	return nil
}

// History lists the screens shown so far, in order.
func (a *App) History() []router.Route {
	return append([]router.Route(nil), a.history...)
}

// Logout clears the local session and navigates to the root route.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	logger.Info("logged out")

	return a.Run(ctx, router.Root)
}

// readLines feeds every input line into a.lines. One reader serves all
// screens so a line is never lost to a screen that already went away.
func (a *App) readLines() <-chan string {
	a.readOnce.Do(func() {
		a.lines = make(chan string)

		go func() {
			defer close(a.lines)

			scanner := bufio.NewScanner(a.in)
			for scanner.Scan() {
				a.lines <- scanner.Text()
			}

			if err := scanner.Err(); err != nil {
				logger.Error("failed to read input", zap.Error(err))
			}
		}()
	})

	return a.lines
}

// prompt prints label and waits for one line. ok is false on EOF or ctx done.
func (a *App) prompt(ctx context.Context, label string) (string, bool) {
	fmt.Fprint(a.out, label)

	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-a.readLines():
		return line, ok
	}
}

func (a *App) takePrefill() *prefill {
	p := a.prefill
	a.prefill = nil

	return p
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

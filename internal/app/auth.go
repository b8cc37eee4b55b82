package app

import (
	"context"
	"fmt"

	apperrors "github.com/Mobo140/vupp-cli/internal/errors"
	"github.com/Mobo140/vupp-cli/internal/model"
	"github.com/Mobo140/vupp-cli/internal/router"
	authsvc "github.com/Mobo140/vupp-cli/internal/service/auth"
	"github.com/Mobo140/vupp-cli/internal/ui"
)

const (
	gotoRegister = "/register"
	gotoLogin    = "/login"
)

func (a *App) loginScreen(ctx context.Context) (router.Route, error) {
	fmt.Fprintln(a.out, ui.HeaderStyle.Render(" Welcome back "))

	if p := a.takePrefill(); p != nil {
		if err := a.auth.Login(ctx, p.username, p.password); err != nil {
			a.showError(err)

			return router.None, err
		}

		return router.Chat, nil
	}

	for {
		username, ok := a.prompt(ctx, "Username (or "+gotoRegister+"): ")
		if !ok {
			return router.None, nil
		}
		if username == gotoRegister {
			return router.Register, nil
		}

		password, ok := a.prompt(ctx, "Password: ")
		if !ok {
			return router.None, nil
		}

		err := a.auth.Login(ctx, username, password)
		if err == nil {
			return router.Chat, nil
		}

		a.showError(err)
	}
}

func (a *App) registerScreen(ctx context.Context) (router.Route, error) {
	fmt.Fprintln(a.out, ui.HeaderStyle.Render(" Create account "))

	if p := a.takePrefill(); p != nil {
		form := model.Registration{Username: p.username, Password: p.password, Confirm: p.confirm}
		if err := a.auth.Register(ctx, form); err != nil {
			a.showError(err)

			return router.None, err
		}

		return a.registered(ctx)
	}

	for {
		username, ok := a.prompt(ctx, "Username (or "+gotoLogin+"): ")
		if !ok {
			return router.None, nil
		}
		if username == gotoLogin {
			return router.Login, nil
		}

		password, ok := a.prompt(ctx, "Password: ")
		if !ok {
			return router.None, nil
		}
		if strength := authsvc.PasswordStrength(password); strength != authsvc.StrengthNone {
			fmt.Fprintf(a.out, "Password strength: %s\n", strength)
		}

		confirm, ok := a.prompt(ctx, "Confirm password: ")
		if !ok {
			return router.None, nil
		}

		err := a.auth.Register(ctx, model.Registration{Username: username, Password: password, Confirm: confirm})
		if err == nil {
			return a.registered(ctx)
		}

		a.showError(err)
	}
}

func (a *App) registered(ctx context.Context) (router.Route, error) {
	fmt.Fprintln(a.out, ui.NoticeStyle.Render("Registration successful! Redirecting to login..."))

	if err := sleep(ctx, a.settings.RegisterRedirectDelay); err != nil {
		return router.None, nil
	}

	return router.Login, nil
}

func (a *App) showError(err error) {
	message, ok := apperrors.UserMessage(err)
	if !ok {
		message = err.Error()
	}

	fmt.Fprintln(a.out, ui.ErrorStyle.Render(message))
}

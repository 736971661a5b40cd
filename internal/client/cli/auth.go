package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/casekeeper/internal/client/client"
	"github.com/dmitrijs2005/casekeeper/internal/client/forms"
	"github.com/dmitrijs2005/casekeeper/internal/client/models"
	"github.com/dmitrijs2005/casekeeper/internal/client/notify"
)

var loginFields = []string{"email", "password"}

var registerFields = []string{"email", "name", "password", "passwordConfirm"}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}

	err = a.auth.Login(ctx, models.LoginInput{Email: email, Password: password})
	var verr *forms.ValidationError
	switch {
	case errors.As(err, &verr):
		a.printFieldErrors(loginFields, verr.Fields)
		return err
	case err != nil:
		a.log.Warn(ctx, "login failed", "reason", client.ErrorMessage(err))
		a.notifyError(ctx, notify.LoginFailed)
		return err
	}

	a.notifier.Notify(ctx, notify.LevelSuccess, notify.LoginSucceeded)
	return nil
}

func (a *App) Register(ctx context.Context) error {
	in := models.RegisterInput{}
	var err error
	if in.Email, err = GetSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if in.Name, err = GetSimpleText(a.reader, "Enter name", a.out); err != nil {
		return err
	}
	if in.Password, err = GetPassword(a.reader, "Enter password", a.out); err != nil {
		return err
	}
	if in.PasswordConfirm, err = GetPassword(a.reader, "Confirm password", a.out); err != nil {
		return err
	}

	_, err = a.auth.Register(ctx, in)
	var verr *forms.ValidationError
	switch {
	case errors.As(err, &verr):
		a.printFieldErrors(registerFields, verr.Fields)
		return err
	case err != nil:
		a.notifyError(ctx, notify.RegisterFailed+": "+client.ErrorMessage(err))
		return err
	}

	a.notifier.Notify(ctx, notify.LevelSuccess, notify.RegisterSucceeded)
	return nil
}

// Logout ends the session. The session's reload hook refreshes the view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout failed", "error", err)
		a.notifyError(ctx, notify.LogoutFailed)
		return err
	}
	a.notifier.Notify(ctx, notify.LevelSuccess, notify.LogoutSucceeded)
	return nil
}

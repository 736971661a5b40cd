package services

import (
	"context"

	"github.com/dmitrijs2005/casekeeper/internal/client/forms"
	"github.com/dmitrijs2005/casekeeper/internal/client/models"
	"github.com/dmitrijs2005/casekeeper/internal/client/progress"
)

// AuthService is the console's auth contract. The session implements it
// directly; NewAuthService wraps a session with form validation so invalid
// input yields a *forms.ValidationError without any request.
type AuthService interface {
	Login(ctx context.Context, in models.LoginInput) error
	Logout(ctx context.Context) error
	Register(ctx context.Context, in models.RegisterInput) (*models.User, error)
	IsAuthenticated() bool
}

type authService struct {
	session  AuthService
	progress *progress.Indicator
}

func NewAuthService(session AuthService, ind *progress.Indicator) AuthService {
	return &authService{session: session, progress: ind}
}

func (a *authService) Login(ctx context.Context, in models.LoginInput) error {
	res := forms.ValidateLogin(in)
	if !res.Valid() {
		return res.Err()
	}
	return a.progress.Track(func() error {
		return a.session.Login(ctx, res.Payload())
	})
}

func (a *authService) Logout(ctx context.Context) error {
	return a.progress.Track(func() error {
		return a.session.Logout(ctx)
	})
}

func (a *authService) Register(ctx context.Context, in models.RegisterInput) (*models.User, error) {
	res := forms.ValidateRegister(in)
	if !res.Valid() {
		return nil, res.Err()
	}
	var user *models.User
	err := a.progress.Track(func() (err error) {
		user, err = a.session.Register(ctx, res.Payload())
		return err
	})
	return user, err
}

func (a *authService) IsAuthenticated() bool {
	return a.session.IsAuthenticated()
}

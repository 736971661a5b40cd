package client

import (
	"context"

	"github.com/dmitrijs2005/casekeeper/internal/client/models"
)

// Client is the contract of the case management REST API.
type Client interface {
	Login(ctx context.Context, in models.LoginInput) (*models.LoginResponse, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, in models.RegisterInput) (*models.RegisterResponse, error)

	CreateCase(ctx context.Context, in models.CaseInput) (*models.CaseResponse, error)
	UpdateCase(ctx context.Context, id string, in models.CaseInput) (*models.CaseResponse, error)
	DeleteCase(ctx context.Context, id string) error
	GetCase(ctx context.Context, id string) (*models.CaseResponse, error)
	ListCases(ctx context.Context, page, limit int) (*models.CasesResponse, error)
	TestCase(ctx context.Context, id string) error

	// SetToken replaces the credential attached to subsequent calls.
	// An empty token sends none.
	SetToken(token string)
}

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/casekeeper/internal/client/client"
	"github.com/dmitrijs2005/casekeeper/internal/client/models"
	"github.com/dmitrijs2005/casekeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/casekeeper/internal/client/storage"
	"github.com/dmitrijs2005/casekeeper/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI overrides the auth calls; case calls would panic.
type fakeAPI struct {
	client.Client

	loginResp   *models.LoginResponse
	loginErr    error
	logoutErr   error
	logoutCalls int
	registerErr error
	lastLogin   models.LoginInput
	token       string
}

func (f *fakeAPI) Login(_ context.Context, in models.LoginInput) (*models.LoginResponse, error) {
	f.lastLogin = in
	return f.loginResp, f.loginErr
}
func (f *fakeAPI) Logout(context.Context) error { f.logoutCalls++; return f.logoutErr }
func (f *fakeAPI) Register(_ context.Context, in models.RegisterInput) (*models.RegisterResponse, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	resp := &models.RegisterResponse{Status: "success"}
	resp.Data.User = models.User{ID: "u1", Email: in.Email, Name: in.Name}
	return resp, nil
}
func (f *fakeAPI) SetToken(token string) { f.token = token }

func newStore(t *testing.T) metadata.Repository {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return metadata.NewSQLiteRepository(db)
}

func storedToken(t *testing.T, store metadata.Repository) (string, bool) {
	t.Helper()
	v, found, err := store.Get(context.Background(), TokenKey)
	require.NoError(t, err)
	return v, found
}

func TestRestore_DerivesStateFromStoredToken(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	api := &fakeAPI{}

	s := New(api, store, logging.Discard())
	require.NoError(t, s.Restore(ctx))
	assert.False(t, s.IsAuthenticated())

	require.NoError(t, store.Set(ctx, TokenKey, "persisted"))
	s = New(api, store, logging.Discard())
	require.NoError(t, s.Restore(ctx))

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "persisted", s.Token())
	assert.Equal(t, "persisted", api.token, "client gets the restored credential")
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	api := &fakeAPI{loginResp: &models.LoginResponse{Status: "success", Token: "tok"}}
	s := New(api, store, logging.Discard())

	require.NoError(t, s.Login(ctx, models.LoginInput{Email: "a@b.c", Password: "pw"}))

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "a@b.c", api.lastLogin.Email)
	assert.Equal(t, "tok", api.token)
	v, found := storedToken(t, store)
	assert.True(t, found)
	assert.Equal(t, "tok", v)
}

func TestLogin_WrongCredentials_NothingStored(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	api := &fakeAPI{loginErr: &client.APIError{StatusCode: 400, Message: "Invalid email or password"}}
	s := New(api, store, logging.Discard())

	err := s.Login(ctx, models.LoginInput{Email: "a@b.c", Password: "bad"})

	require.Error(t, err)
	var apiErr *client.APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.False(t, s.IsAuthenticated())
	_, found := storedToken(t, store)
	assert.False(t, found)
	assert.Empty(t, api.token)
}

func TestLogin_EmptyToken(t *testing.T) {
	store := newStore(t)
	s := New(&fakeAPI{loginResp: &models.LoginResponse{Status: "success"}}, store, logging.Discard())

	err := s.Login(context.Background(), models.LoginInput{Email: "a", Password: "b"})

	require.ErrorIs(t, err, ErrEmptyToken)
	assert.False(t, s.IsAuthenticated())
}

func TestLogout_ClearsTokenAndReloads(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	require.NoError(t, store.Set(ctx, TokenKey, "tok"))
	api := &fakeAPI{}
	s := New(api, store, logging.Discard())
	require.NoError(t, s.Restore(ctx))

	reloads := 0
	s.OnReload(func(context.Context) { reloads++ })

	require.NoError(t, s.Logout(ctx))

	assert.Equal(t, 1, api.logoutCalls)
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, api.token)
	_, found := storedToken(t, store)
	assert.False(t, found)
	assert.Equal(t, 1, reloads)
}

func TestLogout_BackendFailureKeepsSession(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	require.NoError(t, store.Set(ctx, TokenKey, "tok"))
	s := New(&fakeAPI{logoutErr: client.ErrUnavailable}, store, logging.Discard())
	require.NoError(t, s.Restore(ctx))

	reloaded := false
	s.OnReload(func(context.Context) { reloaded = true })

	err := s.Logout(ctx)

	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.True(t, s.IsAuthenticated())
	assert.False(t, reloaded)
	_, found := storedToken(t, store)
	assert.True(t, found)
}

func TestRegister_DoesNotLogIn(t *testing.T) {
	s := New(&fakeAPI{}, newStore(t), logging.Discard())

	u, err := s.Register(context.Background(), models.RegisterInput{Email: "a@b.c", Name: "Ann"})

	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.False(t, s.IsAuthenticated())
}

func TestRegister_Error(t *testing.T) {
	s := New(&fakeAPI{registerErr: errors.New("exists")}, newStore(t), logging.Discard())

	_, err := s.Register(context.Background(), models.RegisterInput{})
	require.ErrorContains(t, err, "register: exists")
}

func TestClaims(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	s := New(&fakeAPI{}, store, logging.Discard())

	_, err := s.Claims()
	require.ErrorIs(t, err, ErrNotAuthenticated)

	exp := time.Now().Add(-time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, TokenKey, signed))
	require.NoError(t, s.Restore(ctx))

	claims, err := s.Claims()
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.True(t, claims.ExpiresAt.Time.Equal(exp))
	assert.True(t, s.IsAuthenticated(), "expired token still counts as logged in")

	require.NoError(t, store.Set(ctx, TokenKey, "opaque"))
	require.NoError(t, s.Restore(ctx))
	_, err = s.Claims()
	require.Error(t, err)
}

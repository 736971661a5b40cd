package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/casekeeper/internal/client/cache"
	"github.com/dmitrijs2005/casekeeper/internal/client/client"
	"github.com/dmitrijs2005/casekeeper/internal/client/notify"
	"github.com/dmitrijs2005/casekeeper/internal/client/progress"
	"github.com/dmitrijs2005/casekeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/casekeeper/internal/client/services"
	"github.com/dmitrijs2005/casekeeper/internal/client/session"
	"github.com/dmitrijs2005/casekeeper/internal/client/storage"
	"github.com/dmitrijs2005/casekeeper/internal/logging"
	"github.com/stretchr/testify/require"
)

type reply struct {
	status int
	body   string
}

// backend is a scripted REST API. Routes are keyed by "METHOD /path";
// unknown routes answer 404.
type backend struct {
	mu       sync.Mutex
	routes   map[string]reply
	requests []string
	bodies   map[string]string
	cookies  []string
}

func newBackend(routes map[string]reply) *backend {
	return &backend{routes: routes, bodies: map[string]string{}}
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	key := r.Method + " " + r.URL.Path

	b.mu.Lock()
	b.requests = append(b.requests, key)
	b.bodies[key] = string(body)
	if c, err := r.Cookie(client.TokenCookieName); err == nil {
		b.cookies = append(b.cookies, c.Value)
	}
	rep, ok := b.routes[key]
	b.mu.Unlock()

	if !ok {
		rep = reply{status: http.StatusNotFound, body: `{"status":"fail","message":"route not found"}`}
	}
	if rep.status == 0 {
		rep.status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rep.status)
	_, _ = io.WriteString(w, rep.body)
}

func (b *backend) set(key string, rep reply) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[key] = rep
}

func (b *backend) calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.requests...)
}

func (b *backend) body(key string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[key]
}

const listSample = `{"status":"success","results":1,"cases":[{"id":"1","title":"Sample"}]}`

type harness struct {
	app      *App
	out      *bytes.Buffer
	be       *backend
	sess     *session.Session
	store    metadata.Repository
	progress *progress.Indicator
}

// newHarness wires the real console stack against a scripted backend.
// input is what the user types. token, when set, is stored before the
// session is restored.
func newHarness(t *testing.T, input string, routes map[string]reply, token string) *harness {
	t.Helper()
	stubTerminal(t)

	ctx := context.Background()
	log := logging.Discard()

	be := newBackend(routes)
	srv := httptest.NewServer(be)
	t.Cleanup(srv.Close)

	api, err := client.NewHTTPClient(srv.URL+"/api/", log)
	require.NoError(t, err)

	db, err := storage.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	store := metadata.NewSQLiteRepository(db)
	if token != "" {
		require.NoError(t, store.Set(ctx, session.TokenKey, token))
	}

	sess := session.New(api, store, log)
	require.NoError(t, sess.Restore(ctx))

	ind := &progress.Indicator{}
	c := cache.New(time.Hour, ind)
	out := &bytes.Buffer{}

	app := NewApp(Deps{
		Cases:    services.NewCaseService(api, c, ind, 10, log),
		Auth:     services.NewAuthService(sess, ind),
		Identity: sess,
		Cache:    c,
		Notifier: notify.NewConsole(out, log),
		Progress: ind,
		In:       strings.NewReader(input),
		Out:      out,
		Log:      log,
	})
	sess.OnReload(app.Reload)

	return &harness{app: app, out: out, be: be, sess: sess, store: store, progress: ind}
}

// stubTerminal makes password prompts read plain lines from the app reader.
func stubTerminal(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/casekeeper/internal/client/cache"
	"github.com/dmitrijs2005/casekeeper/internal/client/forms"
	"github.com/dmitrijs2005/casekeeper/internal/client/notify"
	"github.com/dmitrijs2005/casekeeper/internal/client/progress"
	"github.com/dmitrijs2005/casekeeper/internal/client/services"
	"github.com/dmitrijs2005/casekeeper/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// Identity exposes the decoded claims of the session token for display.
type Identity interface {
	Claims() (*jwt.RegisteredClaims, error)
}

// Deps are the collaborators of App. Identity may be nil.
type Deps struct {
	Cases    services.CaseService
	Auth     services.AuthService
	Identity Identity
	Cache    *cache.Cache
	Notifier notify.Notifier
	Progress *progress.Indicator
	In       io.Reader
	Out      io.Writer
	Log      logging.Logger
}

type App struct {
	cases    services.CaseService
	auth     services.AuthService
	identity Identity
	cache    *cache.Cache
	notifier notify.Notifier
	progress *progress.Indicator
	reader   *bufio.Reader
	out      io.Writer
	log      logging.Logger

	// draft is the create form kept after a failed submission
	draft *forms.CaseDraft
}

func NewApp(d Deps) *App {
	a := &App{
		cases:    d.Cases,
		auth:     d.Auth,
		identity: d.Identity,
		cache:    d.Cache,
		notifier: d.Notifier,
		progress: d.Progress,
		reader:   bufio.NewReader(d.In),
		out:      d.Out,
		log:      d.Log,
	}
	if a.progress != nil {
		a.progress.Observe(a.onActivity)
	}
	return a
}

// onActivity logs the busy/idle transitions behind the prompt marker.
func (a *App) onActivity(active bool) {
	if active {
		a.log.Debug(context.Background(), "requests in flight")
		return
	}
	a.log.Debug(context.Background(), "requests settled")
}

// Run shows the case list and then serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to CaseKeeper (type 'help' for commands)")
	_ = a.List(ctx)
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

// Reload drops every cached query and renders the list again. It runs after
// a logout.
func (a *App) Reload(ctx context.Context) {
	a.log.Debug(ctx, "reloading view")
	a.draft = nil
	a.cache.Reset()
	_ = a.List(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

// getStatus is shown in the prompt: who is logged in and whether a request
// is still running.
func (a *App) getStatus() string {
	s := "guest"
	if a.isLoggedIn() {
		s = "logged in"
		if a.identity != nil {
			if claims, err := a.identity.Claims(); err == nil && claims.Subject != "" {
				s = claims.Subject
			}
		}
	}
	if a.progress != nil && a.progress.Active() {
		s += " *"
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) notifyError(ctx context.Context, msg string) {
	a.notifier.Notify(ctx, notify.LevelError, msg)
}

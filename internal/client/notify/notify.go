// Package notify shows transient notifications, the console's equivalent of
// toast messages.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/casekeeper/internal/logging"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Messages shown after case and auth operations.
const (
	CaseCreated       = "Case created successfully"
	CaseUpdated       = "Case updated successfully"
	CaseDeleted       = "Case deleted successfully"
	CaseTested        = "Test Case successfully"
	LoginSucceeded    = "Login successful"
	LoginFailed       = "Login failed"
	LogoutSucceeded   = "Logout successful"
	LogoutFailed      = "Logout failed"
	RegisterSucceeded = "Registration successful"
	RegisterFailed    = "Registration failed"
)

type Notifier interface {
	Notify(ctx context.Context, level Level, msg string)
}

// Console prints one line per notification and mirrors it to the log.
type Console struct {
	mu  sync.Mutex
	w   io.Writer
	log logging.Logger
}

func NewConsole(w io.Writer, log logging.Logger) *Console {
	return &Console{w: w, log: log}
}

func (c *Console) Notify(ctx context.Context, level Level, msg string) {
	c.mu.Lock()
	fmt.Fprintf(c.w, "[%s] %s\n", level, msg)
	c.mu.Unlock()

	switch level {
	case LevelError:
		c.log.Error(ctx, "notification", "message", msg)
	case LevelWarning:
		c.log.Warn(ctx, "notification", "message", msg)
	default:
		c.log.Debug(ctx, "notification", "level", string(level), "message", msg)
	}
}

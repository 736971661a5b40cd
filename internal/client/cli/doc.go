// Package cli provides the interactive CaseKeeper console.
//
// The console is a read-eval-print loop over the case services: it lists
// cases as cards, runs create/edit forms with inline validation errors,
// confirms destructive actions, and reports outcomes as one-line
// notifications. Authentication state comes from the session and is shown
// in the prompt together with a busy marker while a request is in flight.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

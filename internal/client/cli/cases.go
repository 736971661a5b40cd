package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/casekeeper/internal/client/client"
	"github.com/dmitrijs2005/casekeeper/internal/client/forms"
	"github.com/dmitrijs2005/casekeeper/internal/client/models"
	"github.com/dmitrijs2005/casekeeper/internal/client/notify"
)

// List renders the cached case list, fetching it when stale. A failed fetch
// still renders whatever was fetched before.
func (a *App) List(ctx context.Context) error {
	resp, err := a.cases.List(ctx)
	if resp != nil {
		renderList(a.out, resp)
	}
	if err != nil {
		a.notifyError(ctx, client.ErrorMessage(err))
		return err
	}
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	c, err := a.getCase(ctx, id, "Enter case id to show")
	if err != nil {
		return err
	}
	renderCase(a.out, *c)
	return nil
}

func (a *App) Result(ctx context.Context, id string) error {
	c, err := a.getCase(ctx, id, "Enter case id to show the result of")
	if err != nil {
		return err
	}
	renderResult(a.out, *c)
	return nil
}

func (a *App) getCase(ctx context.Context, id, prompt string) (*models.Case, error) {
	id, err := a.askID(id, prompt)
	if err != nil {
		return nil, err
	}
	c, err := a.cases.Get(ctx, id)
	if err != nil {
		a.notifyError(ctx, client.ErrorMessage(err))
		return nil, err
	}
	return c, nil
}

// Create runs the create form until the draft validates. If the backend
// rejects it the draft is kept and offered again by the next Create.
func (a *App) Create(ctx context.Context) error {
	d := forms.CaseDraft{}
	if a.draft != nil {
		d = *a.draft
		fmt.Fprintln(a.out, "Continuing the unsaved draft.")
	}

	for {
		if err := a.fillCaseForm(&d); err != nil {
			a.draft = &d
			return err
		}

		_, err := a.cases.Create(ctx, d)
		var verr *forms.ValidationError
		if errors.As(err, &verr) {
			a.printFieldErrors(forms.CaseFields, verr.Fields)
			continue
		}
		if err != nil {
			a.draft = &d
			a.notifyError(ctx, client.ErrorMessage(err))
			return err
		}
		break
	}

	a.draft = nil
	a.notifier.Notify(ctx, notify.LevelSuccess, notify.CaseCreated)
	return a.List(ctx)
}

// Edit pre-fills the form from the current case and submits the changes.
func (a *App) Edit(ctx context.Context, id string) error {
	c, err := a.getCase(ctx, id, "Enter case id to edit")
	if err != nil {
		return err
	}

	d := forms.DraftFromCase(*c)
	for {
		if err := a.fillCaseForm(&d); err != nil {
			return err
		}

		_, err := a.cases.Update(ctx, c.ID, d)
		var verr *forms.ValidationError
		if errors.As(err, &verr) {
			a.printFieldErrors(forms.CaseFields, verr.Fields)
			continue
		}
		if err != nil {
			a.notifyError(ctx, client.ErrorMessage(err))
			return err
		}
		break
	}

	a.notifier.Notify(ctx, notify.LevelSuccess, notify.CaseUpdated)
	return a.List(ctx)
}

func (a *App) Delete(ctx context.Context, id string) error {
	id, err := a.askID(id, "Enter case id to delete")
	if err != nil {
		return err
	}
	if !Confirm(a.reader, "Are you sure", a.out) {
		return nil
	}
	if err := a.cases.Delete(ctx, id); err != nil {
		a.notifyError(ctx, client.ErrorMessage(err))
		return err
	}
	a.notifier.Notify(ctx, notify.LevelWarning, notify.CaseDeleted)
	return a.List(ctx)
}

func (a *App) Test(ctx context.Context, id string) error {
	id, err := a.askID(id, "Enter case id to test")
	if err != nil {
		return err
	}
	if !Confirm(a.reader, "Begin Test?", a.out) {
		return nil
	}
	if err := a.cases.Trigger(ctx, id); err != nil {
		a.notifyError(ctx, client.ErrorMessage(err))
		return err
	}
	a.notifier.Notify(ctx, notify.LevelWarning, notify.CaseTested)
	return a.List(ctx)
}

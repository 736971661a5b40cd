package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/casekeeper/internal/client/cache"
	"github.com/dmitrijs2005/casekeeper/internal/client/client"
	"github.com/dmitrijs2005/casekeeper/internal/client/forms"
	"github.com/dmitrijs2005/casekeeper/internal/client/models"
	"github.com/dmitrijs2005/casekeeper/internal/client/progress"
	"github.com/dmitrijs2005/casekeeper/internal/logging"
)

// CaseService defines case operations for the console.
//
// Contract:
//   - List: the cached first page of cases, refetched when stale.
//   - Get: one case, always from the backend.
//   - Create/Update: validate the draft; an invalid draft yields a
//     *forms.ValidationError and no request.
//   - Delete/Trigger: remove a case or ask the backend to run it.
//
// Successful mutations invalidate cache.CaseListKey once.
type CaseService interface {
	List(ctx context.Context) (*models.CasesResponse, error)
	Refresh(ctx context.Context) (*models.CasesResponse, error)
	Get(ctx context.Context, id string) (*models.Case, error)
	Create(ctx context.Context, draft forms.CaseDraft) (*models.Case, error)
	Update(ctx context.Context, id string, draft forms.CaseDraft) (*models.Case, error)
	Delete(ctx context.Context, id string) error
	Trigger(ctx context.Context, id string) error
	Loading() bool
}

type caseService struct {
	client   client.Client
	list     *cache.Query[*models.CasesResponse]
	inv      cache.Invalidator
	progress *progress.Indicator
	log      logging.Logger
}

// NewCaseService binds the case list query to c. The list always asks for
// page 1 with pageSize items.
func NewCaseService(api client.Client, c *cache.Cache, ind *progress.Indicator, pageSize int, log logging.Logger) CaseService {
	s := &caseService{client: api, inv: c, progress: ind, log: log}
	s.list = cache.NewQuery(c, cache.CaseListKey, func(ctx context.Context) (*models.CasesResponse, error) {
		return api.ListCases(ctx, 1, pageSize)
	})
	return s
}

func (s *caseService) List(ctx context.Context) (*models.CasesResponse, error) {
	resp, err := s.list.Get(ctx)
	if err != nil {
		return resp, fmt.Errorf("list cases: %w", err)
	}
	return resp, nil
}

func (s *caseService) Refresh(ctx context.Context) (*models.CasesResponse, error) {
	resp, err := s.list.Refetch(ctx)
	if err != nil {
		return resp, fmt.Errorf("list cases: %w", err)
	}
	return resp, nil
}

// Loading reports that the list has no data yet and a fetch is in flight.
func (s *caseService) Loading() bool {
	return s.list.Loading()
}

func (s *caseService) Get(ctx context.Context, id string) (*models.Case, error) {
	var resp *models.CaseResponse
	err := s.progress.Track(func() (err error) {
		resp, err = s.client.GetCase(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get case %s: %w", id, err)
	}
	return &resp.Case, nil
}

func (s *caseService) Create(ctx context.Context, draft forms.CaseDraft) (*models.Case, error) {
	res := forms.ValidateCase(draft)
	if !res.Valid() {
		return nil, res.Err()
	}

	var resp *models.CaseResponse
	if err := s.mutate(ctx, func() (err error) {
		resp, err = s.client.CreateCase(ctx, res.Payload())
		return err
	}); err != nil {
		return nil, fmt.Errorf("create case: %w", err)
	}

	s.log.Info(ctx, "case created", "id", resp.Case.ID)
	return &resp.Case, nil
}

func (s *caseService) Update(ctx context.Context, id string, draft forms.CaseDraft) (*models.Case, error) {
	res := forms.ValidateCase(draft)
	if !res.Valid() {
		return nil, res.Err()
	}

	var resp *models.CaseResponse
	if err := s.mutate(ctx, func() (err error) {
		resp, err = s.client.UpdateCase(ctx, id, res.Payload())
		return err
	}); err != nil {
		return nil, fmt.Errorf("update case %s: %w", id, err)
	}

	s.log.Info(ctx, "case updated", "id", id)
	return &resp.Case, nil
}

func (s *caseService) Delete(ctx context.Context, id string) error {
	if err := s.mutate(ctx, func() error {
		return s.client.DeleteCase(ctx, id)
	}); err != nil {
		return fmt.Errorf("delete case %s: %w", id, err)
	}
	s.log.Info(ctx, "case deleted", "id", id)
	return nil
}

func (s *caseService) Trigger(ctx context.Context, id string) error {
	if err := s.mutate(ctx, func() error {
		return s.client.TestCase(ctx, id)
	}); err != nil {
		return fmt.Errorf("test case %s: %w", id, err)
	}
	s.log.Info(ctx, "case test triggered", "id", id)
	return nil
}

// mutate runs call under the progress indicator and invalidates the case
// list when it succeeds.
func (s *caseService) mutate(ctx context.Context, call func() error) error {
	if err := s.progress.Track(call); err != nil {
		s.log.Warn(ctx, "case mutation failed", "error", err)
		return err
	}
	s.inv.Invalidate(cache.CaseListKey)
	return nil
}

package journal

import (
	"context"

	"shopconsole/internal/domain/journal"
	"shopconsole/internal/store/repositories"

	"github.com/rs/zerolog/log"
)

// Service records and lists mutating console actions
type Service struct {
	repo repositories.JournalRepository
}

// NewService creates a new journal service
func NewService(repo repositories.JournalRepository) *Service {
	if repo == nil {
		repo = repositories.NoopJournal{}
	}
	return &Service{repo: repo}
}

// Record stores the outcome of an action. Journal failures are logged and
// never surface to the caller.
func (s *Service) Record(ctx context.Context, sessionID string, action journal.Action, resource journal.Resource, resourceID int64, cause error) {
	e, err := journal.NewEntry(sessionID, action, resource, resourceID, cause)
	if err != nil {
		log.Error().Err(err).Msg("journal: invalid entry")
		return
	}
	if err := s.repo.Save(ctx, e); err != nil {
		log.Error().
			Err(err).
			Str("action", string(action)).
			Str("resource", string(resource)).
			Int64("resource_id", resourceID).
			Msg("journal: save failed")
	}
}

// List returns a page of journal entries
func (s *Service) List(ctx context.Context, req ListRequest) (*ListResponse, error) {
	req.Validate()

	entries, err := s.repo.List(ctx, req.Limit, req.Offset)
	if err != nil {
		return nil, &ServiceError{Op: "list_journal", Err: err}
	}
	return &ListResponse{Entries: entries, Limit: req.Limit, Offset: req.Offset}, nil
}

// ServiceError represents a journal service error
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return "journal service " + e.Op + ": " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// ListResponse represents paginated journal data
type ListResponse struct {
	Entries []*journal.Entry `json:"entries"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

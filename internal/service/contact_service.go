package service

import (
	"context"

	"github.com/rkenterprise/site-backend/internal/model"
)

// ContactQueryStore is the persistence surface for contact submissions.
type ContactQueryStore interface {
	Create(ctx context.Context, q *model.ContactQuery) error
	List(ctx context.Context) ([]model.ContactQuery, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// ContactService handles contact form intake and admin inbox management.
type ContactService struct {
	store ContactQueryStore
}

func NewContactService(store ContactQueryStore) *ContactService {
	return &ContactService{store: store}
}

// Submit records a public contact form submission.
func (s *ContactService) Submit(ctx context.Context, q *model.ContactQuery) error {
	return s.store.Create(ctx, q)
}

// List returns all queries, newest first.
func (s *ContactService) List(ctx context.Context) ([]model.ContactQuery, error) {
	queries, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if queries == nil {
		queries = []model.ContactQuery{}
	}
	return queries, nil
}

// Delete removes a query, returning ErrNotFound when the id is unmatched.
func (s *ContactService) Delete(ctx context.Context, id int) error {
	matched, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

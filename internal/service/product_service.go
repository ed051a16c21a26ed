package service

import (
	"context"
	"errors"

	"github.com/rkenterprise/site-backend/internal/model"
)

// ErrInvalidStatus rejects status values other than the literals 0 and 1.
var ErrInvalidStatus = errors.New("status must be 0 or 1")

// ProductStore is the persistence surface the product service needs.
// GetByID returns nil without error when no row matches; mutations report
// whether a row matched.
type ProductStore interface {
	ListActive(ctx context.Context) ([]model.Product, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) (bool, error)
	UpdateStatus(ctx context.Context, id, status int) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// ProductCache holds public catalog payloads. Implementations must treat
// failures as misses; a nil cache disables caching.
type ProductCache interface {
	GetList(ctx context.Context) ([]model.Product, bool)
	SetList(ctx context.Context, products []model.Product)
	Get(ctx context.Context, id int) (*model.Product, bool)
	Set(ctx context.Context, p *model.Product)
	Invalidate(ctx context.Context, ids ...int)
}

// ProductService implements catalog rules. File lifecycle compensation is
// orchestrated by the handlers together with the media service.
type ProductService struct {
	store ProductStore
	cache ProductCache
}

func NewProductService(store ProductStore, cache ProductCache) *ProductService {
	return &ProductService{store: store, cache: cache}
}

// ListPublic returns active products only, served from cache when warm.
func (s *ProductService) ListPublic(ctx context.Context) ([]model.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.GetList(ctx); ok {
			return products, nil
		}
	}

	products, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	if s.cache != nil {
		s.cache.SetList(ctx, products)
	}
	return products, nil
}

// ListAll returns every product regardless of status. Admin panel only.
func (s *ProductService) ListAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// Get returns one product of any status or ErrNotFound.
func (s *ProductService) Get(ctx context.Context, id int) (*model.Product, error) {
	if s.cache != nil {
		if p, ok := s.cache.Get(ctx, id); ok {
			return p, nil
		}
	}

	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	if s.cache != nil {
		s.cache.Set(ctx, p)
	}
	return p, nil
}

// Create inserts a product row. The image file must already be on disk;
// the caller compensates by deleting it when this fails.
func (s *ProductService) Create(ctx context.Context, p *model.Product) error {
	if p.Status != model.ProductInactive && p.Status != model.ProductActive {
		return ErrInvalidStatus
	}
	if err := s.store.Create(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx, p.ID)
	return nil
}

// Update rewrites a product row, returning ErrNotFound when the id is
// unmatched. Image compensation is the caller's concern.
func (s *ProductService) Update(ctx context.Context, p *model.Product) error {
	if p.Status != model.ProductInactive && p.Status != model.ProductActive {
		return ErrInvalidStatus
	}
	matched, err := s.store.Update(ctx, p)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	s.invalidate(ctx, p.ID)
	return nil
}

// UpdateStatus accepts only the literals 0 and 1.
func (s *ProductService) UpdateStatus(ctx context.Context, id, status int) error {
	if status != model.ProductInactive && status != model.ProductActive {
		return ErrInvalidStatus
	}
	matched, err := s.store.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	s.invalidate(ctx, id)
	return nil
}

// Delete removes a product row. Callers delete the image file first, using
// the path discovered via Get.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	matched, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, ids ...int) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, ids...)
	}
}

package memory

import (
	"context"
	"fmt"

	"github.com/dwikikusuma/shopcart/internal/catalog/app"
	"github.com/dwikikusuma/shopcart/internal/catalog/domain"
	"github.com/google/uuid"
)

// ProductRepo keeps the catalog in memory. Products are stored by
// reference so stock mutations made during checkout are visible to every
// holder of the product.
type ProductRepo struct {
	byID   map[string]*domain.Product
	byName map[string]*domain.Product
	order  []string
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{
		byID:   make(map[string]*domain.Product),
		byName: make(map[string]*domain.Product),
	}
}

func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if _, ok := r.byName[p.Name]; ok {
		return nil, fmt.Errorf("product %q: %w", p.Name, app.ErrAlreadyExists)
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	r.byID[p.ID] = p
	r.byName[p.Name] = p
	r.order = append(r.order, p.ID)
	return p, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, app.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepo) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	p, ok := r.byName[name]
	if !ok {
		return nil, app.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]*domain.Product, error) {
	products := make([]*domain.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, r.byID[id])
	}
	return products, nil
}

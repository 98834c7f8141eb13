package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/shopcart/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateProduct(ctx context.Context, name string, price decimal.Decimal, quantity int, opts ...domain.Option) (*domain.Product, error) {
	name = strings.TrimSpace(name)

	if name == "" || price.IsNegative() || quantity < 0 {
		return nil, ErrInvalidInput
	}

	p := domain.NewProduct(name, price, quantity, opts...)

	product, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) GetProductByName(ctx context.Context, name string) (*domain.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByName(ctx, name)
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/niel2512/hackathon-SmartFlow/internal/apperr"
	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
	"github.com/niel2512/hackathon-SmartFlow/internal/repos"
)

type ProductService struct {
	Products *repos.ProductRepo
}

func NewProductService(products *repos.ProductRepo) *ProductService {
	return &ProductService{Products: products}
}

func (s *ProductService) List() ([]domain.Product, error) { return s.Products.List() }

func (s *ProductService) Get(id string) (domain.Product, error) {
	p, err := s.Products.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, apperr.NotFound("Product not found")
	}
	return p, err
}

func (s *ProductService) Create(in domain.CreateProductInput) (domain.Product, error) {
	p := domain.Product{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Stock:     *in.Stock,
		MinStock:  *in.MinStock,
		Price:     *in.Price,
		CreatedAt: repos.Now(),
	}
	if err := s.Products.Create(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// Update applies a partial update. Stock values clamp at 0 rather than fail;
// stock and minStock never go negative.
func (s *ProductService) Update(id string, in domain.UpdateProductInput) (domain.Product, error) {
	p, err := s.Products.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, apperr.NotFound("Product not found")
	}
	if err != nil {
		return domain.Product{}, err
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Stock != nil {
		p.Stock = clampZero(*in.Stock)
	}
	if in.MinStock != nil {
		p.MinStock = clampZero(*in.MinStock)
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if err := s.Products.Update(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *ProductService) Delete(id string) error {
	return s.Products.Delete(id)
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

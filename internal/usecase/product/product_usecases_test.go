package product_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lukegor/price-negotiation-backend/internal/domain/entity"
	"github.com/lukegor/price-negotiation-backend/internal/pkg/apperror"
	"github.com/lukegor/price-negotiation-backend/internal/usecase/product"
)

type mockProductRepository struct {
	products  map[uuid.UUID]*entity.Product
	updateErr error
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[uuid.UUID]*entity.Product)}
}

func (m *mockProductRepository) Create(ctx context.Context, p *entity.Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, p *entity.Product) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := m.products[id]; !ok {
		return false, nil
	}
	delete(m.products, id)
	return true, nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return nil, apperror.ErrProductNotFound
}

func (m *mockProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	result := make([]*entity.Product, 0, len(m.products))
	for _, p := range m.products {
		result = append(result, p)
	}
	return result, nil
}

func TestCreateProductUseCase_Success(t *testing.T) {
	repo := newMockProductRepository()
	uc := product.NewCreateProductUseCase(repo)

	created, err := uc.Execute(context.Background(), product.CreateProductInput{
		Name:  "Mountain Bike",
		Price: decimal.NewFromInt(500),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Name != "Mountain Bike" {
		t.Errorf("expected name Mountain Bike, got %s", created.Name)
	}
	if _, ok := repo.products[created.ID]; !ok {
		t.Error("expected product to be persisted")
	}
}

func TestCreateProductUseCase_InvalidInput(t *testing.T) {
	uc := product.NewCreateProductUseCase(newMockProductRepository())

	if _, err := uc.Execute(context.Background(), product.CreateProductInput{Name: "", Price: decimal.NewFromInt(10)}); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := uc.Execute(context.Background(), product.CreateProductInput{Name: "Bike", Price: decimal.NewFromInt(-1)}); err == nil {
		t.Error("expected error for negative price")
	}
}

func TestUpdateProductUseCase_Success(t *testing.T) {
	repo := newMockProductRepository()
	uc := product.NewUpdateProductUseCase(repo)

	existing, _ := entity.NewProduct("Old Name", decimal.NewFromInt(100))
	repo.products[existing.ID] = existing

	outcome, updated, err := uc.Execute(context.Background(), product.UpdateProductInput{
		ProductID: existing.ID,
		Name:      "New Name",
		Price:     decimal.NewFromInt(150),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outcome != product.UpdateSuccess {
		t.Fatalf("expected success outcome, got %d", outcome)
	}
	if updated.Name != "New Name" {
		t.Errorf("expected New Name, got %s", updated.Name)
	}
	if !updated.Price.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected price 150, got %s", updated.Price)
	}
}

func TestUpdateProductUseCase_NotFound(t *testing.T) {
	uc := product.NewUpdateProductUseCase(newMockProductRepository())

	outcome, _, err := uc.Execute(context.Background(), product.UpdateProductInput{
		ProductID: uuid.New(),
		Name:      "Name",
		Price:     decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != product.UpdateNotFound {
		t.Fatalf("expected not found outcome, got %d", outcome)
	}
}

func TestUpdateProductUseCase_Conflict(t *testing.T) {
	repo := newMockProductRepository()
	repo.updateErr = apperror.ErrConcurrencyConflict
	uc := product.NewUpdateProductUseCase(repo)

	existing, _ := entity.NewProduct("Name", decimal.NewFromInt(100))
	repo.products[existing.ID] = existing

	outcome, _, err := uc.Execute(context.Background(), product.UpdateProductInput{
		ProductID: existing.ID,
		Name:      "Other",
		Price:     decimal.NewFromInt(120),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != product.UpdateConflict {
		t.Fatalf("expected conflict outcome, got %d", outcome)
	}
}

func TestDeleteProductUseCase(t *testing.T) {
	repo := newMockProductRepository()
	uc := product.NewDeleteProductUseCase(repo)

	existing, _ := entity.NewProduct("Name", decimal.NewFromInt(100))
	repo.products[existing.ID] = existing

	deleted, err := uc.Execute(context.Background(), existing.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("expected deletion to succeed")
	}

	deleted, err = uc.Execute(context.Background(), existing.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Error("expected false for a missing product")
	}
}

func TestGetProductUseCase_NotFound(t *testing.T) {
	uc := product.NewGetProductUseCase(newMockProductRepository())

	_, err := uc.Execute(context.Background(), uuid.New())
	if !apperror.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

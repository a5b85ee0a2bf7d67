package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks de repositorios
// ──────────────────────────────────────────────────────────────────────────────

type mockWarehouseRepo struct{ mock.Mock }

func (m *mockWarehouseRepo) List(ctx context.Context) ([]*entity.Warehouse, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Warehouse)
	return list, args.Error(1)
}

func (m *mockWarehouseRepo) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(*entity.Warehouse)
	return w, args.Error(1)
}

func (m *mockWarehouseRepo) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockWarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) (*entity.Warehouse, error) {
	args := m.Called(ctx, w)
	out, _ := args.Get(0).(*entity.Warehouse)
	return out, args.Error(1)
}

func (m *mockWarehouseRepo) Update(ctx context.Context, w *entity.Warehouse) (*entity.Warehouse, error) {
	args := m.Called(ctx, w)
	out, _ := args.Get(0).(*entity.Warehouse)
	return out, args.Error(1)
}

func (m *mockWarehouseRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.InventoryItem)
	return list, args.Error(1)
}

func (m *mockItemRepo) ListByWarehouse(ctx context.Context, warehouseID string) ([]*entity.InventoryItem, error) {
	args := m.Called(ctx, warehouseID)
	list, _ := args.Get(0).([]*entity.InventoryItem)
	return list, args.Error(1)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	args := m.Called(ctx, id)
	it, _ := args.Get(0).(*entity.InventoryItem)
	return it, args.Error(1)
}

func (m *mockItemRepo) Create(ctx context.Context, it *entity.InventoryItem) (*entity.InventoryItem, error) {
	args := m.Called(ctx, it)
	out, _ := args.Get(0).(*entity.InventoryItem)
	return out, args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, it *entity.InventoryItem) (*entity.InventoryItem, error) {
	args := m.Called(ctx, it)
	out, _ := args.Get(0).(*entity.InventoryItem)
	return out, args.Error(1)
}

func (m *mockItemRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockItemRepo) DeleteByWarehouse(ctx context.Context, warehouseID string) (int64, error) {
	args := m.Called(ctx, warehouseID)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

// fakeTxRunner ejecuta fn con los mismos mocks; registra si la "transacción" se confirmó.
type fakeTxRunner struct {
	warehouses *mockWarehouseRepo
	items      *mockItemRepo
	committed  bool
	calls      int
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.WarehouseRepository, repository.InventoryItemRepository) error) error {
	f.calls++
	if err := fn(f.warehouses, f.items); err != nil {
		return err
	}
	f.committed = true
	return nil
}

package http_test

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

// memStore store en memoria con las mismas garantías que el repositorio PostgreSQL:
// ids generados por el store, (nil, nil) si no existe y orden de inserción en los listados.
// Los ids que llegan de c.Params solo se usan como clave de búsqueda, nunca se guardan.
type memStore struct {
	mu         sync.Mutex
	seq        int
	warehouses map[string]*storedWarehouse
	items      map[string]*storedItem
	failNext   error
}

type storedWarehouse struct {
	seq int
	w   entity.Warehouse
}

type storedItem struct {
	seq int
	it  entity.InventoryItem
}

func newMemStore() *memStore {
	return &memStore{
		warehouses: map[string]*storedWarehouse{},
		items:      map[string]*storedItem{},
	}
}

// fail hace que la próxima operación del store devuelva err.
func (s *memStore) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = err
}

func (s *memStore) takeFailure() error {
	err := s.failNext
	s.failNext = nil
	return err
}

type memWarehouseRepo struct{ s *memStore }

var _ repository.WarehouseRepository = (*memWarehouseRepo)(nil)

func (r *memWarehouseRepo) List(_ context.Context) ([]*entity.Warehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return nil, err
	}
	rows := make([]*storedWarehouse, 0, len(r.s.warehouses))
	for _, sw := range r.s.warehouses {
		rows = append(rows, sw)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
	out := make([]*entity.Warehouse, 0, len(rows))
	for _, sw := range rows {
		w := sw.w
		out = append(out, &w)
	}
	return out, nil
}

func (r *memWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return nil, err
	}
	sw, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	w := sw.w
	return &w, nil
}

func (r *memWarehouseRepo) Exists(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return false, err
	}
	_, ok := r.s.warehouses[id]
	return ok, nil
}

func (r *memWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) (*entity.Warehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return nil, err
	}
	r.s.seq++
	row := *w
	row.ID = uuid.NewString()
	r.s.warehouses[row.ID] = &storedWarehouse{seq: r.s.seq, w: row}
	out := row
	return &out, nil
}

func (r *memWarehouseRepo) Update(_ context.Context, w *entity.Warehouse) (*entity.Warehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return nil, err
	}
	sw, ok := r.s.warehouses[w.ID]
	if !ok {
		return nil, nil
	}
	id := sw.w.ID
	sw.w = *w
	sw.w.ID = id
	out := sw.w
	return &out, nil
}

func (r *memWarehouseRepo) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return false, err
	}
	if _, ok := r.s.warehouses[id]; !ok {
		return false, nil
	}
	delete(r.s.warehouses, id)
	return true, nil
}

type memItemRepo struct{ s *memStore }

var _ repository.InventoryItemRepository = (*memItemRepo)(nil)

func (r *memItemRepo) sorted(keep func(*storedItem) bool) []*entity.InventoryItem {
	rows := make([]*storedItem, 0, len(r.s.items))
	for _, si := range r.s.items {
		if keep(si) {
			rows = append(rows, si)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
	out := make([]*entity.InventoryItem, 0, len(rows))
	for _, si := range rows {
		out = append(out, r.joined(si.it))
	}
	return out
}

func (r *memItemRepo) joined(it entity.InventoryItem) *entity.InventoryItem {
	if sw, ok := r.s.warehouses[it.WarehouseID]; ok {
		it.WarehouseName = sw.w.Name
	}
	return &it
}

func (r *memItemRepo) List(_ context.Context) ([]*entity.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return nil, err
	}
	return r.sorted(func(*storedItem) bool { return true }), nil
}

func (r *memItemRepo) ListByWarehouse(_ context.Context, warehouseID string) ([]*entity.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return nil, err
	}
	return r.sorted(func(si *storedItem) bool { return si.it.WarehouseID == warehouseID }), nil
}

func (r *memItemRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return nil, err
	}
	si, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return r.joined(si.it), nil
}

func (r *memItemRepo) Create(_ context.Context, it *entity.InventoryItem) (*entity.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return nil, err
	}
	r.s.seq++
	row := *it
	row.ID = uuid.NewString()
	row.WarehouseName = ""
	r.s.items[row.ID] = &storedItem{seq: r.s.seq, it: row}
	out := row
	return &out, nil
}

func (r *memItemRepo) Update(_ context.Context, it *entity.InventoryItem) (*entity.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return nil, err
	}
	si, ok := r.s.items[it.ID]
	if !ok {
		return nil, nil
	}
	id := si.it.ID
	si.it = *it
	si.it.ID = id
	si.it.WarehouseName = ""
	out := si.it
	return &out, nil
}

func (r *memItemRepo) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return false, err
	}
	if _, ok := r.s.items[id]; !ok {
		return false, nil
	}
	delete(r.s.items, id)
	return true, nil
}

func (r *memItemRepo) DeleteByWarehouse(_ context.Context, warehouseID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.takeFailure(); err != nil {
		return 0, err
	}
	var n int64
	for id, si := range r.s.items {
		if si.it.WarehouseID == warehouseID {
			delete(r.s.items, id)
			n++
		}
	}
	return n, nil
}

// memTxRunner restaura el estado previo si fn falla.
type memTxRunner struct {
	s          *memStore
	warehouses *memWarehouseRepo
	items      *memItemRepo
}

func (r *memTxRunner) Run(_ context.Context, fn func(repository.WarehouseRepository, repository.InventoryItemRepository) error) error {
	r.s.mu.Lock()
	warehouses := make(map[string]*storedWarehouse, len(r.s.warehouses))
	for k, v := range r.s.warehouses {
		cp := *v
		warehouses[k] = &cp
	}
	items := make(map[string]*storedItem, len(r.s.items))
	for k, v := range r.s.items {
		cp := *v
		items[k] = &cp
	}
	r.s.mu.Unlock()

	if err := fn(r.warehouses, r.items); err != nil {
		r.s.mu.Lock()
		r.s.warehouses = warehouses
		r.s.items = items
		r.s.mu.Unlock()
		return err
	}
	return nil
}

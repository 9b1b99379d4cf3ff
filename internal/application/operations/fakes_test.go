package operations_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/operations"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de repositorio. Respetan los contratos de
// los adaptadores reales: GetForUpdate de stock devuelve un stub en cero si la
// fila no existe (nunca nil), y el libro de movimientos es append-only.
// ──────────────────────────────────────────────────────────────────────────────

type fakeOpRepo struct {
	mu  sync.Mutex
	ops map[string]*entity.Operation
}

func newFakeOpRepo() *fakeOpRepo {
	return &fakeOpRepo{ops: map[string]*entity.Operation{}}
}

func (r *fakeOpRepo) Create(op *entity.Operation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *op
	r.ops[op.ID] = &cp
	return nil
}

func (r *fakeOpRepo) GetByID(id string) (*entity.Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	op, ok := r.ops[id]
	if !ok {
		return nil, nil
	}
	cp := *op
	return &cp, nil
}

func (r *fakeOpRepo) GetByIDForUpdate(id string) (*entity.Operation, error) {
	return r.GetByID(id)
}

func (r *fakeOpRepo) UpdateStatus(id, status string, completedDate *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	op, ok := r.ops[id]
	if !ok {
		return fmt.Errorf("operación %s no existe", id)
	}
	op.Status = status
	if completedDate != nil {
		op.CompletedDate = completedDate
	}
	return nil
}

func (r *fakeOpRepo) List(filter repository.OperationFilter, limit, offset int) ([]*entity.Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Operation
	for _, op := range r.ops {
		if filter.Type != "" && op.Type != filter.Type {
			continue
		}
		if filter.Status != "" && op.Status != filter.Status {
			continue
		}
		if filter.WarehouseID != "" && op.WarehouseID != filter.WarehouseID {
			continue
		}
		cp := *op
		out = append(out, &cp)
	}
	return out, nil
}

type fakeLineRepo struct {
	lines []*entity.OperationLine
}

func (r *fakeLineRepo) Create(line *entity.OperationLine) error {
	cp := *line
	r.lines = append(r.lines, &cp)
	return nil
}

func (r *fakeLineRepo) ListByOperation(operationID string) ([]*entity.OperationLine, error) {
	var out []*entity.OperationLine
	for _, l := range r.lines {
		if l.OperationID == operationID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeStockRepo struct {
	mu     sync.Mutex
	stocks map[string]*entity.Stock // clave productID|warehouseID
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{stocks: map[string]*entity.Stock{}}
}

func stockKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

func (r *fakeStockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	return r.GetForUpdate(productID, warehouseID)
}

func (r *fakeStockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stocks[stockKey(productID, warehouseID)]; ok {
		cp := *s
		return &cp, nil
	}
	// Fila inexistente: stub en cero, igual que el adaptador de PostgreSQL.
	return &entity.Stock{ProductID: productID, WarehouseID: warehouseID}, nil
}

func (r *fakeStockRepo) Upsert(stock *entity.Stock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *stock
	r.stocks[stockKey(stock.ProductID, stock.WarehouseID)] = &cp
	return nil
}

func (r *fakeStockRepo) ListByProduct(productID string) ([]*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Stock
	for _, s := range r.stocks {
		if s.ProductID == productID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Stock
	for _, s := range r.stocks {
		if s.WarehouseID == warehouseID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

// quantity devuelve la cantidad actual (cero si la fila no existe).
func (r *fakeStockRepo) quantity(productID, warehouseID string) decimal.Decimal {
	s, _ := r.Get(productID, warehouseID)
	return s.Quantity
}

// exists indica si la fila de stock fue creada.
func (r *fakeStockRepo) exists(productID, warehouseID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.stocks[stockKey(productID, warehouseID)]
	return ok
}

type fakeMovementRepo struct {
	mu        sync.Mutex
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByOperation(operationID string) ([]*entity.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.OperationID == operationID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.WarehouseID == warehouseID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.movements)
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) List(categoryID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{}}
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	r.warehouses[w.ID] = w
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	return w, nil
}

func (r *fakeWarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) {
	for _, w := range r.warehouses {
		if w.Code == code {
			return w, nil
		}
	}
	return nil, nil
}

func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	r.warehouses[w.ID] = w
	return nil
}

func (r *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		out = append(out, w)
	}
	return out, nil
}

// fakeTxRunner ejecuta fn directamente sobre los fakes, sin transacción real.
// failures simula fallos de serialización: fn se reintenta hasta agotar el
// presupuesto, como hace el TxRunner de PostgreSQL, y al agotarlo devuelve
// domain.ErrTransactionConflict.
type fakeTxRunner struct {
	opRepo    *fakeOpRepo
	lineRepo  *fakeLineRepo
	stockRepo *fakeStockRepo
	movRepo   *fakeMovementRepo

	failures   int // intentos que fallan antes de dejar pasar fn
	maxRetries int // 0 = sin límite simulado
	attempts   int
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	opRepo repository.OperationRepository,
	lineRepo repository.OperationLineRepository,
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	for {
		tr.attempts++
		if tr.failures > 0 {
			tr.failures--
			if tr.maxRetries > 0 && tr.attempts >= tr.maxRetries {
				return fmt.Errorf("%w: serialización fallida", domain.ErrTransactionConflict)
			}
			continue
		}
		return fn(tr.opRepo, tr.lineRepo, tr.stockRepo, tr.movRepo)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario de pruebas
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID      = "user-1"
	testWarehouseA  = "wh-a"
	testWarehouseB  = "wh-b"
	testProductID   = "prod-1"
	testProductID2  = "prod-2"
	testCategoryID  = "cat-1"
	testProductSKU  = "SKU-001"
	testProductSKU2 = "SKU-002"
)

type scenario struct {
	uc        *operations.OperationUseCase
	txRunner  *fakeTxRunner
	opRepo    *fakeOpRepo
	lineRepo  *fakeLineRepo
	stockRepo *fakeStockRepo
	movRepo   *fakeMovementRepo
	products  *fakeProductRepo
}

func newScenario() *scenario {
	opRepo := newFakeOpRepo()
	lineRepo := &fakeLineRepo{}
	stockRepo := newFakeStockRepo()
	movRepo := &fakeMovementRepo{}
	products := newFakeProductRepo()
	warehouses := newFakeWarehouseRepo()

	now := time.Now()
	warehouses.Create(&entity.Warehouse{ID: testWarehouseA, Name: "Bodega Central", Code: "BC", IsActive: true, CreatedAt: now})
	warehouses.Create(&entity.Warehouse{ID: testWarehouseB, Name: "Bodega Norte", Code: "BN", IsActive: true, CreatedAt: now})
	products.Create(&entity.Product{ID: testProductID, SKU: testProductSKU, Name: "Tornillo 3mm", CategoryID: testCategoryID, UnitOfMeasure: "unit", IsActive: true, CreatedAt: now})
	products.Create(&entity.Product{ID: testProductID2, SKU: testProductSKU2, Name: "Tuerca 3mm", CategoryID: testCategoryID, UnitOfMeasure: "unit", IsActive: true, CreatedAt: now})

	txRunner := &fakeTxRunner{opRepo: opRepo, lineRepo: lineRepo, stockRepo: stockRepo, movRepo: movRepo}
	uc := operations.NewOperationUseCase(txRunner, opRepo, lineRepo, products, warehouses)
	return &scenario{uc: uc, txRunner: txRunner, opRepo: opRepo, lineRepo: lineRepo, stockRepo: stockRepo, movRepo: movRepo, products: products}
}

// seedOperation inserta una operación lista para procesar, saltando el ciclo draft.
func (s *scenario) seedOperation(id, opType, status, warehouseID, destWarehouseID string) *entity.Operation {
	op := &entity.Operation{
		ID:                     id,
		Type:                   opType,
		Reference:              "REF-" + id,
		Status:                 status,
		WarehouseID:            warehouseID,
		DestinationWarehouseID: destWarehouseID,
		CreatedBy:              testUserID,
		CreatedAt:              time.Now(),
	}
	s.opRepo.Create(op)
	return op
}

// seedLine agrega una línea directa al fake.
func (s *scenario) seedLine(operationID, productID string, planned decimal.Decimal, actual *decimal.Decimal) {
	s.lineRepo.Create(&entity.OperationLine{
		ID:              fmt.Sprintf("line-%d", len(s.lineRepo.lines)+1),
		OperationID:     operationID,
		ProductID:       productID,
		PlannedQuantity: planned,
		ActualQuantity:  actual,
		CreatedAt:       time.Now(),
	})
}

// seedStock fija el stock inicial de (producto, bodega).
func (s *scenario) seedStock(productID, warehouseID string, qty decimal.Decimal) {
	s.stockRepo.Upsert(&entity.Stock{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    qty,
		UpdatedAt:   time.Now(),
	})
}

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func dp(v string) *decimal.Decimal {
	x := decimal.RequireFromString(v)
	return &x
}

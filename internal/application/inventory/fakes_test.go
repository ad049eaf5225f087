package inventory_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
	"github.com/gastrostock/gastrostock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los repositorios y del TxRunner
// ──────────────────────────────────────────────────────────────────────────────

// fakeProductRepo implementa las dos particiones contra un mapa en memoria.
// Devuelve copias para imitar el comportamiento de filas: mutar el resultado
// de una lectura no toca el almacén hasta SetStock/Update.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) seed(p *entity.Product) {
	cp := *p
	r.products[p.ID] = &cp
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) SetStock(_ context.Context, id string, stock decimal.Decimal, status entity.Status) error {
	p, ok := r.products[id]
	if !ok {
		return nil
	}
	p.Stock = stock
	p.Status = status
	p.UpdatedAt = time.Now()
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, activeOnly bool) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if activeOnly && !p.Active {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListByLocation(_ context.Context, locationID string, activeOnly bool) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.LocationID == nil || *p.LocationID != locationID {
			continue
		}
		if activeOnly && !p.Active {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) SoftDelete(_ context.Context, id string) error {
	if p, ok := r.products[id]; ok {
		p.Active = false
	}
	return nil
}

func (r *fakeProductRepo) SoftDeleteByLocation(_ context.Context, locationID string) error {
	for _, p := range r.products {
		if p.LocationID != nil && *p.LocationID == locationID {
			p.Active = false
		}
	}
	return nil
}

func (r *fakeProductRepo) snapshot() map[string]entity.Product {
	snap := make(map[string]entity.Product, len(r.products))
	for id, p := range r.products {
		snap[id] = *p
	}
	return snap
}

func (r *fakeProductRepo) restore(snap map[string]entity.Product) {
	r.products = make(map[string]*entity.Product, len(snap))
	for id, p := range snap {
		cp := p
		r.products[id] = &cp
	}
}

// fakeMovementRepo historial append-only en memoria.
type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListByProduct(_ context.Context, productID, partition string, _ int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if m.ProductID == productID && m.Partition == partition {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByLocation(_ context.Context, locationID string, _ int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if m.LocationID != nil && *m.LocationID == locationID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByType(_ context.Context, movementType string, _ int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if m.Type == movementType {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) Recent(_ context.Context, since time.Time) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if !m.CreatedAt.Before(since) {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeLocationRepo negocios en memoria.
type fakeLocationRepo struct {
	locations map[string]*entity.Location
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locations: make(map[string]*entity.Location)}
}

func (r *fakeLocationRepo) seed(l *entity.Location) {
	cp := *l
	r.locations[l.ID] = &cp
}

func (r *fakeLocationRepo) List(_ context.Context, activeOnly bool) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.locations {
		if activeOnly && !l.Active {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeLocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	l, ok := r.locations[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLocationRepo) Create(_ context.Context, l *entity.Location) error {
	cp := *l
	r.locations[l.ID] = &cp
	return nil
}

func (r *fakeLocationRepo) Update(_ context.Context, l *entity.Location) error {
	cp := *l
	r.locations[l.ID] = &cp
	return nil
}

func (r *fakeLocationRepo) SoftDelete(_ context.Context, id string) error {
	if l, ok := r.locations[id]; ok {
		l.Active = false
	}
	return nil
}

// fakeTxRunner ejecuta el callback contra los repos en memoria y restaura el
// estado previo si devuelve error, imitando el rollback de una transacción.
type fakeTxRunner struct {
	general  *fakeProductRepo
	detailed *fakeProductRepo
	mov      *fakeMovementRepo
	loc      *fakeLocationRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	generalRepo repository.GeneralProductRepository,
	detailedRepo repository.DetailedProductRepository,
	movRepo repository.MovementRepository,
	locRepo repository.LocationRepository,
) error) error {
	generalSnap := tx.general.snapshot()
	detailedSnap := tx.detailed.snapshot()
	movSnap := len(tx.mov.movements)

	err := fn(tx.general, tx.detailed, tx.mov, tx.loc)
	if err != nil {
		tx.general.restore(generalSnap)
		tx.detailed.restore(detailedSnap)
		tx.mov.movements = tx.mov.movements[:movSnap]
	}
	return err
}

// fakeNotifier registra las notificaciones publicadas.
type fakeNotifier struct {
	lowStock []string // IDs de producto notificados
	events   []string // títulos de eventos publicados
}

func (n *fakeNotifier) LowStock(_ context.Context, p *entity.Product) {
	n.lowStock = append(n.lowStock, p.ID)
}

func (n *fakeNotifier) Event(_ context.Context, title, _, _ string) {
	n.events = append(n.events, title)
}

// ──────────────────────────────────────────────────────────────────────────────
// Constructores de escenario
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type engineFixture struct {
	general  *fakeProductRepo
	detailed *fakeProductRepo
	mov      *fakeMovementRepo
	loc      *fakeLocationRepo
	tx       *fakeTxRunner
	notifier *fakeNotifier
}

func newEngineFixture() *engineFixture {
	f := &engineFixture{
		general:  newFakeProductRepo(),
		detailed: newFakeProductRepo(),
		mov:      &fakeMovementRepo{},
		loc:      newFakeLocationRepo(),
		notifier: &fakeNotifier{},
	}
	f.tx = &fakeTxRunner{general: f.general, detailed: f.detailed, mov: f.mov, loc: f.loc}
	return f
}

func (f *engineFixture) seedGeneral(id, name, stock, minStock, price string) {
	f.general.seed(&entity.Product{
		ID:       id,
		Name:     name,
		Unit:     "kg",
		Stock:    dec(stock),
		MinStock: dec(minStock),
		Price:    dec(price),
		Status:   entity.DeriveStatus(dec(stock), dec(minStock)),
		Active:   true,
	})
}

func (f *engineFixture) seedLocation(id, name string) {
	f.loc.seed(&entity.Location{ID: id, Name: name, Active: true})
}

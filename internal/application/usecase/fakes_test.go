package usecase_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
	"github.com/gastrostock/gastrostock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria
// ──────────────────────────────────────────────────────────────────────────────

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
	if p, ok := r.products[id]; ok {
		p.Stock = stock
		p.Status = status
		p.UpdatedAt = time.Now()
	}
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

type fakeMovementRepo struct{}

func (fakeMovementRepo) Create(context.Context, *entity.Movement) error { return nil }
func (fakeMovementRepo) GetByID(context.Context, string) (*entity.Movement, error) {
	return nil, nil
}
func (fakeMovementRepo) ListByProduct(context.Context, string, string, int) ([]*entity.Movement, error) {
	return nil, nil
}
func (fakeMovementRepo) ListByLocation(context.Context, string, int) ([]*entity.Movement, error) {
	return nil, nil
}
func (fakeMovementRepo) ListByType(context.Context, string, int) ([]*entity.Movement, error) {
	return nil, nil
}
func (fakeMovementRepo) Recent(context.Context, time.Time) ([]*entity.Movement, error) {
	return nil, nil
}

// fakeTxRunner ejecuta el callback directamente contra los repos en memoria.
type fakeTxRunner struct {
	general  *fakeProductRepo
	detailed *fakeProductRepo
	loc      *fakeLocationRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	generalRepo repository.GeneralProductRepository,
	detailedRepo repository.DetailedProductRepository,
	movRepo repository.MovementRepository,
	locRepo repository.LocationRepository,
) error) error {
	return fn(tx.general, tx.detailed, fakeMovementRepo{}, tx.loc)
}

type fakeNotifier struct {
	events []string
}

func (n *fakeNotifier) LowStock(context.Context, *entity.Product) {}

func (n *fakeNotifier) Event(_ context.Context, title, _, _ string) {
	n.events = append(n.events, title)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

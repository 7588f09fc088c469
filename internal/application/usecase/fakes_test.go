package usecase_test

import (
	"context"
	"errors"

	"github.com/jhoicas/ordena-api/internal/domain/access"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
	"github.com/jhoicas/ordena-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repos en memoria para los tests de casos de uso. Replican el contrato de los
// repos reales: List y Delete aplican el scope igual que el SQL con el filtro
// embebido.
// ──────────────────────────────────────────────────────────────────────────────

var errBoom = errors.New("boom")

func scopeHasLocation(scope access.Scope, locationID string) bool {
	if scope.LocationIDs == nil {
		return true
	}
	for _, id := range scope.LocationIDs {
		if id == locationID {
			return true
		}
	}
	return false
}

type fakeCategoryRepo struct {
	items map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: map[string]*entity.Category{}}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	if c, ok := f.items[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) List(_ context.Context, scope access.Scope) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.items {
		if scope.CompanyID != "" && c.CompanyID != scope.CompanyID {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string, scope access.Scope) (bool, error) {
	c, ok := f.items[id]
	if !ok {
		return false, nil
	}
	if scope.CompanyID != "" && c.CompanyID != scope.CompanyID {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

type fakeLocationRepo struct {
	items map[string]*entity.Location
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{items: map[string]*entity.Location{}}
}

func (f *fakeLocationRepo) Create(_ context.Context, l *entity.Location) error {
	cp := *l
	f.items[l.ID] = &cp
	return nil
}

func (f *fakeLocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	if l, ok := f.items[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeLocationRepo) Update(_ context.Context, l *entity.Location) error {
	cp := *l
	f.items[l.ID] = &cp
	return nil
}

func (f *fakeLocationRepo) List(_ context.Context, scope access.Scope) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range f.items {
		if scope.CompanyID != "" && l.CompanyID != scope.CompanyID {
			continue
		}
		// Para Location el filtro de locations restringe el propio id.
		if !scopeHasLocation(scope, l.ID) {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeLocationRepo) Delete(_ context.Context, id string, scope access.Scope) (bool, error) {
	l, ok := f.items[id]
	if !ok {
		return false, nil
	}
	if scope.CompanyID != "" && l.CompanyID != scope.CompanyID {
		return false, nil
	}
	if !scopeHasLocation(scope, l.ID) {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

type fakeSupplierRepo struct {
	items map[string]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{items: map[string]*entity.Supplier{}}
}

func (f *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	cp := *s
	f.items[s.ID] = &cp
	return nil
}

func (f *fakeSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	if s, ok := f.items[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	cp := *s
	f.items[s.ID] = &cp
	return nil
}

func (f *fakeSupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range f.items {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

type fakeProductRepo struct {
	items map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if p, ok := f.items[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByIDs(_ context.Context, ids []string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := f.items[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

// fakeOrderRepo necesita conocer las locations para aplicar el scope por
// tenant, igual que el JOIN del repo real.
type fakeOrderRepo struct {
	items     map[string]*entity.Order
	locations *fakeLocationRepo
}

func newFakeOrderRepo(locations *fakeLocationRepo) *fakeOrderRepo {
	return &fakeOrderRepo{items: map[string]*entity.Order{}, locations: locations}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	cp := *o
	f.items[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	if o, ok := f.items[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, o *entity.Order) error {
	cp := *o
	f.items[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) inScope(o *entity.Order, scope access.Scope) bool {
	loc := f.locations.items[o.LocationID]
	if loc == nil {
		return false
	}
	if scope.CompanyID != "" && loc.CompanyID != scope.CompanyID {
		return false
	}
	return scopeHasLocation(scope, o.LocationID)
}

func (f *fakeOrderRepo) List(_ context.Context, scope access.Scope) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.items {
		if !f.inScope(o, scope) {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id string, scope access.Scope) (bool, error) {
	o, ok := f.items[id]
	if !ok || !f.inScope(o, scope) {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

// fakeTemplateRepo puede fallar a partir de la N-ésima creación para probar
// la atomicidad del lote.
type fakeTemplateRepo struct {
	items     map[string]*entity.Template
	failAfter int // 0 = nunca falla
	creates   int
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{items: map[string]*entity.Template{}}
}

func (f *fakeTemplateRepo) Create(_ context.Context, tpl *entity.Template) error {
	f.creates++
	if f.failAfter > 0 && f.creates > f.failAfter {
		return errBoom
	}
	cp := *tpl
	f.items[tpl.ID] = &cp
	return nil
}

func (f *fakeTemplateRepo) GetByID(_ context.Context, id string) (*entity.Template, error) {
	if tpl, ok := f.items[id]; ok {
		cp := *tpl
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeTemplateRepo) Update(_ context.Context, tpl *entity.Template) error {
	cp := *tpl
	f.items[tpl.ID] = &cp
	return nil
}

func (f *fakeTemplateRepo) List(_ context.Context, scope access.Scope) ([]*entity.Template, error) {
	var out []*entity.Template
	for _, tpl := range f.items {
		if scope.CompanyID != "" && tpl.CompanyID != scope.CompanyID {
			continue
		}
		if !scopeHasLocation(scope, tpl.LocationID) {
			continue
		}
		cp := *tpl
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeTemplateRepo) Delete(_ context.Context, id string, scope access.Scope) (bool, error) {
	tpl, ok := f.items[id]
	if !ok {
		return false, nil
	}
	if scope.CompanyID != "" && tpl.CompanyID != scope.CompanyID {
		return false, nil
	}
	if !scopeHasLocation(scope, tpl.LocationID) {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

type fakeUserRepo struct {
	items map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	f.items[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := f.items[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	f.items[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, scope access.Scope) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.items {
		if scope.CompanyID != "" && u.CompanyID != scope.CompanyID {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string, scope access.Scope) (bool, error) {
	u, ok := f.items[id]
	if !ok {
		return false, nil
	}
	if scope.CompanyID != "" && u.CompanyID != scope.CompanyID {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

// fakeTxRunner emula la transacción: snapshot antes de fn, restore si falla.
type fakeTxRunner struct {
	templates *fakeTemplateRepo
	orders    *fakeOrderRepo
}

func (r *fakeTxRunner) RunTemplates(ctx context.Context, fn func(repository.TemplateRepository) error) error {
	snapshot := make(map[string]*entity.Template, len(r.templates.items))
	for k, v := range r.templates.items {
		cp := *v
		snapshot[k] = &cp
	}
	if err := fn(r.templates); err != nil {
		r.templates.items = snapshot
		return err
	}
	return nil
}

func (r *fakeTxRunner) RunOrders(ctx context.Context, fn func(repository.OrderRepository) error) error {
	snapshot := make(map[string]*entity.Order, len(r.orders.items))
	for k, v := range r.orders.items {
		cp := *v
		snapshot[k] = &cp
	}
	if err := fn(r.orders); err != nil {
		r.orders.items = snapshot
		return err
	}
	return nil
}

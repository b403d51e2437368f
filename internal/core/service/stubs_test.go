package service

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users map[string]*domain.User // keyed by id
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, user.Username) {
			return nil, domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context, limit int) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, p domain.UserPatch) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = *p.ProfilePicture
	}
	return cloneUser(u), nil
}

type stubCategoryRepo struct {
	byID map[string]*domain.Category
}

func newStubCategoryRepo(cats ...*domain.Category) *stubCategoryRepo {
	r := &stubCategoryRepo{byID: make(map[string]*domain.Category)}
	for _, c := range cats {
		r.byID[c.ID] = c
	}
	return r
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*domain.Category, error) {
	for _, c := range r.byID {
		if strings.EqualFold(c.Name, name) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) FindByNameFragment(_ context.Context, fragment string) (*domain.Category, error) {
	for _, c := range r.byID {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(fragment)) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, id string, p domain.CategoryPatch, at time.Time) (*domain.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	c.UpdatedAt = &at
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubProductRepo struct {
	mu             sync.Mutex
	byID           map[string]*domain.Product
	lastFilter     domain.ProductFilter
	failDecrement  string // product id whose DecrementStock errors
	raceDecrement  string // product id whose guard never matches
	incrementCalls int
	// beforeIncrement runs ahead of every IncrementStock, outside the lock.
	beforeIncrement func()
}

func newStubProductRepo(products ...*domain.Product) *stubProductRepo {
	r := &stubProductRepo{byID: make(map[string]*domain.Product)}
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return r
}

func (r *stubProductRepo) stock(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[id].Stock
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) FindActiveByID(ctx context.Context, id string) (*domain.Product, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *stubProductRepo) NameTaken(_ context.Context, name, categoryID, excludeID string) (bool, error) {
	for _, p := range r.byID {
		if p.ID != excludeID && p.CategoryID == categoryID && strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProductRepo) List(_ context.Context, f domain.ProductFilter) ([]*domain.Product, error) {
	r.lastFilter = f
	var out []*domain.Product
	for _, p := range r.byID {
		if f.ActiveOnly && !p.IsActive {
			continue
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *stubProductRepo) ListAll(_ context.Context, limit int) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, id string, p domain.ProductPatch, at time.Time) (*domain.Product, error) {
	cur, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.Description != nil {
		cur.Description = *p.Description
	}
	if p.Price != nil {
		cur.Price = *p.Price
	}
	if p.Stock != nil {
		cur.Stock = *p.Stock
	}
	if p.IsActive != nil {
		cur.IsActive = *p.IsActive
	}
	if p.CategoryID != nil {
		cur.CategoryID = *p.CategoryID
	}
	cur.UpdatedAt = &at
	clone := *cur
	return &clone, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubProductRepo) DecrementStock(_ context.Context, id string, qty int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id == r.failDecrement {
		return false, errStubStore
	}
	if id == r.raceDecrement {
		return false, nil
	}
	p, ok := r.byID[id]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

func (r *stubProductRepo) IncrementStock(_ context.Context, id string, qty int) error {
	if hook := r.beforeIncrement; hook != nil {
		hook()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.incrementCalls++
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Stock += qty
	return nil
}

type stubOrderRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.Order
	createErr error
	// beforeUpdate runs ahead of every UpdateStatus, outside the lock.
	beforeUpdate func()
}

func newStubOrderRepo(orders ...*domain.Order) *stubOrderRepo {
	r := &stubOrderRepo{byID: make(map[string]*domain.Order)}
	for _, o := range orders {
		r.byID[o.ID] = o
	}
	return r
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *o
	r.byID[o.ID] = &clone
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) List(_ context.Context, limit int) ([]*domain.Order, error) {
	return r.ListBetween(context.Background(), time.Time{}, time.Time{}, limit)
}

func (r *stubOrderRepo) ListBetween(_ context.Context, from, to time.Time, limit int) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.byID {
		if !from.IsZero() && o.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && o.CreatedAt.After(to) {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id string, from []domain.OrderStatus, to domain.OrderStatus) (bool, error) {
	if hook := r.beforeUpdate; hook != nil {
		hook()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.byID[id]
	if !ok || !slices.Contains(from, o.Status) {
		return false, nil
	}
	o.Status = to
	return true, nil
}

type stubMovementRepo struct {
	inserted  []domain.StockMovement
	insertErr error
}

func (r *stubMovementRepo) Insert(_ context.Context, m *domain.StockMovement) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, *m)
	return nil
}

func (r *stubMovementRepo) ListByProduct(_ context.Context, productID string, limit int) ([]*domain.StockMovement, error) {
	var out []*domain.StockMovement
	for i := len(r.inserted) - 1; i >= 0 && len(out) < limit; i-- {
		if r.inserted[i].ProductID == productID {
			m := r.inserted[i]
			out = append(out, &m)
		}
	}
	return out, nil
}

type stubPublisher struct {
	published []domain.StockMovement
}

func (p *stubPublisher) Publish(m domain.StockMovement) {
	p.published = append(p.published, m)
}

type stubErr string

func (e stubErr) Error() string { return string(e) }

const errStubStore = stubErr("store unavailable")

var (
	_ ports.UserRepository          = (*stubUserRepo)(nil)
	_ ports.CategoryRepository      = (*stubCategoryRepo)(nil)
	_ ports.ProductRepository       = (*stubProductRepo)(nil)
	_ ports.OrderRepository         = (*stubOrderRepo)(nil)
	_ ports.StockMovementRepository = (*stubMovementRepo)(nil)
	_ ports.StockPublisher          = (*stubPublisher)(nil)
)

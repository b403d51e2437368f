package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

const (
	defaultProductLimit = 25
	maxProductLimit     = 200
	movementListLimit   = 100
)

// textPolicy strips any markup from free text before it is stored.
var textPolicy = bluemonday.StrictPolicy()

func cleanText(s string) string {
	return strings.TrimSpace(textPolicy.Sanitize(s))
}

func cleanPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := cleanText(*s)
	return &v
}

// ── Categories ────────────────────────────────────────────────────────────────

type categoryService struct {
	repo ports.CategoryRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewCategoryService returns a CategoryService implementation.
func NewCategoryService(repo ports.CategoryRepository, log zerolog.Logger) ports.CategoryService {
	return &categoryService{repo: repo, log: log, now: time.Now}
}

func (s *categoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *categoryService) Create(ctx context.Context, in ports.CategoryInput) (*domain.Category, error) {
	name := cleanText(in.Name)
	if name == "" {
		return nil, fmt.Errorf("create category: %w", domain.ErrNameRequired)
	}
	if err := s.ensureNameFree(ctx, name, ""); err != nil {
		return nil, err
	}

	c := &domain.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: cleanText(in.Description),
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info().Str("category_id", c.ID).Str("name", c.Name).Msg("category created")
	return c, nil
}

func (s *categoryService) Update(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error) {
	patch.Name = cleanPtr(patch.Name)
	patch.Description = cleanPtr(patch.Description)
	if patch.Empty() {
		return nil, domain.ErrNoUpdateFields
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, fmt.Errorf("update category: %w", domain.ErrNameRequired)
		}
		if err := s.ensureNameFree(ctx, *patch.Name, id); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, patch, s.now().UTC())
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("category_id", id).Msg("category deleted")
	return nil
}

func (s *categoryService) ensureNameFree(ctx context.Context, name, selfID string) error {
	existing, err := s.repo.FindByName(ctx, name)
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return domain.ErrCategoryExists
	}
	return nil
}

// ── Products ──────────────────────────────────────────────────────────────────

type productService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	movements  ports.StockMovementRepository
	log        zerolog.Logger
	now        func() time.Time
}

// NewProductService returns a ProductService implementation.
func NewProductService(
	products ports.ProductRepository,
	categories ports.CategoryRepository,
	movements ports.StockMovementRepository,
	log zerolog.Logger,
) ports.ProductService {
	return &productService{
		products:   products,
		categories: categories,
		movements:  movements,
		log:        log,
		now:        time.Now,
	}
}

// List normalises paging and resolves a category name filter. An unknown
// category name yields an empty page rather than an error.
func (s *productService) List(ctx context.Context, f domain.ProductFilter) ([]*domain.Product, error) {
	if f.Skip < 0 {
		f.Skip = 0
	}
	switch {
	case f.Limit <= 0:
		f.Limit = defaultProductLimit
	case f.Limit > maxProductLimit:
		f.Limit = maxProductLimit
	}
	f.Search = strings.TrimSpace(f.Search)

	if f.CategoryID == "" && strings.TrimSpace(f.CategoryName) != "" {
		c, err := s.categories.FindByNameFragment(ctx, strings.TrimSpace(f.CategoryName))
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return []*domain.Product{}, nil
		}
		if err != nil {
			return nil, err
		}
		f.CategoryID = c.ID
	}
	f.CategoryName = ""

	return s.products.List(ctx, f)
}

func (s *productService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *productService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	p := &domain.Product{
		ID:          uuid.NewString(),
		Name:        cleanText(in.Name),
		Description: cleanText(in.Description),
		Price:       in.Price,
		Stock:       in.Stock,
		IsActive:    in.IsActive,
		CategoryID:  in.CategoryID,
		CreatedAt:   s.now().UTC(),
	}
	if p.Name == "" {
		return nil, fmt.Errorf("create product: %w", domain.ErrNameRequired)
	}
	if err := s.checkCategory(ctx, p.CategoryID); err != nil {
		return nil, err
	}
	if err := s.checkName(ctx, p.Name, p.CategoryID, ""); err != nil {
		return nil, err
	}

	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", p.ID).Str("name", p.Name).Int("stock", p.Stock).Msg("product created")
	return p, nil
}

func (s *productService) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	patch.Name = cleanPtr(patch.Name)
	patch.Description = cleanPtr(patch.Description)
	if patch.Empty() {
		return nil, domain.ErrNoUpdateFields
	}

	current, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name, categoryID := current.Name, current.CategoryID
	if patch.CategoryID != nil {
		if err := s.checkCategory(ctx, *patch.CategoryID); err != nil {
			return nil, err
		}
		categoryID = *patch.CategoryID
	}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, fmt.Errorf("update product: %w", domain.ErrNameRequired)
		}
		name = *patch.Name
	}
	if patch.Name != nil || patch.CategoryID != nil {
		if err := s.checkName(ctx, name, categoryID, id); err != nil {
			return nil, err
		}
	}

	return s.products.Update(ctx, id, patch, s.now().UTC())
}

func (s *productService) SetActive(ctx context.Context, id string, active bool) (*domain.Product, error) {
	return s.products.Update(ctx, id, domain.ProductPatch{IsActive: &active}, s.now().UTC())
}

func (s *productService) Delete(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *productService) Movements(ctx context.Context, productID string, limit int) ([]*domain.StockMovement, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > movementListLimit {
		limit = movementListLimit
	}
	return s.movements.ListByProduct(ctx, productID, limit)
}

func (s *productService) checkCategory(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	_, err := s.categories.FindByID(ctx, id)
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return domain.ErrInvalidCategory
	}
	return err
}

func (s *productService) checkName(ctx context.Context, name, categoryID, excludeID string) error {
	taken, err := s.products.NameTaken(ctx, name, categoryID, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrProductExists
	}
	return nil
}

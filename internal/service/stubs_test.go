package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/abdullah9786/nawab-products/internal/catalog"
	"github.com/abdullah9786/nawab-products/internal/config"
	"github.com/abdullah9786/nawab-products/internal/model"
	"github.com/abdullah9786/nawab-products/internal/pricing"
	"github.com/abdullah9786/nawab-products/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ───────────────────────────────────────────────

type stubProductRepo struct {
	bySlug    map[string]*model.Product
	creates   int
	updates   int
	lastSpec  catalog.Spec
	createErr error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{bySlug: make(map[string]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.creates++
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	for i := range p.Prices {
		p.Prices[i].ID = uuid.New()
		p.Prices[i].ProductID = p.ID
	}
	r.bySlug[p.Slug] = p
	return nil
}

func (r *stubProductRepo) FindBySlug(_ context.Context, slug string, activeOnly bool) (*model.Product, error) {
	p, ok := r.bySlug[slug]
	if !ok || (activeOnly && !p.IsActive) {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	_, ok := r.bySlug[slug]
	return ok, nil
}

func (r *stubProductRepo) List(_ context.Context, spec catalog.Spec) ([]model.Product, int64, error) {
	r.lastSpec = spec
	out := make([]model.Product, 0, len(r.bySlug))
	for _, p := range r.bySlug {
		if spec.ActiveOnly && !p.IsActive {
			continue
		}
		if spec.Category != "" && p.Category != spec.Category {
			continue
		}
		if spec.FeaturedOnly && !p.Featured {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	total := int64(len(out))
	if spec.Limit > 0 {
		if spec.Offset >= len(out) {
			out = out[:0]
		} else {
			out = out[spec.Offset:]
		}
		if len(out) > spec.Limit {
			out = out[:spec.Limit]
		}
	}
	return out, total, nil
}

func (r *stubProductRepo) ListRelated(_ context.Context, category, excludeSlug string, limit int) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.bySlug {
		if p.Category == category && p.Slug != excludeSlug && p.IsActive && len(out) < limit {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product, _ bool) error {
	r.updates++
	for slug, existing := range r.bySlug {
		if existing.ID == p.ID {
			delete(r.bySlug, slug)
		}
	}
	cp := *p
	r.bySlug[p.Slug] = &cp
	return nil
}

func (r *stubProductRepo) DeleteBySlug(_ context.Context, slug string) (int64, error) {
	if _, ok := r.bySlug[slug]; !ok {
		return 0, nil
	}
	delete(r.bySlug, slug)
	return 1, nil
}

func (r *stubProductRepo) ListSitemap(_ context.Context) ([]repository.SitemapRow, error) {
	var rows []repository.SitemapRow
	for _, p := range r.bySlug {
		if p.IsActive {
			rows = append(rows, repository.SitemapRow{Slug: p.Slug, UpdatedAt: p.UpdatedAt})
		}
	}
	return rows, nil
}

type stubCategoryRepo struct {
	byID      map[uuid.UUID]*model.Category
	renamedTo map[string]string
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{byID: make(map[uuid.UUID]*model.Category), renamedTo: make(map[string]string)}
}

func (r *stubCategoryRepo) add(name, slug string, active bool) *model.Category {
	c := &model.Category{ID: uuid.New(), Name: name, Slug: slug, IsActive: active, CreatedAt: time.Now()}
	r.byID[c.ID] = c
	return c
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	c.ID = uuid.New()
	r.byID[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context, includeInactive bool) ([]model.Category, error) {
	var out []model.Category
	for _, c := range r.byID {
		if includeInactive || c.IsActive {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubCategoryRepo) ListLatest(ctx context.Context, limit int) ([]model.Category, error) {
	out, _ := r.List(ctx, false)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoryRepo) FindBySlug(_ context.Context, slug string, activeOnly bool) (*model.Category, error) {
	for _, c := range r.byID {
		if c.Slug == slug && (!activeOnly || c.IsActive) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) FindConflict(_ context.Context, name, slug string, excludeID uuid.UUID) (*model.Category, error) {
	for _, c := range r.byID {
		if c.ID == excludeID {
			continue
		}
		if strings.EqualFold(c.Name, name) || c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category, previousName string) error {
	if previousName != c.Name {
		r.renamedTo[previousName] = c.Name
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.byID[id]; !ok {
		return 0, nil
	}
	delete(r.byID, id)
	return 1, nil
}

type stubAdminRepo struct {
	admins []*model.Admin
}

func (r *stubAdminRepo) Create(_ context.Context, a *model.Admin) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	r.admins = append(r.admins, a)
	return nil
}

func (r *stubAdminRepo) FindByEmail(_ context.Context, email string) (*model.Admin, error) {
	for _, a := range r.admins {
		if a.Email == strings.ToLower(email) {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAdminRepo) First(_ context.Context) (*model.Admin, error) {
	if len(r.admins) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.admins[0], nil
}

// ── Cache stub ───────────────────────────────────────────────────────────────

type stubCache struct {
	invalidated []string
	sets        int
	keys        []string
	getErr      error
}

func (c *stubCache) Get(context.Context, string, interface{}) (bool, error) { return false, c.getErr }

func (c *stubCache) Set(_ context.Context, key string, _ interface{}, _ time.Duration) error {
	c.sets++
	c.keys = append(c.keys, key)
	return nil
}

func (c *stubCache) DeletePrefix(_ context.Context, prefix string) error {
	c.invalidated = append(c.invalidated, prefix)
	return nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func newTestCfg() *config.Config {
	return &config.Config{
		JWTSecret:           "test_jwt_secret_32_chars_minimum!",
		JWTExpirationHours:  24,
		AdminEmail:          "admin@nawabkhana.com",
		AdminPassword:       "admin12345",
		AdminName:           "Admin",
		BrandName:           "NAWAB KHANA",
		DefaultProductImage: "https://img.example/default.jpg",
		CacheTTL:            time.Minute,
	}
}

func newTestPresenter() *Presenter {
	return NewPresenter(pricing.NewFormatter("₹", "en-IN"))
}

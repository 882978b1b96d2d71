package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/spendwise/expense-system/internal/core/domain"
)

// stubCategoryRepo keeps categories in memory and tracks which category each
// expense id points at, so the cascade behaviour of Rename and
// DeleteAndReassign can be observed. Injected failures leave state untouched,
// the way a rolled-back transaction would.
type stubCategoryRepo struct {
	categories map[int64]*domain.Category
	expenses   map[int64]string // expense id -> category name
	nextID     int64

	failRename bool
	failDelete bool
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{
		categories: make(map[int64]*domain.Category),
		expenses:   make(map[int64]string),
	}
}

func (r *stubCategoryRepo) seed(name, color string) *domain.Category {
	r.nextID++
	c := &domain.Category{ID: r.nextID, Name: name, Color: color}
	r.categories[c.ID] = c
	return c
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return nil, domain.ErrCategoryExists
		}
	}
	r.nextID++
	created := &domain.Category{ID: r.nextID, Name: c.Name, Color: c.Color}
	r.categories[created.ID] = created
	return created, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id int64) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}

func (r *stubCategoryRepo) Rename(_ context.Context, id int64, newName, newColor string) error {
	if r.failRename {
		return errors.New("injected rename failure")
	}
	c, ok := r.categories[id]
	if !ok {
		return domain.ErrCategoryNotFound
	}
	old := c.Name
	c.Name = newName
	c.Color = newColor
	for eid, cat := range r.expenses {
		if cat == old {
			r.expenses[eid] = newName
		}
	}
	return nil
}

func (r *stubCategoryRepo) DeleteAndReassign(_ context.Context, id int64) error {
	if r.failDelete {
		return errors.New("injected delete failure")
	}
	c, ok := r.categories[id]
	if !ok {
		return domain.ErrCategoryNotFound
	}
	if c.Name != domain.UncategorizedName {
		if _, err := r.FindByName(context.Background(), domain.UncategorizedName); err != nil {
			r.nextID++
			r.categories[r.nextID] = &domain.Category{
				ID:    r.nextID,
				Name:  domain.UncategorizedName,
				Color: domain.UncategorizedColor,
			}
		}
		for eid, cat := range r.expenses {
			if cat == c.Name {
				r.expenses[eid] = domain.UncategorizedName
			}
		}
	}
	delete(r.categories, id)
	return nil
}

func newCategoryService(repo *stubCategoryRepo) *CategoryService {
	return NewCategoryService(repo, zerolog.Nop())
}

func TestCategoryService_Create(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := newCategoryService(repo)

	created, err := svc.Create(context.Background(), "Travel", "")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Color != domain.DefaultCategoryColor {
		t.Fatalf("expected default color, got %s", created.Color)
	}
}

func TestCategoryService_Create_Conflict(t *testing.T) {
	repo := newStubCategoryRepo()
	repo.seed("Travel", "#111111")
	svc := newCategoryService(repo)

	if _, err := svc.Create(context.Background(), "Travel", ""); !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "Travel", ""); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("conflict should match the taxonomy base, got %v", err)
	}
}

func TestCategoryService_Rename_CascadesToExpenses(t *testing.T) {
	repo := newStubCategoryRepo()
	c := repo.seed("Bills", "#ffc107")
	repo.expenses[1] = "Bills"
	repo.expenses[2] = "Bills"
	repo.expenses[3] = "Groceries"
	svc := newCategoryService(repo)

	renamed, err := svc.Rename(context.Background(), c.ID, "Utilities", "")
	if err != nil {
		t.Fatalf("Rename returned error: %v", err)
	}
	if renamed.Name != "Utilities" || renamed.Color != "#ffc107" {
		t.Fatalf("unexpected result: %+v", renamed)
	}
	if repo.expenses[1] != "Utilities" || repo.expenses[2] != "Utilities" {
		t.Fatalf("referencing expenses not renamed: %v", repo.expenses)
	}
	if repo.expenses[3] != "Groceries" {
		t.Fatalf("unrelated expense touched: %v", repo.expenses)
	}
}

func TestCategoryService_Rename_Conflict(t *testing.T) {
	repo := newStubCategoryRepo()
	bills := repo.seed("Bills", "#ffc107")
	repo.seed("Groceries", "#28a745")
	svc := newCategoryService(repo)

	if _, err := svc.Rename(context.Background(), bills.ID, "Groceries", ""); !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
	// Renaming a category to its own name is not a conflict.
	if _, err := svc.Rename(context.Background(), bills.ID, "Bills", ""); err != nil {
		t.Fatalf("self-rename should be allowed, got %v", err)
	}
}

func TestCategoryService_Rename_NotFound(t *testing.T) {
	svc := newCategoryService(newStubCategoryRepo())
	if _, err := svc.Rename(context.Background(), 404, "X", ""); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryService_Delete_ReassignsToUncategorized(t *testing.T) {
	repo := newStubCategoryRepo()
	bills := repo.seed("Bills", "#ffc107")
	repo.expenses[1] = "Bills"
	repo.expenses[2] = "Bills"
	svc := newCategoryService(repo)

	if err := svc.Delete(context.Background(), bills.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := repo.categories[bills.ID]; ok {
		t.Fatalf("category row not removed")
	}
	for eid, cat := range repo.expenses {
		if cat != domain.UncategorizedName {
			t.Fatalf("expense %d not reassigned: %s", eid, cat)
		}
	}
	uncat, err := repo.FindByName(context.Background(), domain.UncategorizedName)
	if err != nil {
		t.Fatalf("Uncategorized not created: %v", err)
	}
	if uncat.Color != domain.UncategorizedColor {
		t.Fatalf("unexpected Uncategorized color: %s", uncat.Color)
	}
}

func TestCategoryService_Delete_FailureLeavesStateIntact(t *testing.T) {
	repo := newStubCategoryRepo()
	bills := repo.seed("Bills", "#ffc107")
	repo.expenses[1] = "Bills"
	repo.failDelete = true
	svc := newCategoryService(repo)

	if err := svc.Delete(context.Background(), bills.ID); err == nil {
		t.Fatalf("expected injected failure to propagate")
	}
	if _, ok := repo.categories[bills.ID]; !ok {
		t.Fatalf("category removed despite failed transaction")
	}
	if repo.expenses[1] != "Bills" {
		t.Fatalf("expense reassigned despite failed transaction")
	}
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	svc := newCategoryService(newStubCategoryRepo())
	if err := svc.Delete(context.Background(), 404); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

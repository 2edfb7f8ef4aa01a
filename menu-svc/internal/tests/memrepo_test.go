package tests

import (
	"database/sql"
	"sort"
	"sync"

	"boum-cafe/menu-svc/internal/domain"
)

// memRepo is an in-memory MenuRepository for exercising ordering flows end to end.
type memRepo struct {
	mu     sync.Mutex
	items  map[int]domain.MenuItem
	nextID int
	writes int
}

func newMemRepo(items ...domain.MenuItem) *memRepo {
	r := &memRepo{items: make(map[int]domain.MenuItem), nextID: 1}
	for _, item := range items {
		item.IsVisible = true
		r.items[item.ID] = item
		if item.ID >= r.nextID {
			r.nextID = item.ID + 1
		}
	}
	return r
}

func (r *memRepo) ListMenus() ([]domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memRepo) ListVisibleMenus() ([]domain.MenuItem, error) {
	all, _ := r.ListMenus()
	var out []domain.MenuItem
	for _, item := range all {
		if item.IsVisible {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *memRepo) GetMenu(id int) (*domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &item, nil
}

func (r *memRepo) CreateMenu(item *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = *item
	return nil
}

func (r *memRepo) UpdateMenu(item *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return sql.ErrNoRows
	}
	r.items[item.ID] = *item
	return nil
}

func (r *memRepo) UpdateSortOrder(id, sortOrder int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item := r.items[id]
	item.SortOrder = sortOrder
	r.items[id] = item
	r.writes++
	return nil
}

func (r *memRepo) UpdateMenuImage(id int, imageURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item := r.items[id]
	item.ImageURL = imageURL
	r.items[id] = item
	return nil
}

func (r *memRepo) DeleteMenu(id int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *memRepo) order(id int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id].SortOrder
}

func coffee(id, order int) domain.MenuItem {
	return domain.MenuItem{ID: id, Name: "coffee", Category: domain.CategoryCoffee, SortOrder: order}
}

func beverage(id, order int) domain.MenuItem {
	return domain.MenuItem{ID: id, Name: "beverage", Category: domain.CategoryBeverage, SortOrder: order}
}

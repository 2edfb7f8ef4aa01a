package service

import (
	"fmt"
	"sort"

	"boum-cafe/menu-svc/internal/domain"
)

const DefaultCategoryCapacity = 100

// Bands partitions sort_order into one contiguous band per category:
// the category at index i owns [i*Capacity+1, i*Capacity+Capacity].
type Bands struct {
	Categories []domain.Category
	Capacity   int
}

type Assignment struct {
	ID        int `json:"id"`
	SortOrder int `json:"sort_order"`
}

func DefaultBands() Bands {
	return NewBands(domain.Categories, DefaultCategoryCapacity)
}

func NewBands(categories []domain.Category, capacity int) Bands {
	if capacity <= 0 {
		capacity = DefaultCategoryCapacity
	}
	return Bands{Categories: categories, Capacity: capacity}
}

func (b Bands) index(c domain.Category) int {
	for i, cat := range b.Categories {
		if cat == c {
			return i
		}
	}
	return -1
}

func (b Bands) Known(c domain.Category) bool {
	return b.index(c) >= 0
}

// Band returns the inclusive range of c, or (0, 0) when c is not a known category.
func (b Bands) Band(c domain.Category) (base, max int) {
	i := b.index(c)
	if i < 0 {
		return 0, 0
	}
	base = i*b.Capacity + 1
	return base, base + b.Capacity - 1
}

func (b Bands) Contains(c domain.Category, order int) bool {
	base, max := b.Band(c)
	return base > 0 && order >= base && order <= max
}

func (b Bands) All() []domain.CategoryBand {
	out := make([]domain.CategoryBand, 0, len(b.Categories))
	for _, c := range b.Categories {
		base, max := b.Band(c)
		out = append(out, domain.CategoryBand{Category: c, Base: base, Max: max})
	}
	return out
}

// NextOrder returns the order a new item in c receives: one past the current
// maximum, or the band base for an empty category.
func (b Bands) NextOrder(c domain.Category, existing []domain.MenuItem) (int, error) {
	base, max := b.Band(c)
	if base == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	highest := base - 1
	for _, item := range existing {
		if item.Category == c && item.SortOrder > highest {
			highest = item.SortOrder
		}
	}
	next := highest + 1
	if next > max {
		return 0, fmt.Errorf("%w: %s holds at most %d items", ErrCategoryFull, c, b.Capacity)
	}
	return next, nil
}

// Priority settles ties on sort_order in favour of, or against, one item.
// Ahead is set when the item was moved up onto an occupied slot.
type Priority struct {
	ID    int
	Ahead bool
}

// PriorityFor returns the tie-break for an item moved from previous to
// requested: moving up lands it ahead of the current holder, moving down
// behind it.
func PriorityFor(id, previous, requested int) Priority {
	return Priority{ID: id, Ahead: requested < previous}
}

// Compact packs the items of c densely from the band base, keeping their
// current relative order. Only changed items are returned, so compacting an
// already dense category yields nothing. A category holding more items than
// the band fits is rejected with ErrCategoryFull.
func (b Bands) Compact(c domain.Category, items []domain.MenuItem) ([]Assignment, error) {
	return b.compact(c, items, Priority{})
}

// CompactWithPriority is Compact where p decides ties with the item sharing
// its sort_order.
func (b Bands) CompactWithPriority(c domain.Category, items []domain.MenuItem, p Priority) ([]Assignment, error) {
	return b.compact(c, items, p)
}

func (b Bands) compact(c domain.Category, items []domain.MenuItem, p Priority) ([]Assignment, error) {
	base, _ := b.Band(c)
	if base == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	members := inCategory(c, items)
	if len(members) > b.Capacity {
		return nil, fmt.Errorf("%w: %s holds %d items, at most %d fit", ErrCategoryFull, c, len(members), b.Capacity)
	}
	sort.SliceStable(members, func(i, j int) bool {
		if members[i].SortOrder != members[j].SortOrder {
			return members[i].SortOrder < members[j].SortOrder
		}
		if p.ID == 0 {
			return false
		}
		if p.Ahead {
			return members[i].ID == p.ID
		}
		return members[j].ID == p.ID
	})

	var changes []Assignment
	for i, item := range members {
		want := base + i
		if item.SortOrder != want {
			changes = append(changes, Assignment{ID: item.ID, SortOrder: want})
		}
	}
	return changes, nil
}

// Sequence assigns base, base+1, ... to ids in the given order.
func (b Bands) Sequence(c domain.Category, ids []int) ([]Assignment, error) {
	base, _ := b.Band(c)
	if base == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	if len(ids) > b.Capacity {
		return nil, fmt.Errorf("%w: %s holds at most %d items", ErrCategoryFull, c, b.Capacity)
	}
	out := make([]Assignment, len(ids))
	for i, id := range ids {
		out[i] = Assignment{ID: id, SortOrder: base + i}
	}
	return out, nil
}

// SortedInCategory returns the items of c ordered by sort_order.
func SortedInCategory(c domain.Category, items []domain.MenuItem) []domain.MenuItem {
	members := inCategory(c, items)
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].SortOrder < members[j].SortOrder
	})
	return members
}

func inCategory(c domain.Category, items []domain.MenuItem) []domain.MenuItem {
	var members []domain.MenuItem
	for _, item := range items {
		if item.Category == c {
			members = append(members, item)
		}
	}
	return members
}

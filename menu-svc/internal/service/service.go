package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"boum-cafe/menu-svc/internal/domain"
)

const menusTable = "menus"

type MenuService struct {
	repo      MenuRepository
	bands     Bands
	cache     BoardCache
	publisher ChangePublisher
	images    ImageStore
}

func NewMenuService(repo MenuRepository, bands Bands, cache BoardCache, publisher ChangePublisher, images ImageStore) *MenuService {
	return &MenuService{
		repo:      repo,
		bands:     bands,
		cache:     cache,
		publisher: publisher,
		images:    images,
	}
}

func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.ListMenus()
}

func (s *MenuService) Get(ctx context.Context, id int) (*domain.MenuItem, error) {
	item, err := s.repo.GetMenu(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMenuNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Bands() []domain.CategoryBand {
	return s.bands.All()
}

func (s *MenuService) validate(item *domain.MenuItem) error {
	item.Name = strings.TrimSpace(item.Name)
	item.Description = strings.TrimSpace(item.Description)
	if item.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMenu)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: price must be zero or more", ErrInvalidMenu)
	}
	if !s.bands.Known(item.Category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, item.Category)
	}
	return nil
}

// Create appends item to the end of its category.
func (s *MenuService) Create(ctx context.Context, item *domain.MenuItem) error {
	if err := s.validate(item); err != nil {
		return err
	}
	existing, err := s.repo.ListMenus()
	if err != nil {
		return fmt.Errorf("failed to load menus: %w", err)
	}
	order, err := s.bands.NextOrder(item.Category, existing)
	if err != nil {
		return err
	}
	item.SortOrder = order

	if err := s.repo.CreateMenu(item); err != nil {
		return err
	}
	s.changed(ctx, "menu_created", item.ID)
	return nil
}

// Update keeps the item's position unless its category changes, in which case
// it moves to the end of the new category. An omitted image_url keeps the
// stored image; remove_image clears it.
func (s *MenuService) Update(ctx context.Context, item *domain.MenuItem) error {
	if err := s.validate(item); err != nil {
		return err
	}
	current, err := s.Get(ctx, item.ID)
	if err != nil {
		return err
	}

	item.SortOrder = current.SortOrder
	if item.Category != current.Category {
		existing, err := s.repo.ListMenus()
		if err != nil {
			return fmt.Errorf("failed to load menus: %w", err)
		}
		order, err := s.bands.NextOrder(item.Category, existing)
		if err != nil {
			return err
		}
		item.SortOrder = order
	}
	switch {
	case item.RemoveImage:
		item.ImageURL = ""
	case item.ImageURL == "":
		item.ImageURL = current.ImageURL
	}
	item.RemoveImage = false

	if err := s.repo.UpdateMenu(item); err != nil {
		return err
	}
	item.CreatedAt = current.CreatedAt
	s.changed(ctx, "menu_updated", item.ID)
	return nil
}

// Delete removes the item and closes the gap it leaves.
func (s *MenuService) Delete(ctx context.Context, id int) error {
	rows, err := s.repo.DeleteMenu(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMenuNotFound
	}
	s.changed(ctx, "menu_deleted", id)

	if _, err := s.Recompact(ctx); err != nil {
		return fmt.Errorf("menu deleted but recompaction failed: %w", err)
	}
	return nil
}

func (s *MenuService) UpdateImage(ctx context.Context, id int, filename, contentType string, r io.Reader) (string, error) {
	if !AllowedImageTypes[contentType] {
		return "", ErrUnsupportedImage
	}
	if _, err := s.Get(ctx, id); err != nil {
		return "", err
	}

	url, err := s.images.Upload(ctx, StoragePath(filename, time.Now()), r, contentType)
	if err != nil {
		log.Printf("[menu-svc] image upload for menu %d failed: %v", id, err)
		return "", ClassifyUploadError(err)
	}
	if err := s.repo.UpdateMenuImage(id, url); err != nil {
		return "", err
	}
	s.changed(ctx, "menu_updated", id)
	return url, nil
}

func (s *MenuService) MoveUp(ctx context.Context, id int) (bool, error) {
	return s.move(ctx, id, -1)
}

func (s *MenuService) MoveDown(ctx context.Context, id int) (bool, error) {
	return s.move(ctx, id, 1)
}

// move swaps the item with its neighbour in the category. Moving the first
// item up or the last item down reports false and writes nothing.
func (s *MenuService) move(ctx context.Context, id, step int) (bool, error) {
	items, err := s.repo.ListMenus()
	if err != nil {
		return false, fmt.Errorf("failed to load menus: %w", err)
	}
	var item *domain.MenuItem
	for i := range items {
		if items[i].ID == id {
			item = &items[i]
			break
		}
	}
	if item == nil {
		return false, ErrMenuNotFound
	}

	members := SortedInCategory(item.Category, items)
	idx := -1
	for i, m := range members {
		if m.ID == id {
			idx = i
			break
		}
	}
	target := idx + step
	if idx < 0 || target < 0 || target >= len(members) {
		return false, nil
	}

	neighbour := members[target]
	swap := []Assignment{
		{ID: item.ID, SortOrder: neighbour.SortOrder},
		{ID: neighbour.ID, SortOrder: item.SortOrder},
	}
	if err := s.apply(swap); err != nil {
		return false, err
	}
	s.changed(ctx, "menu_reordered", id)
	return true, nil
}

// SetSortOrder stores a caller-chosen order and repacks the catalog. On a tie
// the moved item lands where it was asked to go: ahead of the current holder
// when moving up, behind it when moving down.
func (s *MenuService) SetSortOrder(ctx context.Context, id, requested int) ([]Assignment, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.bands.Contains(item.Category, requested) {
		base, max := s.bands.Band(item.Category)
		return nil, &OrderOutOfBandError{
			Category:  item.Category,
			Base:      base,
			Max:       max,
			Requested: requested,
			Current:   item.SortOrder,
		}
	}

	items, err := s.repo.ListMenus()
	if err != nil {
		return nil, fmt.Errorf("failed to load menus: %w", err)
	}
	for i := range items {
		if items[i].ID == id {
			items[i].SortOrder = requested
		}
	}
	plan, err := s.plan(items, PriorityFor(id, item.SortOrder, requested))
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateSortOrder(id, requested); err != nil {
		return nil, fmt.Errorf("update sort order of menu %d: %w", id, err)
	}
	err = s.apply(plan)
	s.changed(ctx, "menu_reordered", id)
	return plan, err
}

// Reorder overwrites a category's order with the given id sequence, as
// produced by a drag and drop.
func (s *MenuService) Reorder(ctx context.Context, category domain.Category, ids []int) ([]Assignment, error) {
	if !s.bands.Known(category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	items, err := s.repo.ListMenus()
	if err != nil {
		return nil, fmt.Errorf("failed to load menus: %w", err)
	}
	if !sameMembers(inCategory(category, items), ids) {
		return nil, ErrOrderMismatch
	}

	assignments, err := s.bands.Sequence(category, ids)
	if err != nil {
		return nil, err
	}
	if err := s.apply(assignments); err != nil {
		return nil, err
	}
	s.changed(ctx, "menu_reordered", 0)
	return assignments, nil
}

// Recompact repacks every category densely from its band base. Nothing is
// written unless every category fits its band.
func (s *MenuService) Recompact(ctx context.Context) ([]Assignment, error) {
	items, err := s.repo.ListMenus()
	if err != nil {
		return nil, fmt.Errorf("failed to load menus: %w", err)
	}
	changes, err := s.plan(items, Priority{})
	if err != nil {
		return nil, err
	}
	err = s.apply(changes)
	if len(changes) > 0 {
		s.changed(ctx, "menu_reordered", 0)
	}
	return changes, err
}

// plan compacts every category of items without writing anything.
func (s *MenuService) plan(items []domain.MenuItem, p Priority) ([]Assignment, error) {
	var all []Assignment
	for _, c := range s.bands.Categories {
		changes, err := s.bands.CompactWithPriority(c, items, p)
		if err != nil {
			return nil, err
		}
		all = append(all, changes...)
	}
	return all, nil
}

// apply issues one update per assignment in order. A failure stops the batch
// and leaves earlier updates in place; callers re-read the catalog.
func (s *MenuService) apply(assignments []Assignment) error {
	for _, a := range assignments {
		if err := s.repo.UpdateSortOrder(a.ID, a.SortOrder); err != nil {
			return fmt.Errorf("update sort order of menu %d: %w", a.ID, err)
		}
	}
	return nil
}

func (s *MenuService) Board(ctx context.Context) (*domain.Board, error) {
	if s.cache != nil {
		if board, err := s.cache.GetBoard(ctx); err == nil && board != nil {
			return board, nil
		}
	}

	items, err := s.repo.ListVisibleMenus()
	if err != nil {
		return nil, err
	}
	board := BuildBoard(s.bands, items)

	if s.cache != nil {
		if err := s.cache.SetBoard(ctx, board); err != nil {
			log.Printf("[menu-svc] failed to cache board: %v", err)
		}
	}
	return board, nil
}

func (s *MenuService) changed(ctx context.Context, eventType string, id int) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.Printf("[menu-svc] failed to invalidate board cache: %v", err)
		}
	}
	if s.publisher != nil {
		event := domain.ChangeEvent{
			Type:      eventType,
			Table:     menusTable,
			ID:        id,
			Timestamp: time.Now(),
		}
		if err := s.publisher.PublishChange(ctx, event); err != nil {
			log.Printf("[menu-svc] failed to publish %s: %v", eventType, err)
		}
	}
}

func sameMembers(members []domain.MenuItem, ids []int) bool {
	if len(members) != len(ids) {
		return false
	}
	want := make(map[int]bool, len(members))
	for _, m := range members {
		want[m.ID] = true
	}
	for _, id := range ids {
		if !want[id] {
			return false
		}
		delete(want, id)
	}
	return len(want) == 0
}

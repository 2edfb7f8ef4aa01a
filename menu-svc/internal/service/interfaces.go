package service

import (
	"context"
	"io"

	"boum-cafe/menu-svc/internal/domain"
)

type MenuRepository interface {
	ListMenus() ([]domain.MenuItem, error)
	ListVisibleMenus() ([]domain.MenuItem, error)
	GetMenu(id int) (*domain.MenuItem, error)
	CreateMenu(item *domain.MenuItem) error
	UpdateMenu(item *domain.MenuItem) error
	UpdateSortOrder(id, sortOrder int) error
	UpdateMenuImage(id int, imageURL string) error
	DeleteMenu(id int) (int64, error)
}

// BoardCache returns (nil, nil) from GetBoard on a miss.
type BoardCache interface {
	GetBoard(ctx context.Context) (*domain.Board, error)
	SetBoard(ctx context.Context, board *domain.Board) error
	Invalidate(ctx context.Context) error
}

type ChangePublisher interface {
	PublishChange(ctx context.Context, event domain.ChangeEvent) error
}

type ImageStore interface {
	Upload(ctx context.Context, path string, r io.Reader, contentType string) (string, error)
}

type MenuServiceInterface interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Get(ctx context.Context, id int) (*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id int) error
	UpdateImage(ctx context.Context, id int, filename, contentType string, r io.Reader) (string, error)
	MoveUp(ctx context.Context, id int) (bool, error)
	MoveDown(ctx context.Context, id int) (bool, error)
	SetSortOrder(ctx context.Context, id, requested int) ([]Assignment, error)
	Reorder(ctx context.Context, category domain.Category, ids []int) ([]Assignment, error)
	Recompact(ctx context.Context) ([]Assignment, error)
	Board(ctx context.Context) (*domain.Board, error)
	Bands() []domain.CategoryBand
}

var _ MenuServiceInterface = (*MenuService)(nil)

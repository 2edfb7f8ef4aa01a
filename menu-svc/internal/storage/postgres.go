package storage

import (
	"database/sql"
	"fmt"

	"boum-cafe/menu-svc/internal/domain"
)

const menuColumns = `id, name, price, category, COALESCE(description, ''), COALESCE(image_url, ''),
	is_sold_out, is_seasonal, is_signature, is_visible, sort_order, created_at, updated_at`

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMenu(row rowScanner, item *domain.MenuItem) error {
	return row.Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.Description, &item.ImageURL,
		&item.IsSoldOut, &item.IsSeasonal, &item.IsSignature, &item.IsVisible, &item.SortOrder,
		&item.CreatedAt, &item.UpdatedAt)
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (r *PostgresRepository) listMenus(query string) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := scanMenu(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListMenus() ([]domain.MenuItem, error) {
	return r.listMenus(`SELECT ` + menuColumns + ` FROM menus ORDER BY sort_order ASC, id ASC`)
}

func (r *PostgresRepository) ListVisibleMenus() ([]domain.MenuItem, error) {
	return r.listMenus(`SELECT ` + menuColumns + ` FROM menus WHERE is_visible = TRUE ORDER BY sort_order ASC, id ASC`)
}

func (r *PostgresRepository) GetMenu(id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	row := r.DB.QueryRow(`SELECT `+menuColumns+` FROM menus WHERE id = $1`, id)
	if err := scanMenu(row, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) CreateMenu(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menus (name, price, category, description, image_url,
			is_sold_out, is_seasonal, is_signature, is_visible, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		item.Name, item.Price, item.Category, nullIfEmpty(item.Description), nullIfEmpty(item.ImageURL),
		item.IsSoldOut, item.IsSeasonal, item.IsSignature, item.IsVisible, item.SortOrder).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *PostgresRepository) UpdateMenu(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		UPDATE menus
		SET name=$1, price=$2, category=$3, description=$4, image_url=$5,
			is_sold_out=$6, is_seasonal=$7, is_signature=$8, is_visible=$9, sort_order=$10,
			updated_at=CURRENT_TIMESTAMP
		WHERE id=$11
		RETURNING updated_at`,
		item.Name, item.Price, item.Category, nullIfEmpty(item.Description), nullIfEmpty(item.ImageURL),
		item.IsSoldOut, item.IsSeasonal, item.IsSignature, item.IsVisible, item.SortOrder, item.ID).
		Scan(&item.UpdatedAt)
}

func (r *PostgresRepository) UpdateSortOrder(id, sortOrder int) error {
	_, err := r.DB.Exec("UPDATE menus SET sort_order=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2", sortOrder, id)
	return err
}

func (r *PostgresRepository) UpdateMenuImage(id int, imageURL string) error {
	_, err := r.DB.Exec("UPDATE menus SET image_url=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2", imageURL, id)
	return err
}

func (r *PostgresRepository) DeleteMenu(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menus WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS menus (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price INTEGER NOT NULL CHECK (price >= 0),
			category TEXT NOT NULL,
			description TEXT,
			image_url TEXT,
			is_sold_out BOOLEAN NOT NULL DEFAULT FALSE,
			is_seasonal BOOLEAN NOT NULL DEFAULT FALSE,
			is_signature BOOLEAN NOT NULL DEFAULT FALSE,
			is_visible BOOLEAN NOT NULL DEFAULT TRUE,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		"CREATE INDEX IF NOT EXISTS menus_sort_order_idx ON menus (sort_order)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

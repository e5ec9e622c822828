package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/repository"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `INSERT INTO items (name, description, available, owner_id, request_id) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, item.Name, item.Description, item.Available, item.OwnerID, item.RequestID).Scan(&item.ID)
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	item := &domain.Item{}
	var requestID sql.NullInt64
	query := `SELECT id, name, description, available, owner_id, request_id FROM items WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Name, &item.Description, &item.Available, &item.OwnerID, &requestID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	setRequestID(item, requestID)
	return item, nil
}

func (r *itemRepository) GetByIDWithOwner(ctx context.Context, id int64) (*domain.Item, error) {
	item := &domain.Item{Owner: &domain.User{}}
	var requestID sql.NullInt64
	query := `SELECT i.id, i.name, i.description, i.available, i.owner_id, i.request_id, u.id, u.name, u.email
	          FROM items i JOIN users u ON u.id = i.owner_id WHERE i.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.Available, &item.OwnerID, &requestID,
		&item.Owner.ID, &item.Owner.Name, &item.Owner.Email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	setRequestID(item, requestID)
	return item, nil
}

func (r *itemRepository) Update(ctx context.Context, item *domain.Item) error {
	query := `UPDATE items SET name = $1, description = $2, available = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, item.Name, item.Description, item.Available, item.ID)
	return err
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error) {
	query := `SELECT id, name, description, available, owner_id, request_id FROM items WHERE owner_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *itemRepository) SearchAvailable(ctx context.Context, query string) ([]domain.Item, error) {
	sqlQuery := `SELECT id, name, description, available, owner_id, request_id FROM items
	             WHERE (LOWER(name) LIKE '%' || LOWER($1) || '%' OR LOWER(description) LIKE '%' || LOWER($1) || '%')
	             AND available = true ORDER BY id`
	rows, err := r.db.QueryContext(ctx, sqlQuery, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func scanItems(rows *sql.Rows) ([]domain.Item, error) {
	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		var requestID sql.NullInt64
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &requestID); err != nil {
			return nil, err
		}
		setRequestID(&it, requestID)
		items = append(items, it)
	}
	return items, rows.Err()
}

func setRequestID(item *domain.Item, requestID sql.NullInt64) {
	if requestID.Valid {
		id := requestID.Int64
		item.RequestID = &id
	}
}

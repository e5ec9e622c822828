package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/repository"

	"github.com/lib/pq"
)

type itemRequestRepository struct {
	db *sql.DB
}

func NewItemRequestRepository(db *sql.DB) repository.ItemRequestRepository {
	return &itemRequestRepository{db: db}
}

func (r *itemRequestRepository) Create(ctx context.Context, request *domain.ItemRequest) error {
	query := `INSERT INTO requests (description, requestor_id, created) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, request.Description, request.RequestorID, request.Created).Scan(&request.ID)
}

func (r *itemRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	request := &domain.ItemRequest{}
	query := `SELECT id, description, requestor_id, created FROM requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&request.ID, &request.Description, &request.RequestorID, &request.Created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item request %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	requests := []domain.ItemRequest{*request}
	if err := r.attachItems(ctx, requests); err != nil {
		return nil, err
	}
	return &requests[0], nil
}

func (r *itemRequestRepository) ListByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	query := `SELECT id, description, requestor_id, created FROM requests WHERE requestor_id = $1 ORDER BY created`
	return r.queryRequests(ctx, query, requestorID)
}

func (r *itemRequestRepository) ListAll(ctx context.Context) ([]domain.ItemRequest, error) {
	query := `SELECT id, description, requestor_id, created FROM requests ORDER BY created`
	return r.queryRequests(ctx, query)
}

func (r *itemRequestRepository) queryRequests(ctx context.Context, query string, args ...any) ([]domain.ItemRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.ItemRequest
	for rows.Next() {
		var req domain.ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// attachItems loads the items answering the given requests in one query and
// distributes them. Every request ends up with a non-nil Items slice.
func (r *itemRequestRepository) attachItems(ctx context.Context, requests []domain.ItemRequest) error {
	byID := make(map[int64]*domain.ItemRequest, len(requests))
	ids := make([]int64, 0, len(requests))
	for i := range requests {
		requests[i].Items = []domain.Item{}
		byID[requests[i].ID] = &requests[i]
		ids = append(ids, requests[i].ID)
	}
	if len(ids) == 0 {
		return nil
	}

	query := `SELECT id, name, description, available, owner_id, request_id FROM items WHERE request_id = ANY($1) ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.Item
		var requestID sql.NullInt64
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &requestID); err != nil {
			return err
		}
		if !requestID.Valid {
			continue
		}
		id := requestID.Int64
		it.RequestID = &id
		if req, ok := byID[id]; ok {
			req.Items = append(req.Items, it)
		}
	}
	return rows.Err()
}

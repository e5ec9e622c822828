package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/repository"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
)

const dialectPostgres = "postgres"

var bookingColumns = []any{
	goqu.I("b.id"), goqu.I("b.start_date"), goqu.I("b.end_date"), goqu.I("b.status"),
	goqu.I("b.booker_id"), goqu.I("b.item_id"),
	goqu.I("u.id"), goqu.I("u.name"), goqu.I("u.email"),
	goqu.I("i.id"), goqu.I("i.name"), goqu.I("i.description"), goqu.I("i.available"), goqu.I("i.owner_id"),
	goqu.I("o.id"), goqu.I("o.name"), goqu.I("o.email"),
}

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `INSERT INTO bookings (start_date, end_date, status, booker_id, item_id) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, booking.Start, booking.End, booking.Status, booking.BookerID, booking.ItemID).Scan(&booking.ID)
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

func (r *bookingRepository) GetByIDWithRelations(ctx context.Context, id int64) (*domain.Booking, error) {
	selectSQL, args, err := joinedBookings().
		Where(goqu.I("b.id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build booking query: %w", err)
	}

	bk, err := scanBooking(r.db.QueryRowContext(ctx, selectSQL, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return bk, nil
}

func (r *bookingRepository) ListByBooker(ctx context.Context, bookerID int64, state domain.SearchState, now time.Time) ([]domain.Booking, error) {
	return r.listFiltered(ctx, goqu.I("b.booker_id").Eq(bookerID), state, now)
}

func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID int64, state domain.SearchState, now time.Time) ([]domain.Booking, error) {
	return r.listFiltered(ctx, goqu.I("i.owner_id").Eq(ownerID), state, now)
}

func (r *bookingRepository) FindByBookerAndItem(ctx context.Context, bookerID, itemID int64) (*domain.Booking, error) {
	selectSQL, args, err := joinedBookings().
		Where(goqu.I("b.booker_id").Eq(bookerID), goqu.I("b.item_id").Eq(itemID)).
		Limit(1).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build booking query: %w", err)
	}

	bk, err := scanBooking(r.db.QueryRowContext(ctx, selectSQL, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking of item %d by user %d: %w", itemID, bookerID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return bk, nil
}

func (r *bookingRepository) ListWaitingWithRelations(ctx context.Context) ([]domain.Booking, error) {
	selectSQL, args, err := joinedBookings().
		Where(goqu.I("b.status").Eq(string(domain.BookingStatusWaiting))).
		Order(goqu.I("b.start_date").Desc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build booking query: %w", err)
	}
	return r.queryBookings(ctx, selectSQL, args)
}

func (r *bookingRepository) listFiltered(ctx context.Context, identity goqu.Expression, state domain.SearchState, now time.Time) ([]domain.Booking, error) {
	where := []goqu.Expression{identity}
	if stateExpr := stateExpression(state, now); stateExpr != nil {
		where = append(where, stateExpr)
	}

	selectSQL, args, err := joinedBookings().
		Where(where...).
		Order(goqu.I("b.start_date").Desc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build booking query: %w", err)
	}
	return r.queryBookings(ctx, selectSQL, args)
}

// stateExpression maps a search state to its query predicate. ALL maps to
// no predicate. Temporal comparisons are strict, evaluated against the
// instant supplied by the caller.
func stateExpression(state domain.SearchState, now time.Time) goqu.Expression {
	switch state {
	case domain.SearchStateCurrent:
		return goqu.I("b.end_date").Gt(now)
	case domain.SearchStatePast:
		return goqu.I("b.end_date").Lt(now)
	case domain.SearchStateFuture:
		return goqu.I("b.start_date").Gt(now)
	case domain.SearchStateWaiting:
		return goqu.I("b.status").Eq(string(domain.BookingStatusWaiting))
	case domain.SearchStateRejected:
		return goqu.I("b.status").Eq(string(domain.BookingStatusRejected))
	default:
		return nil
	}
}

func joinedBookings() *goqu.SelectDataset {
	return goqu.Dialect(dialectPostgres).
		From(goqu.T("bookings").As("b")).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("b.booker_id")))).
		Join(goqu.T("items").As("i"), goqu.On(goqu.I("i.id").Eq(goqu.I("b.item_id")))).
		Join(goqu.T("users").As("o"), goqu.On(goqu.I("o.id").Eq(goqu.I("i.owner_id")))).
		Select(bookingColumns...)
}

func (r *bookingRepository) queryBookings(ctx context.Context, selectSQL string, args []any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, selectSQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		bk, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *bk)
	}
	return bookings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	bk := &domain.Booking{Booker: &domain.User{}, Item: &domain.Item{Owner: &domain.User{}}}
	err := row.Scan(
		&bk.ID, &bk.Start, &bk.End, &bk.Status, &bk.BookerID, &bk.ItemID,
		&bk.Booker.ID, &bk.Booker.Name, &bk.Booker.Email,
		&bk.Item.ID, &bk.Item.Name, &bk.Item.Description, &bk.Item.Available, &bk.Item.OwnerID,
		&bk.Item.Owner.ID, &bk.Item.Owner.Name, &bk.Item.Owner.Email,
	)
	if err != nil {
		return nil, err
	}
	return bk, nil
}

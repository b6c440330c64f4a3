package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store defines data access methods for bookings.
type Store interface {
	Create(ctx context.Context, b *Booking) error
	// GetByID returns the booking joined with its room and hotel.
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByRoom(ctx context.Context, roomID string) ([]*Booking, error)
	ListByRooms(ctx context.Context, roomIDs []string) ([]*Booking, error)
	// ListByUser returns the user's bookings, latest check-in first.
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)
	Delete(ctx context.Context, id string) error
	RoomExists(ctx context.Context, roomID string) (bool, error)
}

// Repository is a Store that can also serialize work per room.
type Repository interface {
	Store

	// InRoomScope runs fn while holding an exclusive lock on the room. Calls for
	// the same room run one at a time; calls for different rooms do not block
	// each other. Writes made through the Store passed to fn commit only if fn
	// returns nil. A missing room yields ErrRoomNotFound.
	InRoomScope(ctx context.Context, roomID string, fn func(ctx context.Context, store Store) error) error
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type pgxStore struct {
	db querier
}

type pgxRepository struct {
	pgxStore
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pgxStore: pgxStore{db: pool}, pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func (r *pgxRepository) InRoomScope(ctx context.Context, roomID string, fn func(ctx context.Context, store Store) error) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var id string
		err := tx.QueryRow(ctx, "SELECT id FROM public.rooms WHERE id = $1 FOR UPDATE", roomID).Scan(&id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("lock room failed: %w", err)
		}
		return fn(ctx, &pgxStore{db: tx})
	})
}

func selectBookings() squirrel.SelectBuilder {
	return psql.Select(
		"b.id", "b.room_id", "b.user_id", "b.check_in_date", "b.check_out_date", "b.status",
		"r.room_number", "r.price_per_night", "h.name", "h.location",
		"b.created_at", "b.updated_at",
	).
		From("public.bookings b").
		Join("public.rooms r ON b.room_id = r.id").
		Join("public.hotels h ON r.hotel_id = h.id")
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	var status int16
	if err := row.Scan(
		&b.ID, &b.RoomID, &b.UserID, &b.CheckIn, &b.CheckOut, &status,
		&b.RoomNumber, &b.RoomPrice, &b.HotelName, &b.HotelLocation,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.Status = Status(status)
	return &b, nil
}

func isInvalidID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.InvalidTextRepresentation
}

// mapWriteError translates constraint violations into domain errors, or returns nil.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case pgerrcode.ExclusionViolation:
		return ErrConflict.WithCause(err)
	case pgerrcode.ForeignKeyViolation:
		return ErrRoomNotFound.WithCause(err)
	case pgerrcode.CheckViolation:
		return ErrInvalidDateRange.WithCause(err)
	}
	return nil
}

func (s *pgxStore) Create(ctx context.Context, b *Booking) error {
	query, args, err := psql.Insert("public.bookings").
		Columns("room_id", "user_id", "check_in_date", "check_out_date", "status").
		Values(b.RoomID, b.UserID, b.CheckIn, b.CheckOut, int16(b.Status)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := s.db.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (s *pgxStore) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (s *pgxStore) list(ctx context.Context, query squirrel.SelectBuilder) ([]*Booking, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	return bookings, nil
}

func (s *pgxStore) ListByRoom(ctx context.Context, roomID string) ([]*Booking, error) {
	return s.list(ctx, selectBookings().
		Where(squirrel.Eq{"b.room_id": roomID}).
		OrderBy("b.check_in_date"))
}

func (s *pgxStore) ListByRooms(ctx context.Context, roomIDs []string) ([]*Booking, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}
	return s.list(ctx, selectBookings().
		Where(squirrel.Eq{"b.room_id": roomIDs}).
		OrderBy("b.room_id", "b.check_in_date"))
}

func (s *pgxStore) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	return s.list(ctx, selectBookings().
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.check_in_date DESC", "b.created_at DESC"))
}

func (s *pgxStore) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		if isInvalidID(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgxStore) RoomExists(ctx context.Context, roomID string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM public.rooms WHERE id = $1)", roomID).Scan(&exists)
	if err != nil {
		if isInvalidID(err) {
			return false, nil
		}
		return false, fmt.Errorf("check room exists failed: %w", err)
	}
	return exists, nil
}

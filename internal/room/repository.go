package room

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

// Repository defines data access methods for rooms.
type Repository interface {
	Create(ctx context.Context, rm *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, rm *Room) error
	Delete(ctx context.Context, id string) error
	ExistsByNumber(ctx context.Context, hotelID, roomNumber, excludeID string) (bool, error)
	ListListings(ctx context.Context, filter ListingFilter) ([]*Listing, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func selectRooms(extra ...string) squirrel.SelectBuilder {
	cols := []string{
		"r.id", "r.hotel_id", "h.name", "h.location", "r.room_number", "r.room_type",
		"r.price_per_night", "r.max_guests", "r.size", "r.amenities", "r.description",
		"r.is_available", "r.is_active", "r.is_featured", "r.image_file_id",
		"r.created_at", "r.updated_at",
	}
	return psql.Select(append(cols, extra...)...).
		From("public.rooms r").
		Join("public.hotels h ON r.hotel_id = h.id")
}

func scanRoom(row pgx.Row, extra ...any) (*Room, error) {
	var rm Room
	dest := []any{
		&rm.ID, &rm.HotelID, &rm.HotelName, &rm.HotelLocation, &rm.RoomNumber, &rm.RoomType,
		&rm.PricePerNight, &rm.MaxGuests, &rm.Size, &rm.Amenities, &rm.Description,
		&rm.IsAvailable, &rm.IsActive, &rm.IsFeatured, &rm.ImageFileID,
		&rm.CreatedAt, &rm.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &rm, nil
}

// mapWriteError translates constraint violations into domain errors, or returns nil.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ErrDuplicate.WithCause(err)
	case pgerrcode.ForeignKeyViolation:
		return ErrHotelNotFound.WithCause(err)
	}
	return nil
}

func (r *pgxRepository) Create(ctx context.Context, rm *Room) error {
	query, args, err := psql.Insert("public.rooms").
		Columns(
			"hotel_id", "room_number", "room_type", "price_per_night", "max_guests",
			"size", "amenities", "description", "is_available", "is_active", "is_featured", "image_file_id",
		).
		Values(
			rm.HotelID, rm.RoomNumber, rm.RoomType, rm.PricePerNight, rm.MaxGuests,
			rm.Size, rm.Amenities, rm.Description, rm.IsAvailable, rm.IsActive, rm.IsFeatured, rm.ImageFileID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create room query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&rm.ID, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("create room failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	query, args, err := selectRooms().
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get room query failed: %w", err)
	}

	rm, err := scanRoom(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}
	return rm, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	query := selectRooms("count(*) OVER() AS total_count")

	if filter.HotelID != "" {
		query = query.Where(squirrel.Eq{"r.hotel_id": filter.HotelID})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("h.name", "r.room_number").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	var total int
	for rows.Next() {
		rm, err := scanRoom(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan room failed: %w", err)
		}
		rooms = append(rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate rooms failed: %w", err)
	}

	return rooms, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, rm *Room) error {
	query, args, err := psql.Update("public.rooms").
		Set("room_number", rm.RoomNumber).
		Set("room_type", rm.RoomType).
		Set("price_per_night", rm.PricePerNight).
		Set("max_guests", rm.MaxGuests).
		Set("size", rm.Size).
		Set("amenities", rm.Amenities).
		Set("description", rm.Description).
		Set("is_available", rm.IsAvailable).
		Set("is_active", rm.IsActive).
		Set("is_featured", rm.IsFeatured).
		Set("image_file_id", rm.ImageFileID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": rm.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build update room query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&rm.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update room failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete room query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ExistsByNumber(ctx context.Context, hotelID, roomNumber, excludeID string) (bool, error) {
	sub := psql.Select("1").
		From("public.rooms").
		Where(squirrel.Eq{"hotel_id": hotelID, "room_number": roomNumber})
	if excludeID != "" {
		sub = sub.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := sub.ToSql()
	if err != nil {
		return false, fmt.Errorf("build room uniqueness query failed: %w", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, "SELECT EXISTS ("+sql+")", args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check room uniqueness failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) ListListings(ctx context.Context, filter ListingFilter) ([]*Listing, error) {
	query := psql.Select(
		"h.id", "h.name", "h.location",
		"r.id", "r.room_number", "r.room_type", "r.price_per_night", "r.max_guests",
		"r.description", "r.image_file_id",
	).
		From("public.rooms r").
		Join("public.hotels h ON r.hotel_id = h.id")

	if filter.Location != nil {
		query = query.Where(squirrel.Eq{"h.location": *filter.Location})
	}
	if filter.MinPrice != nil {
		query = query.Where(squirrel.GtOrEq{"r.price_per_night": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		query = query.Where(squirrel.LtOrEq{"r.price_per_night": *filter.MaxPrice})
	}

	sql, args, err := query.OrderBy("h.name", "r.room_number").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list listings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list listings failed: %w", err)
	}
	defer rows.Close()

	var listings []*Listing
	for rows.Next() {
		var l Listing
		if err := rows.Scan(
			&l.HotelID, &l.HotelName, &l.Location,
			&l.RoomID, &l.RoomNumber, &l.RoomType, &l.PricePerNight, &l.MaxGuests,
			&l.Description, &l.ImageFileID,
		); err != nil {
			return nil, fmt.Errorf("scan listing failed: %w", err)
		}
		listings = append(listings, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings failed: %w", err)
	}

	return listings, nil
}

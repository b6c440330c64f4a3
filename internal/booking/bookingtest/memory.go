// Package bookingtest provides an in-memory booking repository for tests.
package bookingtest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
)

// Room is the room and hotel data joined into bookings.
type Room struct {
	Number        string
	Price         float64
	HotelName     string
	HotelLocation string
}

// Memory implements booking.Repository. Like the Postgres repository it holds
// one lock per room inside InRoomScope. Create itself never rejects overlaps,
// so any double booking observed in tests means the scope failed.
type Memory struct {
	mu       sync.Mutex
	rooms    map[string]Room
	bookings map[string]*booking.Booking
	locks    map[string]*sync.Mutex
}

func NewMemory() *Memory {
	return &Memory{
		rooms:    make(map[string]Room),
		bookings: make(map[string]*booking.Booking),
		locks:    make(map[string]*sync.Mutex),
	}
}

func (m *Memory) AddRoom(id string, room Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[id] = room
}

// Count returns the number of stored bookings for the room.
func (m *Memory) Count(roomID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, b := range m.bookings {
		if b.RoomID == roomID {
			n++
		}
	}
	return n
}

func (m *Memory) roomLock(roomID string) (*sync.Mutex, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[roomID]; !ok {
		return nil, false
	}
	l, ok := m.locks[roomID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[roomID] = l
	}
	return l, true
}

func (m *Memory) InRoomScope(ctx context.Context, roomID string, fn func(ctx context.Context, store booking.Store) error) error {
	l, ok := m.roomLock(roomID)
	if !ok {
		return booking.ErrRoomNotFound
	}
	l.Lock()
	defer l.Unlock()

	scope := &scopedStore{Memory: m}
	if err := fn(ctx, scope); err != nil {
		scope.rollback()
		return err
	}
	return nil
}

func (m *Memory) enrich(b *booking.Booking) *booking.Booking {
	cp := *b
	room := m.rooms[b.RoomID]
	cp.RoomNumber = room.Number
	cp.RoomPrice = room.Price
	cp.HotelName = room.HotelName
	cp.HotelLocation = room.HotelLocation
	return &cp
}

func (m *Memory) Create(_ context.Context, b *booking.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[b.RoomID]; !ok {
		return booking.ErrRoomNotFound
	}
	now := time.Now()
	b.ID = uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now
	cp := *b
	m.bookings[b.ID] = &cp
	return nil
}

func (m *Memory) GetByID(_ context.Context, id string) (*booking.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return m.enrich(b), nil
}

func (m *Memory) filter(keep func(*booking.Booking) bool) []*booking.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*booking.Booking
	for _, b := range m.bookings {
		if keep(b) {
			out = append(out, m.enrich(b))
		}
	}
	return out
}

func (m *Memory) ListByRoom(_ context.Context, roomID string) ([]*booking.Booking, error) {
	out := m.filter(func(b *booking.Booking) bool { return b.RoomID == roomID })
	sort.Slice(out, func(i, j int) bool { return out[i].CheckIn.Before(out[j].CheckIn) })
	return out, nil
}

func (m *Memory) ListByRooms(_ context.Context, roomIDs []string) ([]*booking.Booking, error) {
	want := make(map[string]bool, len(roomIDs))
	for _, id := range roomIDs {
		want[id] = true
	}
	return m.filter(func(b *booking.Booking) bool { return want[b.RoomID] }), nil
}

func (m *Memory) ListByUser(_ context.Context, userID string) ([]*booking.Booking, error) {
	out := m.filter(func(b *booking.Booking) bool { return b.UserID == userID })
	sort.Slice(out, func(i, j int) bool { return out[i].CheckIn.After(out[j].CheckIn) })
	return out, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[id]; !ok {
		return booking.ErrNotFound
	}
	delete(m.bookings, id)
	return nil
}

func (m *Memory) RoomExists(_ context.Context, roomID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rooms[roomID]
	return ok, nil
}

// scopedStore records writes so they can be undone when the scope fails.
type scopedStore struct {
	*Memory
	created []string
}

func (s *scopedStore) Create(ctx context.Context, b *booking.Booking) error {
	if err := s.Memory.Create(ctx, b); err != nil {
		return err
	}
	s.created = append(s.created, b.ID)
	return nil
}

func (s *scopedStore) rollback() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.created {
		delete(s.bookings, id)
	}
}

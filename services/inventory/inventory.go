// Package inventory owns the fixed set of hotel rooms and their booking state.
package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"frontdesk/database/kvstore"
	"frontdesk/models"
	"frontdesk/utils"

	"go.uber.org/zap"
)

// RoomInventory is the only writer of the room collection.
type RoomInventory interface {
	Initialize(ctx context.Context) error
	ListRooms(ctx context.Context) ([]models.Room, error)
	Get(ctx context.Context, roomNumber int) (models.Room, error)
	FindFirstAvailable(ctx context.Context) (models.Room, bool, error)
	Assign(ctx context.Context, roomNumber int, occupancy models.Occupancy) error
	Release(ctx context.Context, roomNumber int) (models.Room, error)
}

// Layout fixes how many rooms exist and where numbering starts.
type Layout struct {
	TotalRooms      int
	FirstRoomNumber int
}

// DefaultRoomInventory persists the whole collection as one JSON array.
type DefaultRoomInventory struct {
	Store  kvstore.Store
	Layout Layout
	Logger *zap.Logger

	mu sync.Mutex
}

func NewRoomInventory(store kvstore.Store, layout Layout, logger *zap.Logger) *DefaultRoomInventory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultRoomInventory{Store: store, Layout: layout, Logger: logger}
}

// Initialize seeds the rooms on first run. An existing collection is never
// touched, whatever it contains.
func (inv *DefaultRoomInventory) Initialize(ctx context.Context) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	_, err := inv.Store.Get(ctx, utils.RoomsKey)
	if err == nil {
		return nil
	}
	if !errors.Is(err, kvstore.ErrNotFound) {
		return fmt.Errorf("failed to check room collection: %w", err)
	}

	rooms := make([]models.Room, 0, inv.Layout.TotalRooms)
	for i := 0; i < inv.Layout.TotalRooms; i++ {
		rooms = append(rooms, models.NewAvailableRoom(inv.Layout.FirstRoomNumber+i))
	}
	if err := inv.save(ctx, rooms); err != nil {
		return err
	}
	inv.Logger.Info("Seeded room inventory",
		zap.Int("rooms", len(rooms)),
		zap.Int("first", inv.Layout.FirstRoomNumber))
	return nil
}

func (inv *DefaultRoomInventory) ListRooms(ctx context.Context) ([]models.Room, error) {
	return inv.load(ctx)
}

func (inv *DefaultRoomInventory) Get(ctx context.Context, roomNumber int) (models.Room, error) {
	rooms, err := inv.load(ctx)
	if err != nil {
		return models.Room{}, err
	}
	i := indexOf(rooms, roomNumber)
	if i < 0 {
		return models.Room{}, roomNotFound(roomNumber)
	}
	return rooms[i], nil
}

// FindFirstAvailable returns the first available room in listing order, which
// is the lowest room number.
func (inv *DefaultRoomInventory) FindFirstAvailable(ctx context.Context) (models.Room, bool, error) {
	rooms, err := inv.load(ctx)
	if err != nil {
		return models.Room{}, false, err
	}
	for _, r := range rooms {
		if r.IsAvailable() {
			return r, true, nil
		}
	}
	return models.Room{}, false, nil
}

// Assign books the room with the given occupancy. It does not check that the
// room is currently available; callers serialize find-then-assign.
func (inv *DefaultRoomInventory) Assign(ctx context.Context, roomNumber int, occupancy models.Occupancy) error {
	if strings.TrimSpace(occupancy.GuestName) == "" {
		return models.ErrMissingGuestName
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	rooms, err := inv.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(rooms, roomNumber)
	if i < 0 {
		return roomNotFound(roomNumber)
	}
	rooms[i] = models.Room{RoomNumber: roomNumber, Status: models.RoomBooked, Occupancy: occupancy}
	if err := inv.save(ctx, rooms); err != nil {
		return err
	}
	inv.Logger.Info("Room assigned", zap.Int("room", roomNumber), zap.String("guest", occupancy.GuestName))
	return nil
}

// Release resets the room to its available defaults and returns the record it replaced.
func (inv *DefaultRoomInventory) Release(ctx context.Context, roomNumber int) (models.Room, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	rooms, err := inv.load(ctx)
	if err != nil {
		return models.Room{}, err
	}
	i := indexOf(rooms, roomNumber)
	if i < 0 {
		return models.Room{}, roomNotFound(roomNumber)
	}
	prior := rooms[i]
	rooms[i] = models.NewAvailableRoom(roomNumber)
	if err := inv.save(ctx, rooms); err != nil {
		return models.Room{}, err
	}
	inv.Logger.Info("Room released", zap.Int("room", roomNumber), zap.String("guest", prior.GuestName))
	return prior, nil
}

func (inv *DefaultRoomInventory) load(ctx context.Context) ([]models.Room, error) {
	raw, err := inv.Store.Get(ctx, utils.RoomsKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return []models.Room{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read rooms: %w", err)
	}
	var rooms []models.Room
	if err := json.Unmarshal([]byte(raw), &rooms); err != nil {
		return nil, fmt.Errorf("failed to parse rooms: %w", err)
	}
	return rooms, nil
}

func (inv *DefaultRoomInventory) save(ctx context.Context, rooms []models.Room) error {
	data, err := json.Marshal(rooms)
	if err != nil {
		return fmt.Errorf("failed to marshal rooms: %w", err)
	}
	if err := inv.Store.Set(ctx, utils.RoomsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save rooms: %w", err)
	}
	return nil
}

func indexOf(rooms []models.Room, roomNumber int) int {
	for i, r := range rooms {
		if r.RoomNumber == roomNumber {
			return i
		}
	}
	return -1
}

func roomNotFound(roomNumber int) error {
	return models.NewDomainErrorf(models.CodeRoomNotFound, "Room %d not found.", roomNumber)
}

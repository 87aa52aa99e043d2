package booking

import (
	"context"
	"errors"
	"fmt"

	"frontdesk/models"

	"go.uber.org/zap"
)

const checkoutMessage = "Room %d has been checked out successfully!"

// CheckoutRoom releases a booked room and counts the check-out for today.
func (s *DefaultBookingService) CheckoutRoom(ctx context.Context, roomNumber int) (*models.CheckoutResult, error) {
	if roomNumber <= 0 {
		return nil, models.ErrNoRoomSelected
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.Inventory.Get(ctx, roomNumber)
	if err != nil {
		return nil, err
	}
	if !room.IsBooked() {
		return nil, models.NewDomainErrorf(models.CodeRoomNotFound, "Room %d is not currently booked.", roomNumber)
	}

	prior, err := s.Inventory.Release(ctx, roomNumber)
	if err != nil {
		if errors.Is(err, models.ErrRoomNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to release room %d: %w", roomNumber, err)
	}
	if _, err := s.Counter.IncrementCheckOuts(ctx); err != nil {
		return nil, fmt.Errorf("room %d released but check-out count failed: %w", roomNumber, err)
	}

	s.Logger.Info("Room checked out", zap.Int("room", roomNumber), zap.String("guest", prior.GuestName))
	return &models.CheckoutResult{
		RoomNumber: roomNumber,
		GuestName:  prior.GuestName,
		Message:    fmt.Sprintf(checkoutMessage, roomNumber),
	}, nil
}

package booking

import (
	"context"
	"fmt"

	"frontdesk/models"
)

// Bootstrap seeds the rooms and today's counters. Safe to call on every start.
func (s *DefaultBookingService) Bootstrap(ctx context.Context) error {
	if err := s.Inventory.Initialize(ctx); err != nil {
		return err
	}
	if _, err := s.Counter.EnsureToday(ctx); err != nil {
		return err
	}
	return nil
}

func (s *DefaultBookingService) Rooms(ctx context.Context) ([]models.Room, error) {
	return s.Inventory.ListRooms(ctx)
}

// Status is the dashboard snapshot. Reading it creates today's counter entry
// when the day has just rolled over.
func (s *DefaultBookingService) Status(ctx context.Context) (*models.HotelStatus, error) {
	rooms, err := s.Inventory.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	today, err := s.Counter.Today(ctx)
	if err != nil {
		return nil, err
	}

	booked := 0
	for _, r := range rooms {
		if r.IsBooked() {
			booked++
		}
	}
	return &models.HotelStatus{
		Date:           s.Counter.TodayKey(),
		TotalRooms:     len(rooms),
		AvailableRooms: len(rooms) - booked,
		BookedRooms:    booked,
		CheckInsToday:  today.CheckIns,
		CheckOutsToday: today.CheckOuts,
	}, nil
}

// BookedRooms lists the rooms that can be checked out, in room order.
func (s *DefaultBookingService) BookedRooms(ctx context.Context) ([]models.BookedRoom, error) {
	rooms, err := s.Inventory.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	booked := make([]models.BookedRoom, 0, len(rooms))
	for _, r := range rooms {
		if !r.IsBooked() {
			continue
		}
		booked = append(booked, models.BookedRoom{
			RoomNumber: r.RoomNumber,
			GuestName:  r.GuestName,
			Label:      fmt.Sprintf("Room %d - %s", r.RoomNumber, r.GuestName),
		})
	}
	return booked, nil
}

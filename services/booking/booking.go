package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"frontdesk/models"
	"frontdesk/services/pricing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const confirmationMessage = "Booking confirmed! Room %d has been assigned to %s. Thank you for choosing %s."

// CalculatePrice prices the stay and keeps the quote as a session that
// ConfirmBooking must reference. Nothing is booked yet.
func (s *DefaultBookingService) CalculatePrice(ctx context.Context, stay models.StayRequest) (*models.QuoteSession, error) {
	stay.GuestName = strings.TrimSpace(stay.GuestName)

	quote, err := pricing.Calculate(s.Rates, stay)
	if err != nil {
		return nil, err
	}

	session := models.QuoteSession{
		SessionID:    uuid.New().String(),
		Quote:        quote,
		Summary:      s.Presentation.Summary(quote, 0),
		PriceDisplay: s.Presentation.PriceDisplay(quote),
	}
	session, err = s.Sessions.Save(ctx, session)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("Price calculated",
		zap.String("session", session.SessionID),
		zap.Int("nights", quote.Nights),
		zap.String("total", quote.Total.StringFixed(2)))
	return &session, nil
}

// ConfirmBooking assigns the lowest-numbered free room to a priced session.
// The session is consumed as soon as a room is assigned so the same quote cannot book twice.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, req ConfirmRequest) (*models.BookingConfirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.Sessions.Get(ctx, req.SessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, models.ErrPriceNotCalculated
	}
	if err != nil {
		return nil, err
	}

	quote := session.Quote
	if name := strings.TrimSpace(req.GuestName); name != "" {
		quote.Stay.GuestName = name
	}
	if quote.Stay.GuestName == "" {
		return nil, models.ErrMissingGuestName
	}

	room, found, err := s.Inventory.FindFirstAvailable(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		s.Logger.Warn("Booking rejected, hotel is full", zap.String("session", session.SessionID))
		return nil, models.ErrNoRoomsAvailable
	}

	if err := s.Inventory.Assign(ctx, room.RoomNumber, quote.Stay.Occupancy()); err != nil {
		return nil, err
	}
	// The quote is spent once a room holds it, even if a later step fails.
	if err := s.Sessions.Delete(ctx, session.SessionID); err != nil {
		s.Logger.Warn("Failed to drop confirmed session", zap.String("session", session.SessionID), zap.Error(err))
	}
	if _, err := s.Counter.IncrementCheckIns(ctx); err != nil {
		return nil, fmt.Errorf("room %d assigned but check-in count failed: %w", room.RoomNumber, err)
	}

	receipt, err := s.Payments.ProcessPayment(ctx, quote.Stay.Payment, quote.Total)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("Booking confirmed",
		zap.Int("room", room.RoomNumber),
		zap.String("guest", quote.Stay.GuestName),
		zap.String("payment", receipt.Status))

	return &models.BookingConfirmation{
		RoomNumber: room.RoomNumber,
		GuestName:  quote.Stay.GuestName,
		Quote:      quote,
		Summary:    s.Presentation.Summary(quote, room.RoomNumber),
		Payment:    receipt,
		Message:    fmt.Sprintf(confirmationMessage, room.RoomNumber, quote.Stay.GuestName, s.Presentation.hotelName()),
	}, nil
}

// CancelQuote discards a priced session. Unknown sessions are not an error.
func (s *DefaultBookingService) CancelQuote(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return models.ErrPriceNotCalculated
	}
	return s.Sessions.Delete(ctx, sessionID)
}

package booking

import (
	"context"
	"sync"

	"frontdesk/models"
	"frontdesk/services/counter"
	"frontdesk/services/inventory"
	"frontdesk/services/pricing"

	"go.uber.org/zap"
)

// BookingService is the front desk's action and read surface.
type BookingService interface {
	Bootstrap(ctx context.Context) error
	CalculatePrice(ctx context.Context, stay models.StayRequest) (*models.QuoteSession, error)
	ConfirmBooking(ctx context.Context, req ConfirmRequest) (*models.BookingConfirmation, error)
	CancelQuote(ctx context.Context, sessionID string) error
	CheckoutRoom(ctx context.Context, roomNumber int) (*models.CheckoutResult, error)
	Status(ctx context.Context) (*models.HotelStatus, error)
	Rooms(ctx context.Context) ([]models.Room, error)
	BookedRooms(ctx context.Context) ([]models.BookedRoom, error)
}

// ConfirmRequest confirms a priced session. A non-empty GuestName replaces the
// name captured when the price was calculated.
type ConfirmRequest struct {
	SessionID string
	GuestName string
}

// Presentation controls the human-readable summaries and messages.
type Presentation struct {
	HotelName      string
	CurrencySymbol string
	IncludedItems  []string
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Inventory    inventory.RoomInventory
	Counter      counter.DailyTracker
	Sessions     SessionStore
	Payments     PaymentHandler
	Rates        pricing.Rates
	Presentation Presentation
	Logger       *zap.Logger

	// mu serializes the find-assign-count and lookup-release-count transactions.
	mu sync.Mutex
}

func NewBookingService(
	inv inventory.RoomInventory,
	tracker counter.DailyTracker,
	sessions SessionStore,
	payments PaymentHandler,
	rates pricing.Rates,
	presentation Presentation,
	logger *zap.Logger,
) *DefaultBookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{
		Inventory:    inv,
		Counter:      tracker,
		Sessions:     sessions,
		Payments:     payments,
		Rates:        rates,
		Presentation: presentation,
		Logger:       logger,
	}
}

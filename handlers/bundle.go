package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Health gin.HandlerFunc

	// Dashboard endpoints
	HotelStatus gin.HandlerFunc
	ListRooms   gin.HandlerFunc
	BookedRooms gin.HandlerFunc

	// Booking endpoints
	CalculatePrice gin.HandlerFunc
	ConfirmBooking gin.HandlerFunc
	CancelQuote    gin.HandlerFunc
	CheckoutRoom   gin.HandlerFunc
}

// NewHandlerBundle wires the booking and health handlers into a bundle.
func NewHandlerBundle(bh *BookingHandler, hh *HealthHandler) *HandlerBundle {
	return &HandlerBundle{
		Health:         hh.Health,
		HotelStatus:    bh.HotelStatus,
		ListRooms:      bh.ListRooms,
		BookedRooms:    bh.BookedRooms,
		CalculatePrice: bh.CalculatePrice,
		ConfirmBooking: bh.ConfirmBooking,
		CancelQuote:    bh.CancelQuote,
		CheckoutRoom:   bh.CheckoutRoom,
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HotelStatus handles GET /api/hotel/status.
func (h *BookingHandler) HotelStatus(c *gin.Context) {
	status, err := h.BookingSvc.Status(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// ListRooms handles GET /api/rooms.
func (h *BookingHandler) ListRooms(c *gin.Context) {
	rooms, err := h.BookingSvc.Rooms(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// BookedRooms handles GET /api/rooms/booked.
func (h *BookingHandler) BookedRooms(c *gin.Context) {
	booked, err := h.BookingSvc.BookedRooms(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": booked})
}

package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"frontdesk/models"
	"frontdesk/services/booking"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the front desk actions over HTTP.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Location   *time.Location
}

func NewBookingHandler(svc booking.BookingService, loc *time.Location) *BookingHandler {
	if loc == nil {
		loc = time.Local
	}
	return &BookingHandler{BookingSvc: svc, Location: loc}
}

type quoteRequest struct {
	GuestName string `json:"guestName"`
	CheckIn   string `json:"checkin" binding:"required"`
	CheckOut  string `json:"checkout" binding:"required"`
	RoomType  string `json:"roomType" binding:"required"`
	Guests    int    `json:"guests"`
	Beds      int    `json:"beds"`
	Pillows   int    `json:"pillows"`
	Payment   string `json:"payment" binding:"required"`
}

type confirmRequest struct {
	SessionID string `json:"sessionId"`
	GuestName string `json:"guestName"`
}

type checkoutRequest struct {
	RoomNumber int `json:"roomNumber"`
}

// bindOptionalJSON treats an empty body as a zero-valued request so the
// service can report what is missing.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// CalculatePrice handles POST /api/booking/quote.
func (h *BookingHandler) CalculatePrice(c *gin.Context) {
	var input quoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidRequest, "invalid input", err.Error())
		return
	}

	checkIn, err := models.ParseStayDate(input.CheckIn, h.Location)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidRequest, "invalid check-in date", err.Error())
		return
	}
	checkOut, err := models.ParseStayDate(input.CheckOut, h.Location)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidRequest, "invalid check-out date", err.Error())
		return
	}

	session, err := h.BookingSvc.CalculatePrice(c.Request.Context(), models.StayRequest{
		GuestName: input.GuestName,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		RoomType:  models.RoomType(input.RoomType),
		Guests:    input.Guests,
		Beds:      input.Beds,
		Pillows:   input.Pillows,
		Payment:   models.PaymentMethod(input.Payment),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// ConfirmBooking handles POST /api/booking/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input confirmRequest
	if err := bindOptionalJSON(c, &input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidRequest, "invalid input", err.Error())
		return
	}

	confirmation, err := h.BookingSvc.ConfirmBooking(c.Request.Context(), booking.ConfirmRequest{
		SessionID: input.SessionID,
		GuestName: input.GuestName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	getLogger(c).Info("Room assigned", zap.Int("room", confirmation.RoomNumber))
	c.JSON(http.StatusCreated, confirmation)
}

// CancelQuote handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelQuote(c *gin.Context) {
	if err := h.BookingSvc.CancelQuote(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking session cancelled."})
}

// CheckoutRoom handles POST /api/checkout.
func (h *BookingHandler) CheckoutRoom(c *gin.Context) {
	var input checkoutRequest
	if err := bindOptionalJSON(c, &input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, codeInvalidRequest, "invalid input", err.Error())
		return
	}

	result, err := h.BookingSvc.CheckoutRoom(c.Request.Context(), input.RoomNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

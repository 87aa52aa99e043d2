package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frontdesk/database/kvstore"
	"frontdesk/handlers"
	"frontdesk/models"
	"frontdesk/routes"
	"frontdesk/services/booking"
	"frontdesk/services/counter"
	"frontdesk/services/inventory"
	"frontdesk/services/pricing"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type downStore struct{ kvstore.Store }

func (downStore) Ping(context.Context) error { return errors.New("connection refused") }

func newRouter(t *testing.T, totalRooms int, store kvstore.Store) *gin.Engine {
	t.Helper()
	inv := inventory.NewRoomInventory(store, inventory.Layout{TotalRooms: totalRooms, FirstRoomNumber: 101}, nil)
	tracker := counter.NewDailyTracker(store, time.UTC, nil)
	svc := booking.NewBookingService(
		inv,
		tracker,
		booking.NewKVSessionStore(store, 15*time.Minute),
		booking.NewPaymentHandler(nil),
		pricing.DefaultRates(),
		booking.Presentation{HotelName: "Royal Hotel Booking Services", CurrencySymbol: "₹"},
		nil,
	)
	require.NoError(t, svc.Bootstrap(context.Background()))

	r := gin.New()
	r.Use(utils.ErrorHandler())
	routes.RegisterRoutes(r, handlers.NewHandlerBundle(
		handlers.NewBookingHandler(svc, time.UTC),
		handlers.NewHealthHandler("memory", store),
	))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func referenceQuote(guest string) gin.H {
	return gin.H{
		"guestName": guest,
		"checkin":   "2026-10-14T14:00",
		"checkout":  "2026-10-16T14:00",
		"roomType":  "ac",
		"guests":    2,
		"beds":      1,
		"pillows":   2,
		"payment":   "online",
	}
}

func quote(t *testing.T, r *gin.Engine, guest string) models.QuoteSession {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/booking/quote", referenceQuote(guest))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[models.QuoteSession](t, w)
}

func TestQuoteAndConfirm(t *testing.T) {
	r := newRouter(t, 20, kvstore.NewMemoryStore())

	session := quote(t, r, "Asha")
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, "Total: ₹7952.00 (for 2 nights)", session.PriceDisplay)
	assert.Equal(t, "7952", session.Quote.Total.String())

	w := do(t, r, http.MethodPost, "/api/booking/confirm", gin.H{"sessionId": session.SessionID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	conf := decode[models.BookingConfirmation](t, w)
	assert.Equal(t, 101, conf.RoomNumber)
	assert.Equal(t, models.PaymentStatusPaid, conf.Payment.Status)
	assert.Contains(t, conf.Summary, "Room Assigned: 101")

	w = do(t, r, http.MethodGet, "/api/hotel/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := decode[models.HotelStatus](t, w)
	assert.Equal(t, 20, status.TotalRooms)
	assert.Equal(t, 19, status.AvailableRooms)
	assert.Equal(t, 1, status.BookedRooms)
	assert.Equal(t, 1, status.CheckInsToday)
	assert.NotEmpty(t, status.Date)

	w = do(t, r, http.MethodGet, "/api/rooms/booked", nil)
	require.Equal(t, http.StatusOK, w.Code)
	booked := decode[struct {
		Rooms []models.BookedRoom `json:"rooms"`
	}](t, w)
	assert.Equal(t, []models.BookedRoom{{RoomNumber: 101, GuestName: "Asha", Label: "Room 101 - Asha"}}, booked.Rooms)
}

func TestQuoteValidation(t *testing.T) {
	r := newRouter(t, 20, kvstore.NewMemoryStore())

	cases := []struct {
		name   string
		mutate func(gin.H)
		code   string
	}{
		{"missing checkin", func(b gin.H) { delete(b, "checkin") }, "InvalidRequest"},
		{"unparseable date", func(b gin.H) { b["checkout"] = "next tuesday" }, "InvalidRequest"},
		{"checkout before checkin", func(b gin.H) { b["checkout"] = "2026-10-13T14:00" }, models.CodeInvalidDateRange},
		{"same instant", func(b gin.H) { b["checkout"] = "2026-10-14T14:00" }, models.CodeInvalidDateRange},
		{"unknown room type", func(b gin.H) { b["roomType"] = "suite" }, models.CodeInvalidStay},
		{"unknown payment", func(b gin.H) { b["payment"] = "cheque" }, models.CodeInvalidStay},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := referenceQuote("Asha")
			tc.mutate(body)
			w := do(t, r, http.MethodPost, "/api/booking/quote", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.code, decode[utils.ErrorResponse](t, w).Code)
		})
	}
}

func TestConfirmErrors(t *testing.T) {
	r := newRouter(t, 1, kvstore.NewMemoryStore())

	w := do(t, r, http.MethodPost, "/api/booking/confirm", nil)
	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
	resp := decode[utils.ErrorResponse](t, w)
	assert.Equal(t, models.CodePriceNotCalculated, resp.Code)
	assert.Equal(t, "Please calculate price before confirming.", resp.Message)

	nameless := quote(t, r, "")
	w = do(t, r, http.MethodPost, "/api/booking/confirm", gin.H{"sessionId": nameless.SessionID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.CodeMissingGuestName, decode[utils.ErrorResponse](t, w).Code)

	w = do(t, r, http.MethodPost, "/api/booking/confirm", gin.H{"sessionId": nameless.SessionID, "guestName": "Ravi"})
	require.Equal(t, http.StatusCreated, w.Code)

	second := quote(t, r, "Meera")
	w = do(t, r, http.MethodPost, "/api/booking/confirm", gin.H{"sessionId": second.SessionID})
	assert.Equal(t, http.StatusConflict, w.Code)
	resp = decode[utils.ErrorResponse](t, w)
	assert.Equal(t, models.CodeNoRoomsAvailable, resp.Code)
	assert.Equal(t, "All rooms are currently booked.", resp.Message)
}

func TestCancelQuote(t *testing.T) {
	r := newRouter(t, 20, kvstore.NewMemoryStore())
	session := quote(t, r, "Asha")

	w := do(t, r, http.MethodDelete, "/api/booking/session/"+session.SessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, "/api/booking/confirm", gin.H{"sessionId": session.SessionID})
	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
}

func TestCheckout(t *testing.T) {
	r := newRouter(t, 20, kvstore.NewMemoryStore())
	session := quote(t, r, "Asha")
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/api/booking/confirm", gin.H{"sessionId": session.SessionID}).Code)

	w := do(t, r, http.MethodPost, "/api/checkout", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.CodeNoRoomSelected, decode[utils.ErrorResponse](t, w).Code)

	w = do(t, r, http.MethodPost, "/api/checkout", gin.H{"roomNumber": 105})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.CodeRoomNotFound, decode[utils.ErrorResponse](t, w).Code)

	w = do(t, r, http.MethodPost, "/api/checkout", gin.H{"roomNumber": 101})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[models.CheckoutResult](t, w)
	assert.Equal(t, "Asha", res.GuestName)
	assert.Equal(t, "Room 101 has been checked out successfully!", res.Message)

	status := decode[models.HotelStatus](t, do(t, r, http.MethodGet, "/api/hotel/status", nil))
	assert.Equal(t, 20, status.AvailableRooms)
	assert.Equal(t, 1, status.CheckOutsToday)
}

func TestListRooms(t *testing.T) {
	r := newRouter(t, 3, kvstore.NewMemoryStore())
	w := do(t, r, http.MethodGet, "/api/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[struct {
		Rooms []models.Room `json:"rooms"`
	}](t, w)
	require.Len(t, body.Rooms, 3)
	for i, room := range body.Rooms {
		assert.Equal(t, 101+i, room.RoomNumber)
		assert.Equal(t, models.RoomAvailable, room.Status)
	}
}

func TestHealth(t *testing.T) {
	store := kvstore.NewMemoryStore()
	w := do(t, newRouter(t, 1, store), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, newRouter(t, 1, downStore{Store: store}), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestHealthIncludesPreviousSnapshot(t *testing.T) {
	store := kvstore.NewMemoryStore()
	utils.CheckHealth(context.Background(), "memory", downStore{Store: store})

	w := do(t, newRouter(t, 1, store), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[struct {
		Status   string              `json:"status"`
		Health   utils.HealthStatus  `json:"health"`
		Previous *utils.HealthStatus `json:"previous"`
	}](t, w)
	assert.Equal(t, "ok", body.Status)
	assert.True(t, body.Health.Store)
	require.NotNil(t, body.Previous)
	assert.False(t, body.Previous.Store)
	assert.Equal(t, "connection refused", body.Previous.Error)
}

package models

// BookingConfirmation is returned once a room has been assigned.
type BookingConfirmation struct {
	RoomNumber int            `json:"roomNumber"`
	GuestName  string         `json:"guestName"`
	Quote      Quote          `json:"quote"`
	Summary    string         `json:"summary"`
	Payment    PaymentReceipt `json:"payment"`
	Message    string         `json:"message"`
}

// CheckoutResult is returned once a booked room has been released.
type CheckoutResult struct {
	RoomNumber int    `json:"roomNumber"`
	GuestName  string `json:"guestName"`
	Message    string `json:"message"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StayRequest carries everything the desk enters for a single booking attempt.
type StayRequest struct {
	GuestName string        `json:"guestName"`
	CheckIn   time.Time     `json:"checkin"`
	CheckOut  time.Time     `json:"checkout"`
	RoomType  RoomType      `json:"roomType"`
	Guests    int           `json:"guests"`
	Beds      int           `json:"beds"`
	Pillows   int           `json:"pillows"`
	Payment   PaymentMethod `json:"payment"`
}

// Occupancy converts the request into the fields stored on a booked room.
func (s StayRequest) Occupancy() Occupancy {
	return Occupancy{
		GuestName: s.GuestName,
		CheckIn:   NewStayDate(s.CheckIn),
		CheckOut:  NewStayDate(s.CheckOut),
		RoomType:  s.RoomType,
		Guests:    s.Guests,
		Beds:      s.Beds,
		Pillows:   s.Pillows,
		Payment:   s.Payment,
	}
}

// Quote is the itemized price breakdown for a stay. Amounts are unrounded.
type Quote struct {
	Stay         StayRequest     `json:"stay"`
	Nights       int             `json:"nights"`
	RoomRate     decimal.Decimal `json:"roomRate"`
	RoomCharge   decimal.Decimal `json:"roomCharge"`
	BedCharge    decimal.Decimal `json:"bedCharge"`
	PillowCharge decimal.Decimal `json:"pillowCharge"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	TaxPercent   decimal.Decimal `json:"taxPercent"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
}

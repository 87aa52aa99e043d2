// Package pricing turns stay parameters into an itemized charge breakdown.
package pricing

import (
	"time"

	"frontdesk/models"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

var hundred = decimal.NewFromInt(100)

// Rates is the tariff: nightly room rates by type, a nightly extra-bed rate,
// a one-off per-pillow rate and a flat tax percentage.
type Rates struct {
	AC         decimal.Decimal
	NonAC      decimal.Decimal
	Bed        decimal.Decimal
	Pillow     decimal.Decimal
	TaxPercent decimal.Decimal
}

func DefaultRates() Rates {
	return Rates{
		AC:         decimal.NewFromInt(3000),
		NonAC:      decimal.NewFromInt(2000),
		Bed:        decimal.NewFromInt(500),
		Pillow:     decimal.NewFromInt(50),
		TaxPercent: decimal.NewFromInt(12),
	}
}

// NewRates builds a tariff from configured amounts.
func NewRates(ac, nonAC, bed, pillow, taxPercent float64) Rates {
	return Rates{
		AC:         decimal.NewFromFloat(ac),
		NonAC:      decimal.NewFromFloat(nonAC),
		Bed:        decimal.NewFromFloat(bed),
		Pillow:     decimal.NewFromFloat(pillow),
		TaxPercent: decimal.NewFromFloat(taxPercent),
	}
}

// RoomRate returns the nightly rate for a room type.
func (r Rates) RoomRate(t models.RoomType) (decimal.Decimal, bool) {
	switch t {
	case models.RoomTypeAC:
		return r.AC, true
	case models.RoomTypeNonAC:
		return r.NonAC, true
	}
	return decimal.Zero, false
}

// Nights bills any started day as a full night. Ranges that are not strictly
// positive are rejected.
func Nights(checkIn, checkOut time.Time) (int, error) {
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 0, models.ErrInvalidDateRange
	}
	nights := int(d / day)
	if d%day != 0 {
		nights++
	}
	if nights < 1 {
		nights = 1
	}
	return nights, nil
}

// Calculate prices a stay. Beds are charged per night, pillows once.
func Calculate(rates Rates, stay models.StayRequest) (models.Quote, error) {
	nights, err := Nights(stay.CheckIn, stay.CheckOut)
	if err != nil {
		return models.Quote{}, err
	}
	rate, ok := rates.RoomRate(stay.RoomType)
	if !ok {
		return models.Quote{}, models.NewDomainErrorf(models.CodeInvalidStay, "Unknown room type %q.", stay.RoomType)
	}
	if stay.Payment != models.PaymentCash && stay.Payment != models.PaymentOnline {
		return models.Quote{}, models.NewDomainErrorf(models.CodeInvalidStay, "Unknown payment method %q.", stay.Payment)
	}
	if stay.Beds < 0 || stay.Pillows < 0 || stay.Guests < 0 {
		return models.Quote{}, models.NewDomainError(models.CodeInvalidStay, "Guests, beds and pillows cannot be negative.")
	}

	n := decimal.NewFromInt(int64(nights))
	roomCharge := rate.Mul(n)
	bedCharge := rates.Bed.Mul(decimal.NewFromInt(int64(stay.Beds))).Mul(n)
	pillowCharge := rates.Pillow.Mul(decimal.NewFromInt(int64(stay.Pillows)))
	subtotal := roomCharge.Add(bedCharge).Add(pillowCharge)
	tax := subtotal.Mul(rates.TaxPercent).Div(hundred)

	return models.Quote{
		Stay:         stay,
		Nights:       nights,
		RoomRate:     rate,
		RoomCharge:   roomCharge,
		BedCharge:    bedCharge,
		PillowCharge: pillowCharge,
		Subtotal:     subtotal,
		TaxPercent:   rates.TaxPercent,
		Tax:          tax,
		Total:        subtotal.Add(tax),
	}, nil
}

package pricing

import (
	"testing"
	"time"

	"frontdesk/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checkIn = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func stay(out time.Time) models.StayRequest {
	return models.StayRequest{
		GuestName: "Asha",
		CheckIn:   checkIn,
		CheckOut:  out,
		RoomType:  models.RoomTypeAC,
		Guests:    2,
		Beds:      1,
		Pillows:   2,
		Payment:   models.PaymentOnline,
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestCalculate_ReferenceScenario(t *testing.T) {
	q, err := Calculate(DefaultRates(), stay(checkIn.AddDate(0, 0, 2)))
	require.NoError(t, err)

	assert.Equal(t, 2, q.Nights)
	assertDecimal(t, "6000", q.RoomCharge)
	assertDecimal(t, "1000", q.BedCharge)
	assertDecimal(t, "100", q.PillowCharge)
	assertDecimal(t, "7100", q.Subtotal)
	assertDecimal(t, "852", q.Tax)
	assertDecimal(t, "7952", q.Total)
	assert.Equal(t, "7952.00", q.Total.StringFixed(2))
	assert.Equal(t, "852.00", q.Tax.StringFixed(2))
	assert.Equal(t, "Asha", q.Stay.GuestName)
}

func TestCalculate_NonAC(t *testing.T) {
	s := stay(checkIn.AddDate(0, 0, 1))
	s.RoomType = models.RoomTypeNonAC
	s.Beds = 0
	s.Pillows = 0

	q, err := Calculate(DefaultRates(), s)
	require.NoError(t, err)
	assertDecimal(t, "2000", q.RoomCharge)
	assertDecimal(t, "240", q.Tax)
	assertDecimal(t, "2240", q.Total)
}

func TestCalculate_PillowsChargedOnceBedsPerNight(t *testing.T) {
	s := stay(checkIn.AddDate(0, 0, 3))
	s.Beds = 2
	s.Pillows = 3

	q, err := Calculate(DefaultRates(), s)
	require.NoError(t, err)
	assertDecimal(t, "3000", q.BedCharge)
	assertDecimal(t, "150", q.PillowCharge)
}

func TestCalculate_FractionalTaxKeptUntilPresentation(t *testing.T) {
	rates := DefaultRates()
	rates.Pillow = decimal.RequireFromString("33.33")
	s := stay(checkIn.AddDate(0, 0, 1))
	s.Beds = 0
	s.Pillows = 1

	q, err := Calculate(rates, s)
	require.NoError(t, err)
	// 3033.33 * 12% = 363.9996
	assertDecimal(t, "363.9996", q.Tax)
	assert.Equal(t, "364.00", q.Tax.StringFixed(2))
}

func TestCalculate_RejectsNonPositiveRange(t *testing.T) {
	_, err := Calculate(DefaultRates(), stay(checkIn))
	assert.ErrorIs(t, err, models.ErrInvalidDateRange)

	_, err = Calculate(DefaultRates(), stay(checkIn.Add(-time.Hour)))
	assert.ErrorIs(t, err, models.ErrInvalidDateRange)
}

func TestCalculate_RejectsUnknownRoomType(t *testing.T) {
	s := stay(checkIn.AddDate(0, 0, 1))
	s.RoomType = "suite"

	_, err := Calculate(DefaultRates(), s)
	assert.ErrorIs(t, err, models.ErrInvalidStay)
}

func TestCalculate_RejectsUnknownPayment(t *testing.T) {
	s := stay(checkIn.AddDate(0, 0, 1))
	s.Payment = "card"

	_, err := Calculate(DefaultRates(), s)
	assert.ErrorIs(t, err, models.ErrInvalidStay)
}

func TestCalculate_RejectsNegativeExtras(t *testing.T) {
	s := stay(checkIn.AddDate(0, 0, 1))
	s.Beds = -1

	_, err := Calculate(DefaultRates(), s)
	assert.ErrorIs(t, err, models.ErrInvalidStay)
}

func TestNights(t *testing.T) {
	cases := []struct {
		name string
		d    time.Duration
		want int
	}{
		{"one minute", time.Minute, 1},
		{"exactly one day", 24 * time.Hour, 1},
		{"twenty five hours", 25 * time.Hour, 2},
		{"two days", 48 * time.Hour, 2},
		{"two days and a second", 48*time.Hour + time.Second, 3},
		{"a week", 7 * 24 * time.Hour, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := Nights(checkIn, checkIn.Add(tc.d))
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}
}

func TestNights_MatchesCeilOfHours(t *testing.T) {
	for hours := 1; hours <= 24*10; hours++ {
		n, err := Nights(checkIn, checkIn.Add(time.Duration(hours)*time.Hour))
		require.NoError(t, err)
		want := (hours + 23) / 24
		assert.Equal(t, want, n, "hours=%d", hours)
	}
}

func TestNewRatesMatchesDefaults(t *testing.T) {
	r := NewRates(3000, 2000, 500, 50, 12)
	d := DefaultRates()
	assert.True(t, r.AC.Equal(d.AC))
	assert.True(t, r.NonAC.Equal(d.NonAC))
	assert.True(t, r.Bed.Equal(d.Bed))
	assert.True(t, r.Pillow.Equal(d.Pillow))
	assert.True(t, r.TaxPercent.Equal(d.TaxPercent))

	fractional := NewRates(2999.99, 0, 0, 0, 12.5)
	assert.Equal(t, "2999.99", fractional.AC.String())
	assert.Equal(t, "12.5", fractional.TaxPercent.String())
}

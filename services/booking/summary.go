package booking

import (
	"fmt"
	"strings"

	"frontdesk/models"

	"github.com/shopspring/decimal"
)

const (
	summaryHeader      = "------ Booking Summary ------"
	summaryDateLayout  = "2006-01-02T15:04"
	defaultCurrencySym = "₹"
)

func (p Presentation) money(d decimal.Decimal) string {
	sym := p.CurrencySymbol
	if sym == "" {
		sym = defaultCurrencySym
	}
	return sym + d.StringFixed(2)
}

// PriceDisplay renders the one-line total, e.g. "Total: ₹7952.00 (for 2 nights)".
func (p Presentation) PriceDisplay(q models.Quote) string {
	plural := ""
	if q.Nights > 1 {
		plural = "s"
	}
	return fmt.Sprintf("Total: %s (for %d night%s)", p.money(q.Total), q.Nights, plural)
}

// Summary renders the itemized booking summary. roomNumber is zero until a
// room has been assigned.
func (p Presentation) Summary(q models.Quote, roomNumber int) string {
	var b strings.Builder
	s := q.Stay

	b.WriteString(summaryHeader + "\n")
	if roomNumber > 0 {
		fmt.Fprintf(&b, "Room Assigned: %d\n", roomNumber)
	}
	fmt.Fprintf(&b, "Guest Name: %s\n", s.GuestName)
	fmt.Fprintf(&b, "Check-in: %s\n", s.CheckIn.Format(summaryDateLayout))
	fmt.Fprintf(&b, "Check-out: %s\n", s.CheckOut.Format(summaryDateLayout))
	fmt.Fprintf(&b, "Nights: %d\n", q.Nights)
	fmt.Fprintf(&b, "Room: %s\n", strings.ToUpper(string(s.RoomType)))
	fmt.Fprintf(&b, "Extra beds: %d\n", s.Beds)
	fmt.Fprintf(&b, "Extra pillows: %d\n\n", s.Pillows)

	fmt.Fprintf(&b, "Room charge: %s\n", p.money(q.RoomCharge))
	fmt.Fprintf(&b, "Beds charge: %s\n", p.money(q.BedCharge))
	fmt.Fprintf(&b, "Pillows charge: %s\n", p.money(q.PillowCharge))
	fmt.Fprintf(&b, "Tax (%s%%): %s\n", q.TaxPercent.String(), p.money(q.Tax))
	fmt.Fprintf(&b, "Total payable: %s\n\n", p.money(q.Total))

	fmt.Fprintf(&b, "Payment method: %s", PaymentMethodLabel(s.Payment))
	if len(p.IncludedItems) > 0 {
		fmt.Fprintf(&b, "\n\nIncluded items: %s.", strings.Join(p.IncludedItems, ", "))
	}
	return b.String()
}

func (p Presentation) hotelName() string {
	if p.HotelName == "" {
		return "our hotel"
	}
	return p.HotelName
}

package utils

// Store keys owned by the inventory and counter repositories.
const (
	RoomsKey         = "rooms"
	DailyCountersKey = "dailyData"
)

// BookingSessionPrefix namespaces price quotes awaiting confirmation.
const BookingSessionPrefix = "booking:session:"

// DayKeyLayout matches the per-day counter key, e.g. "Wed Oct 14 2026".
const DayKeyLayout = "Mon Jan 02 2006"

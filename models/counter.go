package models

// DailyCounter tallies completed bookings and checkouts for one calendar day.
type DailyCounter struct {
	CheckIns  int `json:"checkIns"`
	CheckOuts int `json:"checkOuts"`
}

// DailyCounters maps a day key (see counter.DateKey) to its tally.
type DailyCounters map[string]DailyCounter

// HotelStatus is the read-only snapshot rendered by the front desk dashboard.
type HotelStatus struct {
	Date           string `json:"date"`
	TotalRooms     int    `json:"totalRooms"`
	AvailableRooms int    `json:"availableRooms"`
	BookedRooms    int    `json:"bookedRooms"`
	CheckInsToday  int    `json:"checkInsToday"`
	CheckOutsToday int    `json:"checkOutsToday"`
}

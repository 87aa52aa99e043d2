package models

type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomBooked    RoomStatus = "booked"
)

type RoomType string

const (
	RoomTypeAC    RoomType = "ac"
	RoomTypeNonAC RoomType = "nonac"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
)

// Occupancy holds the guest fields written onto a room when it is booked.
type Occupancy struct {
	GuestName string        `json:"guestName"`
	CheckIn   StayDate      `json:"checkin"`
	CheckOut  StayDate      `json:"checkout"`
	RoomType  RoomType      `json:"roomType"`
	Guests    int           `json:"guests"`
	Beds      int           `json:"beds"`
	Pillows   int           `json:"pillows"`
	Payment   PaymentMethod `json:"payment"`
}

// Room is one bookable unit. RoomNumber never changes after seeding.
type Room struct {
	RoomNumber int        `json:"roomNumber"`
	Status     RoomStatus `json:"status"`
	Occupancy
}

// NewAvailableRoom returns the reset record for a room number.
func NewAvailableRoom(number int) Room {
	return Room{RoomNumber: number, Status: RoomAvailable}
}

func (r Room) IsAvailable() bool {
	return r.Status == RoomAvailable
}

func (r Room) IsBooked() bool {
	return r.Status == RoomBooked
}

// BookedRoom is the checkout selection entry for an occupied room.
type BookedRoom struct {
	RoomNumber int    `json:"roomNumber"`
	GuestName  string `json:"guestName"`
	Label      string `json:"label"`
}

package models

import "fmt"

const (
	CodeInvalidDateRange   = "InvalidDateRange"
	CodeInvalidStay        = "InvalidStay"
	CodeMissingGuestName   = "MissingGuestName"
	CodePriceNotCalculated = "PriceNotCalculated"
	CodeNoRoomsAvailable   = "NoRoomsAvailable"
	CodeNoRoomSelected     = "NoRoomSelected"
	CodeRoomNotFound       = "RoomNotFound"
)

// DomainError is a user-recoverable failure of a single front desk action.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches on Code so wrapped or re-messaged errors still compare equal to the sentinels.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

func NewDomainError(code, msg string) error {
	return &DomainError{Code: code, Message: msg}
}

func NewDomainErrorf(code, format string, args ...any) error {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrInvalidDateRange   = NewDomainError(CodeInvalidDateRange, "Check-out must be after check-in.")
	ErrInvalidStay        = NewDomainError(CodeInvalidStay, "Invalid stay details.")
	ErrMissingGuestName   = NewDomainError(CodeMissingGuestName, "Please enter guest name.")
	ErrPriceNotCalculated = NewDomainError(CodePriceNotCalculated, "Please calculate price before confirming.")
	ErrNoRoomsAvailable   = NewDomainError(CodeNoRoomsAvailable, "All rooms are currently booked.")
	ErrNoRoomSelected     = NewDomainError(CodeNoRoomSelected, "Please select a room to check out.")
	ErrRoomNotFound       = NewDomainError(CodeRoomNotFound, "Room not found.")
)

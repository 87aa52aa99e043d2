package models

import "time"

// QuoteSession is a priced booking attempt waiting for confirmation.
type QuoteSession struct {
	SessionID    string    `json:"sessionId"`
	Quote        Quote     `json:"quote"`
	Summary      string    `json:"summary"`
	PriceDisplay string    `json:"priceDisplay"`
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

func (s QuoteSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// internal/models/notification.go
package models

// Notification is an event directed at one artist. Read is write-only
// today: no code path flips it to true. Kept as-is; it stays part of the
// durable format.
type Notification struct {
	ID       string `json:"id"`
	ArtistID string `json:"artistId"`
	Message  string `json:"message"`
	Date     int64  `json:"date"`
	Read     bool   `json:"read"`
}

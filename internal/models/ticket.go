// internal/models/ticket.go
package models

type TicketLocation struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Place   string `json:"place"`
	MapsURL string `json:"mapsUrl"`
}

// Ticket is an event-entry product. EventDate is the event's occurrence
// time; once it has passed the ticket is expired and lazily purged on read.
// Stock of 0 with present=false means unlimited.
type Ticket struct {
	ID              string         `json:"id"`
	ArtistID        string         `json:"artistId"`
	EventName       string         `json:"eventName"`
	PerformerName   string         `json:"performerName"`
	Images          []string       `json:"images"`
	Price           float64        `json:"price"`
	DiscountPercent float64        `json:"discountPercent"`
	EventDate       int64          `json:"eventDate"`
	Location        TicketLocation `json:"location"`
	RefundPolicy    string         `json:"refundPolicy"`
	PublishedAt     int64          `json:"publishedAt"`
	Stock           *int           `json:"stock,omitempty"`
}

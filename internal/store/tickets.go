// internal/store/tickets.go
package store

import (
	"github.com/soundsmarket/sounds-backend/internal/models"
)

// FilterActive keeps only tickets whose event is still ahead of now.
// Strictly greater-than: a ticket whose eventDate equals now is already
// expired.
func FilterActive(tickets []models.Ticket, now int64) []models.Ticket {
	active := make([]models.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.EventDate > now {
			active = append(active, t)
		}
	}
	return active
}

// Tickets returns the ticket collection after the expiry sweep. Reading
// tickets is not mutation-free: when the sweep drops anything, the
// filtered collection is persisted immediately. Expired tickets are never
// observable; absence from storage is the only deletion marker.
func (s *Store) Tickets() ([]models.Ticket, error) {
	tickets, err := readList[models.Ticket](s, keyTickets)
	if err != nil {
		return nil, err
	}

	active := FilterActive(tickets, s.NowMillis())
	if len(active) != len(tickets) {
		s.log.WithField("expired", len(tickets)-len(active)).Debug("purged expired tickets")
		if err := writeList(s, keyTickets, active); err != nil {
			return nil, err
		}
	}
	return active, nil
}

func (s *Store) InsertTicket(ticket models.Ticket) (models.Ticket, error) {
	tickets, err := s.Tickets()
	if err != nil {
		return models.Ticket{}, err
	}

	tickets = append(tickets, ticket)
	if err := writeList(s, keyTickets, tickets); err != nil {
		return models.Ticket{}, err
	}
	return ticket, nil
}

func (s *Store) UpdateTicket(ticket models.Ticket) error {
	tickets, err := s.Tickets()
	if err != nil {
		return err
	}

	for i := range tickets {
		if tickets[i].ID == ticket.ID {
			tickets[i] = ticket
			return writeList(s, keyTickets, tickets)
		}
	}
	return nil
}

func (s *Store) DeleteTicket(id string) error {
	tickets, err := s.Tickets()
	if err != nil {
		return err
	}

	kept := tickets[:0]
	for _, t := range tickets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return writeList(s, keyTickets, kept)
}

// internal/store/notifications.go
package store

import (
	"sort"

	"github.com/soundsmarket/sounds-backend/internal/models"
)

// NotificationsFor returns the artist's notifications newest first.
// Equal dates have no defined relative order.
func (s *Store) NotificationsFor(artistID string) ([]models.Notification, error) {
	all, err := readList[models.Notification](s, keyNotifications)
	if err != nil {
		return nil, err
	}

	mine := make([]models.Notification, 0, len(all))
	for _, n := range all {
		if n.ArtistID == artistID {
			mine = append(mine, n)
		}
	}
	sort.Slice(mine, func(i, j int) bool {
		return mine[i].Date > mine[j].Date
	})
	return mine, nil
}

func (s *Store) AppendNotification(n models.Notification) error {
	all, err := readList[models.Notification](s, keyNotifications)
	if err != nil {
		return err
	}
	all = append(all, n)
	return writeList(s, keyNotifications, all)
}

// DeleteNotification removes exactly the (artistID, id) pair. A
// notification with the same id but a different recipient is left alone.
func (s *Store) DeleteNotification(artistID, id string) error {
	all, err := readList[models.Notification](s, keyNotifications)
	if err != nil {
		return err
	}

	kept := all[:0]
	for _, n := range all {
		if n.ArtistID == artistID && n.ID == id {
			continue
		}
		kept = append(kept, n)
	}
	return writeList(s, keyNotifications, kept)
}

func (s *Store) DeleteAllNotifications(artistID string) error {
	all, err := readList[models.Notification](s, keyNotifications)
	if err != nil {
		return err
	}

	kept := all[:0]
	for _, n := range all {
		if n.ArtistID != artistID {
			kept = append(kept, n)
		}
	}
	return writeList(s, keyNotifications, kept)
}

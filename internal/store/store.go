// internal/store/store.go
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/soundsmarket/sounds-backend/internal/storage"
)

// Blob keys. These names are part of the durable format; renaming one
// orphans existing data.
const (
	keyUsers         = "sounds_users"
	keyProducts      = "sounds_products"
	keyTickets       = "sounds_tickets"
	keySales         = "sounds_sales"
	keyCurrentUser   = "sounds_current_user"
	keyNotifications = "sounds_notifications"
)

// Store exposes the record collections and the session slot as typed views
// over the blob store. Every read loads the whole collection and every
// mutation writes it back; the data is small and denormalized by design.
//
// There is no cross-process locking: read-modify-write sequences are only
// safe because callers are single sequential consumers of this layer.
type Store struct {
	backend storage.Store
	log     *logrus.Entry
	now     func() time.Time
}

type Option func(*Store)

// WithClock overrides the time source. Tests use it to pin "now" for the
// ticket sweep, the loyalty date math and the rolling sales window.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(backend storage.Store, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		log:     logrus.WithField("component", "store"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Now() time.Time {
	return s.now()
}

// NowMillis is the current time in epoch milliseconds, the unit every
// stored timestamp uses.
func (s *Store) NowMillis() int64 {
	return s.now().UnixMilli()
}

func readList[T any](s *Store, key string) ([]T, error) {
	data, ok, err := s.backend.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}

	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return list, nil
}

func writeList[T any](s *Store, key string, list []T) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.backend.Set(key, data)
}

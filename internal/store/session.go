// internal/store/session.go
package store

import (
	"encoding/json"
	"fmt"

	"github.com/soundsmarket/sounds-backend/internal/models"
)

// CurrentUser returns the session slot's user, or nil when logged out.
func (s *Store) CurrentUser() (*models.User, error) {
	data, ok, err := s.backend.Get(keyCurrentUser)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &user, nil
}

// SetCurrentUser writes the session slot; nil logs out.
func (s *Store) SetCurrentUser(user *models.User) error {
	if user == nil {
		return s.backend.Remove(keyCurrentUser)
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return s.backend.Set(keyCurrentUser, data)
}

// mirrorSession overwrites the session copy when the updated record is the
// current user, keeping the slot consistent with storage inside the same
// logical update.
func (s *Store) mirrorSession(user models.User) error {
	current, err := s.CurrentUser()
	if err != nil {
		return err
	}
	if current == nil || current.ID != user.ID {
		return nil
	}
	return s.SetCurrentUser(&user)
}

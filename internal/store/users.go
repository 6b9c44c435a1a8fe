// internal/store/users.go
package store

import (
	"math/rand"
	"unicode"

	"github.com/soundsmarket/sounds-backend/internal/models"
)

func (s *Store) Users() ([]models.User, error) {
	return readList[models.User](s, keyUsers)
}

// InsertUser appends a user after insert-time normalization: votes and
// loyalty points start at zero, and a referral code is generated when the
// caller supplied none. Returns the record as stored.
func (s *Store) InsertUser(user models.User) (models.User, error) {
	users, err := s.Users()
	if err != nil {
		return models.User{}, err
	}

	user.Votes = 0
	user.LoyaltyPoints = 0
	if user.ReferralCode == "" {
		user.ReferralCode = generateReferralCode(user.Name)
	}

	users = append(users, user)
	if err := writeList(s, keyUsers, users); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateUser replaces the stored record with the same id. An absent id is
// a no-op: nothing is written and nothing is inserted. When the updated
// record is the current session's user, the session slot is rewritten in
// the same call so the in-memory copy cannot diverge from storage.
func (s *Store) UpdateUser(user models.User) error {
	users, err := s.Users()
	if err != nil {
		return err
	}

	found := false
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	if err := writeList(s, keyUsers, users); err != nil {
		return err
	}
	return s.mirrorSession(user)
}

func (s *Store) DeleteUser(id string) error {
	users, err := s.Users()
	if err != nil {
		return err
	}

	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return writeList(s, keyUsers, kept)
}

func (s *Store) UserByID(id string) (models.User, bool, error) {
	users, err := s.Users()
	if err != nil {
		return models.User{}, false, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

func (s *Store) UserByEmail(email string) (models.User, bool, error) {
	users, err := s.Users()
	if err != nil {
		return models.User{}, false, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

func (s *Store) UserByReferralCode(code string) (models.User, bool, error) {
	users, err := s.Users()
	if err != nil {
		return models.User{}, false, err
	}
	for _, u := range users {
		if u.ReferralCode != "" && u.ReferralCode == code {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

// generateReferralCode builds a short shareable code from the first four
// letters of the name plus a numeric suffix.
func generateReferralCode(name string) string {
	var letters []rune
	for _, r := range name {
		if !unicode.IsSpace(r) {
			letters = append(letters, unicode.ToUpper(r))
		}
		if len(letters) == 4 {
			break
		}
	}

	return string(letters) + randDigits(4)
}

func randDigits(n int) string {
	const digits = "0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = digits[rand.Intn(len(digits))]
	}
	return string(b)
}

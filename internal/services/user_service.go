// internal/services/user_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/soundsmarket/sounds-backend/internal/config"
	"github.com/soundsmarket/sounds-backend/internal/models"
	"github.com/soundsmarket/sounds-backend/internal/store"
	"github.com/soundsmarket/sounds-backend/internal/utils"
)

// UserService covers profile maintenance and the account deletion cascade.
type UserService struct {
	store *store.Store
	cfg   *config.Config
	log   *logrus.Entry
}

type UpdateProfileRequest struct {
	Name                   *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Password               *string `json:"password,omitempty" validate:"omitempty,min=4"`
	ProfilePictureURL      *string `json:"profilePictureUrl,omitempty"`
	PaymentAPIKey          *string `json:"paymentApiKey,omitempty"`
	PaymentAPIConnected    *bool   `json:"paymentApiConnected,omitempty"`
	HasCompletedOnboarding *bool   `json:"hasCompletedOnboarding,omitempty"`
}

func NewUserService(st *store.Store, cfg *config.Config) *UserService {
	return &UserService{
		store: st,
		cfg:   cfg,
		log:   logrus.WithField("service", "user"),
	}
}

func (s *UserService) UserByID(id string) (*models.User, error) {
	user, found, err := s.store.UserByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// UpdateProfile applies the provided fields onto the stored record. Role,
// tier, counters and referral bindings are not editable here.
func (s *UserService) UpdateProfile(userID string, req *UpdateProfileRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, found, err := s.store.UserByID(userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrUserNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		user.Password = *req.Password
	}
	if req.ProfilePictureURL != nil {
		user.ProfilePictureURL = *req.ProfilePictureURL
	}
	if req.PaymentAPIKey != nil {
		user.PaymentAPIKey = *req.PaymentAPIKey
	}
	if req.PaymentAPIConnected != nil {
		user.PaymentAPIConnected = *req.PaymentAPIConnected
	}
	if req.HasCompletedOnboarding != nil {
		user.HasCompletedOnboarding = *req.HasCompletedOnboarding
	}

	if err := s.store.UpdateUser(user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ReferralLink builds the shareable invite URL for a user's code.
func (s *UserService) ReferralLink(userID string) (string, error) {
	user, found, err := s.store.UserByID(userID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrUserNotFound
	}
	return fmt.Sprintf("%s?ref=%s", s.cfg.Frontend.BaseURL, user.ReferralCode), nil
}

// DeleteAccountData removes the user's catalog, then the user record, then
// clears the session outright. Sales receipts and other users' libraries
// keep their references; those records describe past transactions, not the
// account.
func (s *UserService) DeleteAccountData(userID string) error {
	products, err := s.store.Products()
	if err != nil {
		return err
	}
	for _, p := range products {
		if p.ArtistID != userID {
			continue
		}
		if err := s.store.DeleteProduct(p.ID); err != nil {
			return err
		}
	}

	tickets, err := s.store.Tickets()
	if err != nil {
		return err
	}
	for _, t := range tickets {
		if t.ArtistID != userID {
			continue
		}
		if err := s.store.DeleteTicket(t.ID); err != nil {
			return err
		}
	}

	if err := s.store.DeleteUser(userID); err != nil {
		return err
	}

	s.log.WithField("user_id", userID).Info("account data deleted")

	// The session is cleared regardless of who was signed in.
	return s.store.SetCurrentUser(nil)
}

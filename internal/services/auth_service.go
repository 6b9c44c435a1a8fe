// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/soundsmarket/sounds-backend/internal/config"
	"github.com/soundsmarket/sounds-backend/internal/models"
	"github.com/soundsmarket/sounds-backend/internal/store"
	"github.com/soundsmarket/sounds-backend/internal/utils"
)

// Artist accounts start on a 3-day trial.
const trialDuration = int64(3) * 24 * 60 * 60 * 1000

var (
	ErrEmailTaken         = errors.New("cet email est déjà utilisé")
	ErrInvalidCredentials = errors.New("email ou mot de passe incorrect")
	ErrUserNotFound       = errors.New("aucun compte ne correspond à cet email")
)

// AuthService owns registration, login, logout and the two-step password
// reset. Passwords are stored and compared in plain form — the existing
// mechanism, preserved, not hardened.
type AuthService struct {
	store *store.Store
	cfg   *config.Config
}

type RegisterRequest struct {
	Name              string `json:"name" validate:"required,min=2,max=100"`
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=4"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
	// ReferralCode is only honored on buyer registration; unknown codes
	// are silently ignored.
	ReferralCode string `json:"referralCode,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required,min=4"`
}

func NewAuthService(st *store.Store, cfg *config.Config) *AuthService {
	return &AuthService{
		store: st,
		cfg:   cfg,
	}
}

// RegisterArtist creates an ARTIST account on a 3-day trial and opens a
// session for it. A duplicate email is rejected before anything is
// written.
func (s *AuthService) RegisterArtist(req *RegisterRequest) (*models.User, error) {
	return s.register(req, true)
}

// RegisterBuyer creates a BUYER_PRO account on the free tier. A valid
// referral code pins referredBy to the referrer's id; referredBy is
// immutable afterwards.
func (s *AuthService) RegisterBuyer(req *RegisterRequest) (*models.User, error) {
	return s.register(req, false)
}

func (s *AuthService) register(req *RegisterRequest, asArtist bool) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	s.pause()

	if _, exists, err := s.store.UserByEmail(req.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrEmailTaken
	}

	now := s.store.NowMillis()
	user := models.User{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Email:             req.Email,
		Password:          req.Password,
		CreatedAt:         now,
		IsYearly:          false,
		ProfilePictureURL: req.ProfilePictureURL,
		BuyerLibrary:      []string{},
	}

	if asArtist {
		user.Role = models.RoleArtist
		user.SubscriptionTier = models.TierTrial
		user.SubscriptionEndDate = now + trialDuration
	} else {
		user.Role = models.RoleBuyerPro
		user.SubscriptionTier = models.TierBuyerFree
		user.SubscriptionEndDate = 0
		if req.ReferralCode != "" {
			if referrer, found, err := s.store.UserByReferralCode(req.ReferralCode); err != nil {
				return nil, err
			} else if found {
				user.ReferredBy = referrer.ID
			}
		}
	}

	stored, err := s.store.InsertUser(user)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetCurrentUser(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// Login compares the plain credentials against the user collection and
// opens a session on success.
func (s *AuthService) Login(req *LoginRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	s.pause()

	users, err := s.store.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == req.Email && users[i].Password == req.Password {
			if err := s.store.SetCurrentUser(&users[i]); err != nil {
				return nil, err
			}
			return &users[i], nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (s *AuthService) Logout() error {
	return s.store.SetCurrentUser(nil)
}

func (s *AuthService) CurrentUser() (*models.User, error) {
	return s.store.CurrentUser()
}

// CheckResetEmail is step one of the reset flow: confirm an account exists
// for the email before asking for a new password.
func (s *AuthService) CheckResetEmail(email string) error {
	s.pause()

	_, found, err := s.store.UserByEmail(email)
	if err != nil {
		return err
	}
	if !found {
		return ErrUserNotFound
	}
	return nil
}

// ResetPassword overwrites the password through the normal user update, so
// an active session for that user is mirrored like any other edit.
func (s *AuthService) ResetPassword(req *ResetPasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	s.pause()

	user, found, err := s.store.UserByEmail(req.Email)
	if err != nil {
		return err
	}
	if !found {
		return ErrUserNotFound
	}

	user.Password = req.NewPassword
	return s.store.UpdateUser(user)
}

// pause applies the configured UX pacing delay. It exists for parity with
// the original product; zero (the default) skips it entirely.
func (s *AuthService) pause() {
	if s.cfg.Auth.DelayMillis > 0 {
		time.Sleep(time.Duration(s.cfg.Auth.DelayMillis) * time.Millisecond)
	}
}

// internal/services/payment_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"

	"github.com/soundsmarket/sounds-backend/internal/config"
	"github.com/soundsmarket/sounds-backend/internal/models"
	"github.com/soundsmarket/sounds-backend/internal/store"
	"github.com/soundsmarket/sounds-backend/internal/utils"
)

const (
	monthDuration = int64(30) * 24 * 60 * 60 * 1000
	yearDuration  = int64(365) * 24 * 60 * 60 * 1000
)

var ErrInvalidTier = errors.New("formule d'abonnement invalide")

// Monthly plan prices in euros. Yearly billing is twelve months for the
// price of ten.
var planPrices = map[models.SubscriptionTier]float64{
	models.TierBasic:        9.99,
	models.TierPro:          19.99,
	models.TierUnlimited:    39.99,
	models.TierBuyerPremium: 4.99,
}

// PaymentService runs the subscription flow. With a Stripe key configured
// it creates real payment intents; without one it records a simulated
// payment so local demos work out of the box.
type PaymentService struct {
	store   *store.Store
	cfg     *config.Config
	loyalty *LoyaltyService
	log     *logrus.Entry
}

type SubscriptionIntentRequest struct {
	Tier     models.SubscriptionTier `json:"tier" validate:"required,oneof=BASIC PRO UNLIMITED BUYER_PREMIUM"`
	IsYearly bool                    `json:"isYearly"`
}

type SubscriptionIntentResponse struct {
	ClientSecret string  `json:"clientSecret,omitempty"`
	PaymentID    string  `json:"paymentId"`
	Amount       float64 `json:"amount"`
	Simulated    bool    `json:"simulated"`
}

type ActivateSubscriptionRequest struct {
	Tier     models.SubscriptionTier `json:"tier" validate:"required,oneof=BASIC PRO UNLIMITED BUYER_PREMIUM"`
	IsYearly bool                    `json:"isYearly"`
}

func NewPaymentService(st *store.Store, cfg *config.Config, loyalty *LoyaltyService) *PaymentService {
	stripe.Key = cfg.Payment.StripeSecretKey

	return &PaymentService{
		store:   st,
		cfg:     cfg,
		loyalty: loyalty,
		log:     logrus.WithField("service", "payment"),
	}
}

// PlanPrice returns the charge for a tier under the chosen billing cycle.
func PlanPrice(tier models.SubscriptionTier, yearly bool) (float64, bool) {
	monthly, ok := planPrices[tier]
	if !ok {
		return 0, false
	}
	if yearly {
		return monthly * 10, true
	}
	return monthly, true
}

// CreateSubscriptionIntent prepares the payment for a plan change. Without
// a configured Stripe key the response carries a simulated payment id and
// the caller proceeds straight to activation.
func (s *PaymentService) CreateSubscriptionIntent(userID string, req *SubscriptionIntentRequest) (*SubscriptionIntentResponse, error) {
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
	if err := validateTierForRole(user.Role, req.Tier); err != nil {
		return nil, err
	}

	amount, _ := PlanPrice(req.Tier, req.IsYearly)

	if s.cfg.Payment.StripeSecretKey == "" {
		s.log.WithFields(logrus.Fields{
			"user_id": userID,
			"tier":    req.Tier,
			"amount":  amount,
		}).Info("simulated subscription payment")
		return &SubscriptionIntentResponse{
			PaymentID: fmt.Sprintf("sim_%s_%s", userID, req.Tier),
			Amount:    amount,
			Simulated: true,
		}, nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String("eur"),
	}
	params.AddMetadata("user_id", userID)
	params.AddMetadata("tier", string(req.Tier))

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &SubscriptionIntentResponse{
		ClientSecret: pi.ClientSecret,
		PaymentID:    pi.ID,
		Amount:       amount,
	}, nil
}

// ActivateSubscription applies the paid plan to the user: tier, billing
// cycle and a fresh end date 30 or 365 days out. A buyer moving onto
// BUYER_PREMIUM triggers the referral reward for whoever invited them.
func (s *PaymentService) ActivateSubscription(userID string, req *ActivateSubscriptionRequest) (*models.User, error) {
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
	if err := validateTierForRole(user.Role, req.Tier); err != nil {
		return nil, err
	}

	now := s.store.NowMillis()
	user.SubscriptionTier = req.Tier
	user.IsYearly = req.IsYearly
	if req.IsYearly {
		user.SubscriptionEndDate = now + yearDuration
	} else {
		user.SubscriptionEndDate = now + monthDuration
	}

	if err := s.store.UpdateUser(user); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"tier":    req.Tier,
		"yearly":  req.IsYearly,
	}).Info("subscription activated")

	if req.Tier == models.TierBuyerPremium {
		if err := s.loyalty.ProcessReferralReward(userID); err != nil {
			s.log.WithError(err).Warn("referral reward processing failed")
		}
	}

	return &user, nil
}

func validateTierForRole(role models.UserRole, tier models.SubscriptionTier) error {
	switch role {
	case models.RoleArtist:
		if tier == models.TierBasic || tier == models.TierPro || tier == models.TierUnlimited {
			return nil
		}
	case models.RoleBuyer, models.RoleBuyerPro:
		if tier == models.TierBuyerPremium {
			return nil
		}
	}
	return ErrInvalidTier
}

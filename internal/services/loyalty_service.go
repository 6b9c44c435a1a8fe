// internal/services/loyalty_service.go
package services

import (
	"github.com/sirupsen/logrus"

	"github.com/soundsmarket/sounds-backend/internal/store"
)

const (
	rewardThreshold = 100
	referralPoints  = 3
	rewardExtension = int64(30) * 24 * 60 * 60 * 1000
)

// LoyaltyService accrues points for premium buyers and converts them into
// subscription time.
type LoyaltyService struct {
	store *store.Store
	log   *logrus.Entry
}

func NewLoyaltyService(st *store.Store) *LoyaltyService {
	return &LoyaltyService{
		store: st,
		log:   logrus.WithField("component", "loyalty"),
	}
}

// AddLoyaltyPoints grants points to userID if, and only if, they are a pro
// buyer on the premium tier; anyone else is a silent no-op. When the
// running total reaches 100, exactly 100 points are spent (the remainder
// carries forward) and the subscription gains 30 days, stacked on the
// current end date when it is still in the future, or counted from now
// when it has lapsed.
//
// The threshold is applied at most once per call. A single grant landing
// at 200 or more still converts only one reward; callers that want more
// rollovers call again. The source was ambiguous here and this contract
// pins the conservative reading.
func (s *LoyaltyService) AddLoyaltyPoints(userID string, points int) error {
	user, found, err := s.store.UserByID(userID)
	if err != nil || !found {
		return err
	}
	if !user.IsPremiumBuyer() {
		return nil
	}

	user.LoyaltyPoints += points

	if user.LoyaltyPoints >= rewardThreshold {
		user.LoyaltyPoints -= rewardThreshold

		now := s.store.NowMillis()
		base := user.SubscriptionEndDate
		if base <= now {
			base = now
		}
		user.SubscriptionEndDate = base + rewardExtension

		s.log.WithFields(logrus.Fields{
			"userId":    user.ID,
			"newExpiry": user.SubscriptionEndDate,
		}).Info("loyalty reward converted to a free month")
	}

	return s.store.UpdateUser(user)
}

// ProcessReferralReward grants the referrer of newUserID three loyalty
// points. The grant goes through AddLoyaltyPoints and therefore lands only
// when the referrer is independently an eligible premium buyer; otherwise
// the call ran but changed nothing.
func (s *LoyaltyService) ProcessReferralReward(newUserID string) error {
	user, found, err := s.store.UserByID(newUserID)
	if err != nil || !found {
		return err
	}
	if user.ReferredBy == "" {
		return nil
	}
	return s.AddLoyaltyPoints(user.ReferredBy, referralPoints)
}

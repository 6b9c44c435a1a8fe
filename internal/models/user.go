// internal/models/user.go
package models

// User carries identity plus commercial state. Timestamps are epoch
// milliseconds, matching the stored format.
//
// Password is stored and compared in plain form; that is the existing
// mechanism, not something this layer hardens.
type User struct {
	ID                     string           `json:"id"`
	Name                   string           `json:"name"`
	Email                  string           `json:"email"`
	Password               string           `json:"password,omitempty"`
	Role                   UserRole         `json:"role"`
	CreatedAt              int64            `json:"createdAt"`
	SubscriptionTier       SubscriptionTier `json:"subscriptionTier"`
	SubscriptionEndDate    int64            `json:"subscriptionEndDate"`
	IsYearly               bool             `json:"isYearly"`
	PaymentAPIConnected    bool             `json:"paymentApiConnected"`
	ProfilePictureURL      string           `json:"profilePictureUrl,omitempty"`
	PaymentAPIKey          string           `json:"paymentApiKey,omitempty"`
	BuyerLibrary           []string         `json:"buyerLibrary,omitempty"`
	Following              []string         `json:"following,omitempty"`
	HasCompletedOnboarding bool             `json:"hasCompletedOnboarding,omitempty"`
	Votes                  int              `json:"votes"`
	LoyaltyPoints          int              `json:"loyaltyPoints"`
	ReferralCode           string           `json:"referralCode,omitempty"`
	ReferredBy             string           `json:"referredBy,omitempty"`
}

// IsPremiumBuyer reports whether the user qualifies for loyalty accrual:
// a pro buyer currently on the premium tier.
func (u *User) IsPremiumBuyer() bool {
	return u.Role == RoleBuyerPro && u.SubscriptionTier == TierBuyerPremium
}

// IsFollowing reports whether artistID is in the user's following set.
func (u *User) IsFollowing(artistID string) bool {
	for _, id := range u.Following {
		if id == artistID {
			return true
		}
	}
	return false
}

// OwnsProduct reports whether productID is already in the buyer library.
func (u *User) OwnsProduct(productID string) bool {
	for _, id := range u.BuyerLibrary {
		if id == productID {
			return true
		}
	}
	return false
}

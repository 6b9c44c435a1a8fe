// internal/models/user_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPremiumBuyer(t *testing.T) {
	assert.True(t, (&User{Role: RoleBuyerPro, SubscriptionTier: TierBuyerPremium}).IsPremiumBuyer())
	assert.False(t, (&User{Role: RoleBuyerPro, SubscriptionTier: TierBuyerFree}).IsPremiumBuyer())
	assert.False(t, (&User{Role: RoleArtist, SubscriptionTier: TierBuyerPremium}).IsPremiumBuyer())
}

func TestIsFollowing(t *testing.T) {
	u := &User{Following: []string{"a1", "a2"}}
	assert.True(t, u.IsFollowing("a1"))
	assert.False(t, u.IsFollowing("a3"))
	assert.False(t, (&User{}).IsFollowing("a1"))
}

func TestOwnsProduct(t *testing.T) {
	u := &User{BuyerLibrary: []string{"p1"}}
	assert.True(t, u.OwnsProduct("p1"))
	assert.False(t, u.OwnsProduct("p2"))
}

func TestDiscountedPrice(t *testing.T) {
	p := &Product{Price: 100, DiscountPercent: 25}
	assert.InDelta(t, 75, p.DiscountedPrice(), 0.001)

	free := &Product{Price: 100}
	assert.InDelta(t, 100, free.DiscountedPrice(), 0.001)
}

// internal/services/payment_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundsmarket/sounds-backend/internal/models"
)

func TestCreateSubscriptionIntentSimulatedWithoutKey(t *testing.T) {
	st := newTestStore(t)
	svc := NewPaymentService(st, testConfig(), NewLoyaltyService(st))

	_, err := st.InsertUser(models.User{ID: "a1", Name: "Awa", Role: models.RoleArtist})
	require.NoError(t, err)

	intent, err := svc.CreateSubscriptionIntent("a1", &SubscriptionIntentRequest{Tier: models.TierPro})
	require.NoError(t, err)
	assert.True(t, intent.Simulated)
	assert.NotEmpty(t, intent.PaymentID)
	assert.Equal(t, 19.99, intent.Amount)
}

func TestCreateSubscriptionIntentRejectsWrongTierForRole(t *testing.T) {
	st := newTestStore(t)
	svc := NewPaymentService(st, testConfig(), NewLoyaltyService(st))

	_, err := st.InsertUser(models.User{ID: "b1", Name: "Malik", Role: models.RoleBuyerPro})
	require.NoError(t, err)

	_, err = svc.CreateSubscriptionIntent("b1", &SubscriptionIntentRequest{Tier: models.TierPro})
	assert.ErrorIs(t, err, ErrInvalidTier)
}

func TestActivateSubscriptionMonthly(t *testing.T) {
	st := newTestStore(t)
	svc := NewPaymentService(st, testConfig(), NewLoyaltyService(st))

	_, err := st.InsertUser(models.User{ID: "a1", Name: "Awa", Role: models.RoleArtist})
	require.NoError(t, err)

	user, err := svc.ActivateSubscription("a1", &ActivateSubscriptionRequest{Tier: models.TierBasic})
	require.NoError(t, err)

	assert.Equal(t, models.TierBasic, user.SubscriptionTier)
	assert.False(t, user.IsYearly)

	thirtyDays := int64(30) * 24 * 60 * 60 * 1000
	assert.Equal(t, st.NowMillis()+thirtyDays, user.SubscriptionEndDate)
}

func TestActivateSubscriptionYearly(t *testing.T) {
	st := newTestStore(t)
	svc := NewPaymentService(st, testConfig(), NewLoyaltyService(st))

	_, err := st.InsertUser(models.User{ID: "a1", Name: "Awa", Role: models.RoleArtist})
	require.NoError(t, err)

	user, err := svc.ActivateSubscription("a1", &ActivateSubscriptionRequest{Tier: models.TierUnlimited, IsYearly: true})
	require.NoError(t, err)

	assert.True(t, user.IsYearly)
	yearMs := int64(365) * 24 * 60 * 60 * 1000
	assert.Equal(t, st.NowMillis()+yearMs, user.SubscriptionEndDate)
}

func TestActivatePremiumTriggersReferralReward(t *testing.T) {
	st := newTestStore(t)
	svc := NewPaymentService(st, testConfig(), NewLoyaltyService(st))

	_, err := st.InsertUser(models.User{
		ID:                  "referrer",
		Name:                "Awa",
		Role:                models.RoleBuyerPro,
		SubscriptionTier:    models.TierBuyerPremium,
		SubscriptionEndDate: st.NowMillis() + 1000,
	})
	require.NoError(t, err)
	_, err = st.InsertUser(models.User{ID: "b1", Name: "Malik", Role: models.RoleBuyerPro, ReferredBy: "referrer"})
	require.NoError(t, err)

	_, err = svc.ActivateSubscription("b1", &ActivateSubscriptionRequest{Tier: models.TierBuyerPremium})
	require.NoError(t, err)

	referrer, _, err := st.UserByID("referrer")
	require.NoError(t, err)
	assert.Equal(t, 3, referrer.LoyaltyPoints)
}

func TestPlanPriceYearlyDiscount(t *testing.T) {
	monthly, ok := PlanPrice(models.TierBasic, false)
	require.True(t, ok)
	assert.Equal(t, 9.99, monthly)

	yearly, ok := PlanPrice(models.TierBasic, true)
	require.True(t, ok)
	assert.InDelta(t, 99.9, yearly, 0.001)

	_, ok = PlanPrice(models.TierTrial, false)
	assert.False(t, ok)
}

// internal/services/loyalty_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundsmarket/sounds-backend/internal/models"
	"github.com/soundsmarket/sounds-backend/internal/store"
)

func insertPremiumBuyer(t *testing.T, st *store.Store, id string, endDate int64) models.User {
	t.Helper()
	user, err := st.InsertUser(models.User{
		ID:                  id,
		Name:                "Malik",
		Role:                models.RoleBuyerPro,
		SubscriptionTier:    models.TierBuyerPremium,
		SubscriptionEndDate: endDate,
	})
	require.NoError(t, err)
	return user
}

func TestAddLoyaltyPointsBelowThreshold(t *testing.T) {
	st := newTestStore(t)
	svc := NewLoyaltyService(st)

	insertPremiumBuyer(t, st, "b1", st.NowMillis()+1000)

	require.NoError(t, svc.AddLoyaltyPoints("b1", 40))

	user, _, err := st.UserByID("b1")
	require.NoError(t, err)
	assert.Equal(t, 40, user.LoyaltyPoints)
}

func TestAddLoyaltyPointsRolloverCarriesRemainder(t *testing.T) {
	st := newTestStore(t)
	svc := NewLoyaltyService(st)

	futureEnd := st.NowMillis() + 1000
	insertPremiumBuyer(t, st, "b1", futureEnd)

	require.NoError(t, svc.AddLoyaltyPoints("b1", 97))
	require.NoError(t, svc.AddLoyaltyPoints("b1", 5))

	user, _, err := st.UserByID("b1")
	require.NoError(t, err)
	assert.Equal(t, 2, user.LoyaltyPoints)

	// Extension stacks on the still-future end date.
	thirtyDays := int64(30) * 24 * 60 * 60 * 1000
	assert.Equal(t, futureEnd+thirtyDays, user.SubscriptionEndDate)
}

func TestAddLoyaltyPointsLapsedSubscriptionExtendsFromNow(t *testing.T) {
	st := newTestStore(t)
	svc := NewLoyaltyService(st)

	insertPremiumBuyer(t, st, "b1", st.NowMillis()-1000)

	require.NoError(t, svc.AddLoyaltyPoints("b1", 100))

	user, _, err := st.UserByID("b1")
	require.NoError(t, err)
	assert.Equal(t, 0, user.LoyaltyPoints)

	thirtyDays := int64(30) * 24 * 60 * 60 * 1000
	assert.Equal(t, st.NowMillis()+thirtyDays, user.SubscriptionEndDate)
}

func TestAddLoyaltyPointsSingleRolloverPerCall(t *testing.T) {
	st := newTestStore(t)
	svc := NewLoyaltyService(st)

	futureEnd := st.NowMillis() + 1000
	insertPremiumBuyer(t, st, "b1", futureEnd)

	require.NoError(t, svc.AddLoyaltyPoints("b1", 250))

	user, _, err := st.UserByID("b1")
	require.NoError(t, err)
	assert.Equal(t, 150, user.LoyaltyPoints)

	thirtyDays := int64(30) * 24 * 60 * 60 * 1000
	assert.Equal(t, futureEnd+thirtyDays, user.SubscriptionEndDate)
}

func TestAddLoyaltyPointsIgnoresNonPremiumBuyers(t *testing.T) {
	st := newTestStore(t)
	svc := NewLoyaltyService(st)

	_, err := st.InsertUser(models.User{
		ID:               "b1",
		Name:             "Malik",
		Role:             models.RoleBuyerPro,
		SubscriptionTier: models.TierBuyerFree,
	})
	require.NoError(t, err)

	require.NoError(t, svc.AddLoyaltyPoints("b1", 100))

	user, _, err := st.UserByID("b1")
	require.NoError(t, err)
	assert.Equal(t, 0, user.LoyaltyPoints)
	assert.Zero(t, user.SubscriptionEndDate)
}

func TestProcessReferralReward(t *testing.T) {
	st := newTestStore(t)
	svc := NewLoyaltyService(st)

	insertPremiumBuyer(t, st, "referrer", st.NowMillis()+1000)
	_, err := st.InsertUser(models.User{ID: "newbie", Name: "Awa", ReferredBy: "referrer"})
	require.NoError(t, err)

	require.NoError(t, svc.ProcessReferralReward("newbie"))

	referrer, _, err := st.UserByID("referrer")
	require.NoError(t, err)
	assert.Equal(t, 3, referrer.LoyaltyPoints)
}

func TestProcessReferralRewardSkipsFreeTierReferrer(t *testing.T) {
	st := newTestStore(t)
	svc := NewLoyaltyService(st)

	_, err := st.InsertUser(models.User{
		ID:               "referrer",
		Name:             "Awa",
		Role:             models.RoleBuyerPro,
		SubscriptionTier: models.TierBuyerFree,
	})
	require.NoError(t, err)
	_, err = st.InsertUser(models.User{ID: "newbie", Name: "Malik", ReferredBy: "referrer"})
	require.NoError(t, err)

	require.NoError(t, svc.ProcessReferralReward("newbie"))

	referrer, _, err := st.UserByID("referrer")
	require.NoError(t, err)
	assert.Equal(t, 0, referrer.LoyaltyPoints)
	assert.Zero(t, referrer.SubscriptionEndDate)
}

func TestProcessReferralRewardNoReferrer(t *testing.T) {
	st := newTestStore(t)
	svc := NewLoyaltyService(st)

	_, err := st.InsertUser(models.User{ID: "newbie", Name: "Awa"})
	require.NoError(t, err)

	require.NoError(t, svc.ProcessReferralReward("newbie"))
}

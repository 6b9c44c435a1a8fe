// internal/store/store_test.go
package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundsmarket/sounds-backend/internal/models"
	"github.com/soundsmarket/sounds-backend/internal/storage"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(storage.NewMemoryStore(), WithClock(func() time.Time { return testNow }))
}

func TestInsertUserNormalization(t *testing.T) {
	st := newTestStore(t)

	stored, err := st.InsertUser(models.User{
		ID:            "u1",
		Name:          "Awa Diop",
		Email:         "awa@example.com",
		Votes:         42,
		LoyaltyPoints: 99,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, stored.Votes)
	assert.Equal(t, 0, stored.LoyaltyPoints)
	require.Len(t, stored.ReferralCode, 8)
	assert.Equal(t, "AWAD", stored.ReferralCode[:4])

	users, err := st.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, stored, users[0])
}

func TestInsertUserKeepsSuppliedReferralCode(t *testing.T) {
	st := newTestStore(t)

	stored, err := st.InsertUser(models.User{ID: "u1", Name: "Awa", ReferralCode: "CODE1234"})
	require.NoError(t, err)
	assert.Equal(t, "CODE1234", stored.ReferralCode)
}

func TestUpdateUserAbsentIDIsNoOp(t *testing.T) {
	st := newTestStore(t)

	_, err := st.InsertUser(models.User{ID: "u1", Name: "Awa"})
	require.NoError(t, err)

	err = st.UpdateUser(models.User{ID: "ghost", Name: "Nobody"})
	require.NoError(t, err)

	users, err := st.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)
}

func TestUpdateUserMirrorsSession(t *testing.T) {
	st := newTestStore(t)

	stored, err := st.InsertUser(models.User{ID: "u1", Name: "Awa"})
	require.NoError(t, err)
	require.NoError(t, st.SetCurrentUser(&stored))

	stored.Name = "Awa D."
	require.NoError(t, st.UpdateUser(stored))

	current, err := st.CurrentUser()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Awa D.", current.Name)
}

func TestUpdateUserLeavesOtherSessionAlone(t *testing.T) {
	st := newTestStore(t)

	u1, err := st.InsertUser(models.User{ID: "u1", Name: "Awa"})
	require.NoError(t, err)
	u2, err := st.InsertUser(models.User{ID: "u2", Name: "Malik"})
	require.NoError(t, err)
	require.NoError(t, st.SetCurrentUser(&u1))

	u2.Name = "Malik B."
	require.NoError(t, st.UpdateUser(u2))

	current, err := st.CurrentUser()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Awa", current.Name)
}

func TestInsertProductForcesZeroLikes(t *testing.T) {
	st := newTestStore(t)

	stored, err := st.InsertProduct(models.Product{ID: "p1", Title: "Premier", Likes: 77})
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Likes)
}

func TestProductsNormalizeNilAudioFiles(t *testing.T) {
	st := newTestStore(t)

	_, err := st.InsertProduct(models.Product{ID: "p1", Title: "Premier"})
	require.NoError(t, err)

	products, err := st.Products()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.NotNil(t, products[0].AudioFiles)
	assert.Empty(t, products[0].AudioFiles)
}

func TestTicketSweepDropsExpired(t *testing.T) {
	st := newTestStore(t)
	now := st.NowMillis()

	_, err := st.InsertTicket(models.Ticket{ID: "past", EventDate: now - 1})
	require.NoError(t, err)
	_, err = st.InsertTicket(models.Ticket{ID: "exact", EventDate: now})
	require.NoError(t, err)
	_, err = st.InsertTicket(models.Ticket{ID: "future", EventDate: now + 1})
	require.NoError(t, err)

	tickets, err := st.Tickets()
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "future", tickets[0].ID)
}

func TestTicketSweepPersistsFilteredCollection(t *testing.T) {
	backend := storage.NewMemoryStore()
	st := New(backend, WithClock(func() time.Time { return testNow }))
	now := st.NowMillis()

	_, err := st.InsertTicket(models.Ticket{ID: "past", EventDate: now - 1})
	require.NoError(t, err)
	_, err = st.InsertTicket(models.Ticket{ID: "future", EventDate: now + 1})
	require.NoError(t, err)

	_, err = st.Tickets()
	require.NoError(t, err)

	// A fresh store over the same backend must not see the expired ticket
	// even before running its own sweep.
	later := New(backend, WithClock(func() time.Time { return testNow.Add(-time.Hour) }))
	tickets, err := later.Tickets()
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "future", tickets[0].ID)
}

func TestFilterActiveStrictBound(t *testing.T) {
	tickets := []models.Ticket{
		{ID: "a", EventDate: 100},
		{ID: "b", EventDate: 101},
	}
	active := FilterActive(tickets, 100)
	require.Len(t, active, 1)
	assert.Equal(t, "b", active[0].ID)
}

func TestNotificationsNewestFirst(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.AppendNotification(models.Notification{ID: "n1", ArtistID: "a1", Date: 100}))
	require.NoError(t, st.AppendNotification(models.Notification{ID: "n2", ArtistID: "a1", Date: 300}))
	require.NoError(t, st.AppendNotification(models.Notification{ID: "n3", ArtistID: "a1", Date: 200}))
	require.NoError(t, st.AppendNotification(models.Notification{ID: "n4", ArtistID: "other", Date: 400}))

	mine, err := st.NotificationsFor("a1")
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, []string{"n2", "n3", "n1"}, []string{mine[0].ID, mine[1].ID, mine[2].ID})
}

func TestDeleteNotificationMatchesPair(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.AppendNotification(models.Notification{ID: "n1", ArtistID: "a1"}))
	require.NoError(t, st.AppendNotification(models.Notification{ID: "n1", ArtistID: "a2"}))

	require.NoError(t, st.DeleteNotification("a1", "n1"))

	gone, err := st.NotificationsFor("a1")
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := st.NotificationsFor("a2")
	require.NoError(t, err)
	require.Len(t, kept, 1)
}

func TestSessionRoundTrip(t *testing.T) {
	st := newTestStore(t)

	current, err := st.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, current)

	user := models.User{ID: "u1", Name: "Awa"}
	require.NoError(t, st.SetCurrentUser(&user))

	current, err = st.CurrentUser()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "u1", current.ID)

	require.NoError(t, st.SetCurrentUser(nil))
	current, err = st.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestUserByReferralCodeIgnoresEmpty(t *testing.T) {
	st := newTestStore(t)

	_, err := st.InsertUser(models.User{ID: "u1", Name: "Awa", ReferralCode: "AWAD1234"})
	require.NoError(t, err)

	_, found, err := st.UserByReferralCode("")
	require.NoError(t, err)
	assert.False(t, found)

	user, found, err := st.UserByReferralCode("AWAD1234")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "u1", user.ID)
}

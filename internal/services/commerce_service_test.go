// internal/services/commerce_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundsmarket/sounds-backend/internal/models"
	"github.com/soundsmarket/sounds-backend/internal/storage"
	"github.com/soundsmarket/sounds-backend/internal/store"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(storage.NewMemoryStore(), store.WithClock(func() time.Time { return testNow }))
}

func TestRecordSaleFanOut(t *testing.T) {
	st := newTestStore(t)
	svc := NewCommerceService(st, NewNotificationService(st))

	_, err := st.InsertProduct(models.Product{ID: "p1", ArtistID: "a1", Title: "Premier Son", Price: 9.99})
	require.NoError(t, err)

	err = svc.RecordSale(models.Sale{
		ID:           "s1",
		ProductID:    "p1",
		ProductTitle: "Premier Son",
		Amount:       9.99,
		Date:         st.NowMillis(),
	})
	require.NoError(t, err)

	sales, err := st.Sales()
	require.NoError(t, err)
	require.Len(t, sales, 1)

	product, found, err := st.ProductByID("p1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, product.SalesCount)

	notifications, err := st.NotificationsFor("a1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, `Nouvelle vente ! "Premier Son" a été acheté pour 9.99€.`, notifications[0].Message)
}

func TestRecordSaleMissingProductStillKeepsReceipt(t *testing.T) {
	st := newTestStore(t)
	svc := NewCommerceService(st, NewNotificationService(st))

	err := svc.RecordSale(models.Sale{ID: "s1", ProductID: "ghost", Amount: 5})
	require.NoError(t, err)

	sales, err := st.Sales()
	require.NoError(t, err)
	require.Len(t, sales, 1)
}

func TestRecordSaleAddsToProBuyerLibrary(t *testing.T) {
	st := newTestStore(t)
	svc := NewCommerceService(st, NewNotificationService(st))

	_, err := st.InsertProduct(models.Product{ID: "p1", ArtistID: "a1", Title: "Premier Son"})
	require.NoError(t, err)
	buyer, err := st.InsertUser(models.User{ID: "b1", Name: "Malik", Role: models.RoleBuyerPro})
	require.NoError(t, err)
	require.NoError(t, st.SetCurrentUser(&buyer))

	require.NoError(t, svc.RecordSale(models.Sale{ID: "s1", ProductID: "p1", Amount: 5}))

	stored, found, err := st.UserByID("b1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"p1"}, stored.BuyerLibrary)
}

func TestRecordSaleSkipsLibraryForArtistSession(t *testing.T) {
	st := newTestStore(t)
	svc := NewCommerceService(st, NewNotificationService(st))

	_, err := st.InsertProduct(models.Product{ID: "p1", ArtistID: "a1", Title: "Premier Son"})
	require.NoError(t, err)
	artist, err := st.InsertUser(models.User{ID: "a2", Name: "Awa", Role: models.RoleArtist})
	require.NoError(t, err)
	require.NoError(t, st.SetCurrentUser(&artist))

	require.NoError(t, svc.RecordSale(models.Sale{ID: "s1", ProductID: "p1", Amount: 5}))

	stored, _, err := st.UserByID("a2")
	require.NoError(t, err)
	assert.Empty(t, stored.BuyerLibrary)
}

func TestAddProductToLibraryIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	svc := NewCommerceService(st, NewNotificationService(st))

	_, err := st.InsertUser(models.User{ID: "b1", Name: "Malik", Role: models.RoleBuyerPro})
	require.NoError(t, err)

	require.NoError(t, svc.AddProductToLibrary("b1", "p1"))
	require.NoError(t, svc.AddProductToLibrary("b1", "p1"))

	stored, _, err := st.UserByID("b1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, stored.BuyerLibrary)
}

func TestRecordShareNotifiesArtist(t *testing.T) {
	st := newTestStore(t)
	svc := NewCommerceService(st, NewNotificationService(st))

	_, err := st.InsertProduct(models.Product{ID: "p1", ArtistID: "a1", Title: "Premier Son"})
	require.NoError(t, err)

	require.NoError(t, svc.RecordShare("p1"))

	notifications, err := st.NotificationsFor("a1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, `Votre œuvre "Premier Son" a été partagée !`, notifications[0].Message)
}

// internal/services/commerce_service.go
package services

import (
	"github.com/sirupsen/logrus"

	"github.com/soundsmarket/sounds-backend/internal/models"
	"github.com/soundsmarket/sounds-backend/internal/store"
)

// CommerceService records sales and their fan-out: the append-only
// receipt, the product's sales counter, the artist notification and the
// buyer library. All steps run synchronously in order; there is no
// partial-failure recovery beyond surfacing the storage error.
type CommerceService struct {
	store         *store.Store
	notifications *NotificationService
}

func NewCommerceService(st *store.Store, notifications *NotificationService) *CommerceService {
	return &CommerceService{
		store:         st,
		notifications: notifications,
	}
}

// RecordSale appends the receipt, then increments the product's salesCount
// and notifies its artist. A sale may reference a product that no longer
// exists: the receipt is still recorded and the product steps are skipped
// silently. When the active session is a pro buyer, the product lands in
// their library.
func (s *CommerceService) RecordSale(sale models.Sale) error {
	if err := s.store.AppendSale(sale); err != nil {
		return err
	}

	product, found, err := s.store.ProductByID(sale.ProductID)
	if err != nil {
		return err
	}
	if found {
		product.SalesCount++
		if err := s.store.UpdateProduct(product); err != nil {
			return err
		}
		if err := s.notifications.SendSaleNotification(product.ArtistID, product.Title, sale.Amount); err != nil {
			return err
		}
	} else {
		logrus.WithField("productId", sale.ProductID).Debug("sale recorded against missing product")
	}

	current, err := s.store.CurrentUser()
	if err != nil {
		return err
	}
	if current != nil && current.Role == models.RoleBuyerPro {
		if err := s.AddProductToLibrary(current.ID, sale.ProductID); err != nil {
			return err
		}
	}

	return nil
}

// AddProductToLibrary appends productID to the user's library unless it is
// already there. The update mirrors the session when applicable.
func (s *CommerceService) AddProductToLibrary(userID, productID string) error {
	user, found, err := s.store.UserByID(userID)
	if err != nil || !found {
		return err
	}
	if user.OwnsProduct(productID) {
		return nil
	}

	user.BuyerLibrary = append(user.BuyerLibrary, productID)
	return s.store.UpdateUser(user)
}

// RecordShare notifies the product's artist that the work was shared.
// Missing products are a silent no-op.
func (s *CommerceService) RecordShare(productID string) error {
	product, found, err := s.store.ProductByID(productID)
	if err != nil || !found {
		return err
	}
	return s.notifications.SendShareNotification(product.ArtistID, product.Title)
}

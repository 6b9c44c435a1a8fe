// internal/services/notification_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/soundsmarket/sounds-backend/internal/models"
	"github.com/soundsmarket/sounds-backend/internal/store"
)

// NotificationService is the producer and consumer side of the per-artist
// event log. The rules services call the Send* helpers; the dashboard
// reads and prunes through List/Delete.
//
// Messages are stored pre-formatted, in French, exactly as the product
// ships them; they are part of the payload, not a translation concern.
type NotificationService struct {
	store *store.Store
}

func NewNotificationService(st *store.Store) *NotificationService {
	return &NotificationService{
		store: st,
	}
}

func (s *NotificationService) List(artistID string) ([]models.Notification, error) {
	return s.store.NotificationsFor(artistID)
}

func (s *NotificationService) DeleteOne(artistID, id string) error {
	return s.store.DeleteNotification(artistID, id)
}

func (s *NotificationService) DeleteAll(artistID string) error {
	return s.store.DeleteAllNotifications(artistID)
}

func (s *NotificationService) SendSaleNotification(artistID, productTitle string, amount float64) error {
	return s.send(artistID, fmt.Sprintf("Nouvelle vente ! \"%s\" a été acheté pour %.2f€.", productTitle, amount))
}

func (s *NotificationService) SendLikeNotification(artistID, productTitle string) error {
	return s.send(artistID, fmt.Sprintf("Quelqu'un a aimé votre titre \"%s\" !", productTitle))
}

func (s *NotificationService) SendShareNotification(artistID, productTitle string) error {
	return s.send(artistID, fmt.Sprintf("Votre œuvre \"%s\" a été partagée !", productTitle))
}

func (s *NotificationService) SendVoteNotification(artistID string, total int) error {
	return s.send(artistID, fmt.Sprintf("Vous avez reçu un nouveau vote ! Total : %d", total))
}

func (s *NotificationService) SendFollowerNotification(artistID, followerName string) error {
	return s.send(artistID, fmt.Sprintf("Nouvel abonné Yamo : %s", followerName))
}

func (s *NotificationService) send(artistID, message string) error {
	return s.store.AppendNotification(models.Notification{
		ID:       uuid.NewString(),
		ArtistID: artistID,
		Message:  message,
		Date:     s.store.NowMillis(),
		Read:     false,
	})
}

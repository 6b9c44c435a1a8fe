// internal/services/engagement_service.go
package services

import (
	"github.com/soundsmarket/sounds-backend/internal/models"
	"github.com/soundsmarket/sounds-backend/internal/store"
)

// EngagementService covers likes, votes and the follow graph. Absent
// targets are neutral returns, never errors: the counters simply do not
// move.
type EngagementService struct {
	store         *store.Store
	notifications *NotificationService
}

func NewEngagementService(st *store.Store, notifications *NotificationService) *EngagementService {
	return &EngagementService{
		store:         st,
		notifications: notifications,
	}
}

// ToggleProductLike adjusts the like counter by one in the given
// direction, clamped at zero, and returns the new count. Only a like
// notifies the artist; an unlike is silent. An unknown product returns 0
// with no mutation and no notification.
func (s *EngagementService) ToggleProductLike(productID string, increment bool) (int, error) {
	product, found, err := s.store.ProductByID(productID)
	if err != nil || !found {
		return 0, err
	}

	if increment {
		product.Likes++
	} else if product.Likes > 0 {
		product.Likes--
	}

	if err := s.store.UpdateProduct(product); err != nil {
		return 0, err
	}

	if increment {
		if err := s.notifications.SendLikeNotification(product.ArtistID, product.Title); err != nil {
			return 0, err
		}
	}
	return product.Likes, nil
}

// RecordVote increments the artist's vote counter, notifies them with the
// new total and returns it. An unknown artist returns 0 with no mutation.
func (s *EngagementService) RecordVote(artistID string) (int, error) {
	user, found, err := s.store.UserByID(artistID)
	if err != nil || !found {
		return 0, err
	}

	user.Votes++
	if err := s.store.UpdateUser(user); err != nil {
		return 0, err
	}

	if err := s.notifications.SendVoteNotification(artistID, user.Votes); err != nil {
		return 0, err
	}
	return user.Votes, nil
}

// ToggleFollowArtist flips userID's membership in artistID's audience and
// returns the new following set. Following notifies the artist with the
// follower's name; unfollowing is silent. An unknown acting user returns
// an empty set with no mutation.
func (s *EngagementService) ToggleFollowArtist(userID, artistID string) ([]string, error) {
	user, found, err := s.store.UserByID(userID)
	if err != nil || !found {
		return []string{}, err
	}

	if user.IsFollowing(artistID) {
		kept := make([]string, 0, len(user.Following))
		for _, id := range user.Following {
			if id != artistID {
				kept = append(kept, id)
			}
		}
		user.Following = kept
	} else {
		user.Following = append(user.Following, artistID)
		if err := s.notifications.SendFollowerNotification(artistID, user.Name); err != nil {
			return nil, err
		}
	}

	if err := s.store.UpdateUser(user); err != nil {
		return nil, err
	}
	return user.Following, nil
}

// FollowerCount derives the audience size by scanning following sets. It
// is never stored, so it cannot drift from the relationships themselves.
func (s *EngagementService) FollowerCount(artistID string) (int, error) {
	users, err := s.store.Users()
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range users {
		if users[i].IsFollowing(artistID) {
			count++
		}
	}
	return count, nil
}

func (s *EngagementService) Artists() ([]models.User, error) {
	users, err := s.store.Users()
	if err != nil {
		return nil, err
	}

	artists := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role == models.RoleArtist {
			artists = append(artists, u)
		}
	}
	return artists, nil
}

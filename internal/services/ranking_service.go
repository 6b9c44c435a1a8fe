// internal/services/ranking_service.go
package services

import (
	"sort"

	"github.com/soundsmarket/sounds-backend/internal/store"
)

const (
	topArtistsLimit = 4
	rankingWindowMs = int64(30) * 24 * 60 * 60 * 1000
)

// RankingService computes the rolling top-seller board.
type RankingService struct {
	store *store.Store
}

func NewRankingService(st *store.Store) *RankingService {
	return &RankingService{
		store: st,
	}
}

// TopArtistsRecent returns up to four artist ids ordered by sales volume
// over the last 30 days. The window is recomputed against "now" on every
// call; its lower bound is inclusive. Sales whose product has since been
// deleted are dropped from the aggregate — the receipt survives but
// nobody gets credit for it. Ties keep first-sale aggregation order.
func (s *RankingService) TopArtistsRecent() ([]string, error) {
	sales, err := s.store.Sales()
	if err != nil {
		return nil, err
	}
	products, err := s.store.Products()
	if err != nil {
		return nil, err
	}

	productArtist := make(map[string]string, len(products))
	for _, p := range products {
		productArtist[p.ID] = p.ArtistID
	}

	threshold := s.store.NowMillis() - rankingWindowMs

	totals := make(map[string]float64)
	var order []string
	for _, sale := range sales {
		if sale.Date < threshold {
			continue
		}
		artistID, ok := productArtist[sale.ProductID]
		if !ok {
			continue
		}
		if _, seen := totals[artistID]; !seen {
			order = append(order, artistID)
		}
		totals[artistID] += sale.Amount
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})

	if len(order) > topArtistsLimit {
		order = order[:topArtistsLimit]
	}
	return order, nil
}

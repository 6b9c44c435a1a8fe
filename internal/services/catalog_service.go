// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/soundsmarket/sounds-backend/internal/models"
	"github.com/soundsmarket/sounds-backend/internal/store"
	"github.com/soundsmarket/sounds-backend/internal/utils"
)

var (
	ErrProductNotFound = errors.New("produit introuvable")
	ErrTicketNotFound  = errors.New("billet introuvable")
	ErrArtistNotFound  = errors.New("artiste introuvable")
)

// CatalogService publishes and maintains the sellable catalog: products
// and event tickets.
type CatalogService struct {
	store *store.Store
}

type PublishProductRequest struct {
	Title           string                 `json:"title" validate:"required,min=1,max=200"`
	Type            models.ProductType     `json:"type" validate:"required,oneof=SONG ALBUM VIDEO LIVE PDF"`
	Category        models.ProductCategory `json:"category" validate:"required"`
	Description     string                 `json:"description" validate:"max=2000"`
	Price           float64                `json:"price" validate:"gte=0"`
	DiscountPercent float64                `json:"discountPercent" validate:"gte=0,lte=50"`
	CoverURL        string                 `json:"coverUrl"`
	AudioFiles      []models.AudioFile     `json:"audioFiles"`
	VideoURL        string                 `json:"videoUrl,omitempty"`
	TrailerURL      string                 `json:"trailerUrl,omitempty"`
	PDFURL          string                 `json:"pdfUrl,omitempty"`
	Duration        string                 `json:"duration,omitempty"`
	IsLive          bool                   `json:"isLive,omitempty"`
}

type PublishTicketRequest struct {
	EventName       string                `json:"eventName" validate:"required,min=1,max=200"`
	PerformerName   string                `json:"performerName" validate:"required,min=1,max=200"`
	Images          []string              `json:"images"`
	Price           float64               `json:"price" validate:"gte=0"`
	DiscountPercent float64               `json:"discountPercent" validate:"gte=0,lte=100"`
	EventDate       int64                 `json:"eventDate" validate:"required,gt=0"`
	Location        models.TicketLocation `json:"location"`
	RefundPolicy    string                `json:"refundPolicy"`
	Stock           *int                  `json:"stock,omitempty" validate:"omitempty,gte=0"`
}

func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{store: st}
}

func (s *CatalogService) ListProducts() ([]models.Product, error) {
	return s.store.Products()
}

func (s *CatalogService) ProductByID(id string) (*models.Product, error) {
	product, found, err := s.store.ProductByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

func (s *CatalogService) ProductsByArtist(artistID string) ([]models.Product, error) {
	products, err := s.store.Products()
	if err != nil {
		return nil, err
	}
	mine := make([]models.Product, 0)
	for _, p := range products {
		if p.ArtistID == artistID {
			mine = append(mine, p)
		}
	}
	return mine, nil
}

// PublishProduct creates a product under the given artist. The artist's
// display name is snapshotted onto the record at publish time.
func (s *CatalogService) PublishProduct(artistID string, req *PublishProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	artist, found, err := s.store.UserByID(artistID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrArtistNotFound
	}

	product := models.Product{
		ID:              uuid.NewString(),
		ArtistID:        artist.ID,
		ArtistName:      artist.Name,
		Title:           req.Title,
		Type:            req.Type,
		Category:        req.Category,
		Description:     req.Description,
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		CoverURL:        req.CoverURL,
		AudioFiles:      req.AudioFiles,
		VideoURL:        req.VideoURL,
		TrailerURL:      req.TrailerURL,
		PDFURL:          req.PDFURL,
		Duration:        req.Duration,
		IsLive:          req.IsLive,
		PublishedAt:     s.store.NowMillis(),
	}

	stored, err := s.store.InsertProduct(product)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// UpdateProduct replaces the stored record wholesale. The id, artist
// binding and counters survive from the stored copy; everything editable
// comes from the request.
func (s *CatalogService) UpdateProduct(id string, req *PublishProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, found, err := s.store.ProductByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrProductNotFound
	}

	product.Title = req.Title
	product.Type = req.Type
	product.Category = req.Category
	product.Description = req.Description
	product.Price = req.Price
	product.DiscountPercent = req.DiscountPercent
	product.CoverURL = req.CoverURL
	product.AudioFiles = req.AudioFiles
	product.VideoURL = req.VideoURL
	product.TrailerURL = req.TrailerURL
	product.PDFURL = req.PDFURL
	product.Duration = req.Duration
	product.IsLive = req.IsLive

	if err := s.store.UpdateProduct(product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *CatalogService) DeleteProduct(id string) error {
	return s.store.DeleteProduct(id)
}

// ListTickets returns the active tickets; expired ones are purged by the
// read itself.
func (s *CatalogService) ListTickets() ([]models.Ticket, error) {
	return s.store.Tickets()
}

func (s *CatalogService) TicketsByArtist(artistID string) ([]models.Ticket, error) {
	tickets, err := s.store.Tickets()
	if err != nil {
		return nil, err
	}
	mine := make([]models.Ticket, 0)
	for _, t := range tickets {
		if t.ArtistID == artistID {
			mine = append(mine, t)
		}
	}
	return mine, nil
}

func (s *CatalogService) PublishTicket(artistID string, req *PublishTicketRequest) (*models.Ticket, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, found, err := s.store.UserByID(artistID); err != nil {
		return nil, err
	} else if !found {
		return nil, ErrArtistNotFound
	}

	ticket := models.Ticket{
		ID:              uuid.NewString(),
		ArtistID:        artistID,
		EventName:       req.EventName,
		PerformerName:   req.PerformerName,
		Images:          req.Images,
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		EventDate:       req.EventDate,
		Location:        req.Location,
		RefundPolicy:    req.RefundPolicy,
		PublishedAt:     s.store.NowMillis(),
		Stock:           req.Stock,
	}

	stored, err := s.store.InsertTicket(ticket)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *CatalogService) UpdateTicket(id string, req *PublishTicketRequest) (*models.Ticket, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tickets, err := s.store.Tickets()
	if err != nil {
		return nil, err
	}
	for i := range tickets {
		if tickets[i].ID != id {
			continue
		}
		t := tickets[i]
		t.EventName = req.EventName
		t.PerformerName = req.PerformerName
		t.Images = req.Images
		t.Price = req.Price
		t.DiscountPercent = req.DiscountPercent
		t.EventDate = req.EventDate
		t.Location = req.Location
		t.RefundPolicy = req.RefundPolicy
		t.Stock = req.Stock
		if err := s.store.UpdateTicket(t); err != nil {
			return nil, err
		}
		return &t, nil
	}
	return nil, ErrTicketNotFound
}

func (s *CatalogService) DeleteTicket(id string) error {
	return s.store.DeleteTicket(id)
}

// ListSales returns the raw receipt log, newest entries last.
func (s *CatalogService) ListSales() ([]models.Sale, error) {
	return s.store.Sales()
}

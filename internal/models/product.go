// internal/models/product.go
package models

// AudioFile is one track inside a product. URLs are opaque references;
// upload handling lives outside this module.
type AudioFile struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	OriginalName string `json:"originalName"`
}

type Reaction struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// ProductComment owns its replies outright. Replies never point back at an
// ancestor; the tree is strictly parent to child.
type ProductComment struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	UserName  string           `json:"userName"`
	UserPic   string           `json:"userPic,omitempty"`
	Text      string           `json:"text"`
	Timestamp int64            `json:"timestamp"`
	Likes     int              `json:"likes"`
	Reactions []Reaction       `json:"reactions"`
	Replies   []ProductComment `json:"replies,omitempty"`
}

// Product is a sellable content unit. ArtistName is a snapshot taken at
// publish time and is deliberately not re-synced when the artist renames.
// SalesCount is the authoritative derived copy kept in the record; the
// commerce recorder is responsible for keeping it in step with Sales.
type Product struct {
	ID              string           `json:"id"`
	ArtistID        string           `json:"artistId"`
	ArtistName      string           `json:"artistName"`
	Title           string           `json:"title"`
	Type            ProductType      `json:"type"`
	Category        ProductCategory  `json:"category"`
	Description     string           `json:"description"`
	Price           float64          `json:"price"`
	DiscountPercent float64          `json:"discountPercent"`
	CoverURL        string           `json:"coverUrl"`
	AudioFiles      []AudioFile      `json:"audioFiles"`
	VideoURL        string           `json:"videoUrl,omitempty"`
	TrailerURL      string           `json:"trailerUrl,omitempty"`
	PDFURL          string           `json:"pdfUrl,omitempty"`
	Duration        string           `json:"duration,omitempty"`
	IsLive          bool             `json:"isLive,omitempty"`
	PublishedAt     int64            `json:"publishedAt"`
	SalesCount      int              `json:"salesCount"`
	Likes           int              `json:"likes"`
	Comments        []ProductComment `json:"comments,omitempty"`
}

// DiscountedPrice is the price actually paid after the discount.
func (p *Product) DiscountedPrice() float64 {
	return p.Price * (1 - p.DiscountPercent/100)
}

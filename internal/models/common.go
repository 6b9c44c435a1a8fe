// internal/models/common.go
package models

// Enum string values are part of the durable storage format and must not be
// renamed: existing stored data round-trips through them.

type UserRole string

const (
	RoleArtist   UserRole = "ARTIST"
	RoleBuyer    UserRole = "BUYER"
	RoleBuyerPro UserRole = "BUYER_PRO"
)

type SubscriptionTier string

const (
	TierTrial        SubscriptionTier = "TRIAL"
	TierBasic        SubscriptionTier = "BASIC"
	TierPro          SubscriptionTier = "PRO"
	TierUnlimited    SubscriptionTier = "UNLIMITED"
	TierBuyerFree    SubscriptionTier = "BUYER_FREE"
	TierBuyerPremium SubscriptionTier = "BUYER_PREMIUM"
)

type ProductType string

const (
	ProductTypeSong  ProductType = "SONG"
	ProductTypeAlbum ProductType = "ALBUM"
	ProductTypeVideo ProductType = "VIDEO"
	ProductTypeLive  ProductType = "LIVE"
	ProductTypePDF   ProductType = "PDF"
)

type ProductCategory string

const (
	CategoryPop      ProductCategory = "Pop"
	CategoryRap      ProductCategory = "Rap"
	CategoryRNB      ProductCategory = "R&B"
	CategoryJazz     ProductCategory = "Jazz"
	CategoryRock     ProductCategory = "Rock"
	CategoryAfrobeat ProductCategory = "Afrobeat"
	CategoryGospel   ProductCategory = "Gospel"
	CategoryElectro  ProductCategory = "Electro"
	CategoryVariete  ProductCategory = "Variété"
	CategoryMbole    ProductCategory = "Mbolé"
	CategoryPodcast  ProductCategory = "Podcast"
	CategoryFilm     ProductCategory = "Film"
	CategoryLivre    ProductCategory = "Livre"
)

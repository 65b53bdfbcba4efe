package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Pricing types.
const (
	PricingWeight = "WEIGHT"
	PricingUnit   = "UNIT"
)

// Product is a catalog item. Category holds the category *name*, not a
// foreign key; renames are cascaded by the category repository.
type Product struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name             string         `gorm:"size:200;not null"`
	Slug             string         `gorm:"uniqueIndex;not null"`
	Category         string         `gorm:"index;not null"`
	Description      string         `gorm:"not null"`
	ShortDescription *string        `gorm:"size:300"`
	Image            string         `gorm:"not null"`
	Images           pq.StringArray `gorm:"type:text[]"`
	PricingType      string         `gorm:"type:varchar(10);not null"`
	Origin           *string
	Aroma            *string
	Texture          *string
	UsageTips        *string
	SEO              SEO `gorm:"embedded;embeddedPrefix:seo_"`
	// MinPrice / MaxPrice are derived from Prices on every write.
	MinPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	MaxPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Featured  bool            `gorm:"not null"`
	IsActive  bool            `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Prices []PriceSlab `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// SEO metadata rendered into page heads.
type SEO struct {
	Title       string         `gorm:"not null"`
	Description string         `gorm:"not null"`
	Keywords    pq.StringArray `gorm:"type:text[]"`
}

// PriceSlab is one purchasable size option, e.g. 250 g for ₹500.
type PriceSlab struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Position  int             `gorm:"not null;default:0"`
	Quantity  decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	Unit      string          `gorm:"size:20"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

package entity

import (
	"time"

	"github.com/nasaem/pos-api/internal/domain/enum"
)

// Sale represents one completed, immutable checkout transaction.
// A sale is created exactly once at checkout and never mutated afterwards;
// it leaves the store only through an explicit delete.
type Sale struct {
	ID            string             `gorm:"type:text;primary_key" json:"id"`
	Timestamp     int64              `gorm:"type:bigint;not null;index" json:"timestamp"`
	DateKey       string             `gorm:"size:10;not null;index;column:date_key" json:"dateKey"`
	Total         float64            `gorm:"type:numeric;not null" json:"total"`
	PaymentMethod enum.PaymentMethod `gorm:"size:10;not null;column:payment_method" json:"paymentMethod"`
	CreatedAt     time.Time          `json:"-"`

	// Relationships
	Items []SaleItem `gorm:"foreignKey:SaleID;references:ID;constraint:OnDelete:CASCADE" json:"items"`
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one product line within a sale. Name, price and category are
// snapshots copied from the catalog at time of sale, so history stays stable
// when the catalog changes.
type SaleItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	SaleID    string  `gorm:"type:text;not null;index;column:sale_id" json:"-"`
	Name      string  `gorm:"size:255;not null" json:"name"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"type:numeric;not null;column:unit_price" json:"unitPrice"`
	Total     float64 `gorm:"type:numeric;not null" json:"total"`
	Category  string  `gorm:"size:255;not null" json:"category"`
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func init() {
	// Prices travel as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Pizza represents a catalog item
type Pizza struct {
	ID          int             `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name        string          `json:"name" gorm:"column:name;size:255;not null;index"`
	UnitPrice   decimal.Decimal `json:"unitPrice" gorm:"column:unit_price;type:decimal(10,2);not null" swaggertype:"number"`
	ImageURL    *string         `json:"imageUrl" gorm:"column:image_url"`
	Ingredients datatypes.JSON  `json:"ingredients" gorm:"column:ingredients" swaggertype:"object"`
	SoldOut     bool            `json:"soldOut" gorm:"column:sold_out;not null;default:false"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt   time.Time       `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// Touch moves UpdatedAt forward to now. The new value is always strictly
// after the previous one, even when the clock has not advanced.
func (p *Pizza) Touch(now time.Time) {
	p.UpdatedAt = nextTimestamp(p.UpdatedAt, now)
}

// BeforeCreate stamps both timestamps for rows created without them
func (p *Pizza) BeforeCreate(tx *gorm.DB) error {
	p.CreatedAt, p.UpdatedAt = creationTimestamps(p.CreatedAt, p.UpdatedAt, tx.NowFunc())
	return nil
}

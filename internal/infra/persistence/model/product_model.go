package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(255);unique;not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(100);not null;index:idx_products_on_category"`
	PriceCents  int64     `gorm:"not null"`
	Currency    string    `gorm:"type:varchar(3);not null"`
	IsActive    bool      `gorm:"not null;default:true;index:idx_products_on_active"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

package model

import (
	"time"

	"gorm.io/datatypes"
)

// ShopSettingsModel mirrors the 'shop_settings' table, one row per scope.
type ShopSettingsModel struct {
	Scope     string         `gorm:"type:varchar(32);primary_key"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopSettingsModel) TableName() string {
	return "shop_settings"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DesignModel mirrors the 'designs' table. Tags are stored as a JSON array.
type DesignModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title      string         `gorm:"type:varchar(255);not null"`
	Artist     string         `gorm:"type:varchar(100);not null;index:idx_designs_on_artist"`
	PreviewURL string         `gorm:"type:text"`
	Tags       datatypes.JSON `gorm:"type:jsonb"`
	IsActive   bool           `gorm:"not null;default:true;index:idx_designs_on_active"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DesignModel) TableName() string {
	return "designs"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// EmailMessageModel mirrors the 'email_messages' table (transactional email log).
type EmailMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Recipient string    `gorm:"type:varchar(255);not null;index:idx_email_messages_on_recipient"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	Template  string    `gorm:"type:varchar(64);not null"`
	Status    string    `gorm:"type:varchar(16);not null"`
	Error     string    `gorm:"type:text"`
	CreatedAt time.Time
	SentAt    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmailMessageModel) TableName() string {
	return "email_messages"
}

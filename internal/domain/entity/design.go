package entity

import (
	"time"

	"github.com/google/uuid"
)

// Design is an artwork that can be applied to catalog products.
type Design struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Artist     string    `json:"artist"`
	PreviewURL string    `json:"preview_url,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

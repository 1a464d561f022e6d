package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial is a client quote. Role here is the display role of the
// author ("CTO, Acme"), unrelated to User.Role.
type Testimonial struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Role      string    `json:"role" gorm:"size:255"`
	Message   string    `json:"message" gorm:"type:text"`
	Work      string    `json:"work" gorm:"size:255"`
	Image     string    `json:"image" gorm:"size:512"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Blog is a single article. Title carries a unique index; Image is the
// address of an optional single attachment.
type Blog struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Author    string    `json:"author" gorm:"size:255;not null"`
	Sector    string    `json:"sector" gorm:"size:255"`
	Title     string    `json:"title" gorm:"uniqueIndex;size:255;not null"`
	Content   string    `json:"content" gorm:"type:text"`
	Image     *string   `json:"image" gorm:"size:512"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

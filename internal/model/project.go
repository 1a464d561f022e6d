package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a portfolio entry with an ordered gallery of attachment
// addresses, serialized as a JSON column.
type Project struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Category    string    `json:"category" gorm:"size:255;index"`
	Images      []string  `json:"images" gorm:"serializer:json;type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

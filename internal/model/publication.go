package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Publication struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Text string    `gorm:"type:text;not null" json:"text"`
	// Image reference: generated file name (local storage) or URL (cloudinary).
	File   *string   `gorm:"size:255" json:"file,omitempty"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User   *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	// Seconds since epoch.
	CreatedAt int64 `gorm:"autoCreateTime" json:"created_at"`
}

func (p *Publication) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

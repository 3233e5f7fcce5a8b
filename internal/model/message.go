package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Message struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	EmitterID  uuid.UUID `gorm:"type:uuid;not null;index" json:"emitter_id"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Emitter    *User     `gorm:"foreignKey:EmitterID" json:"emitter,omitempty"`
	Receiver   *User     `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
	Viewed     bool      `gorm:"not null;default:false" json:"viewed"`
	// Seconds since epoch.
	CreatedAt int64 `gorm:"autoCreateTime" json:"created_at"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

package models

import "gorm.io/gorm"

// ChatMessage logs one message of the assistant conversation
type ChatMessage struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Role      string `json:"role" gorm:"default:'user'"` // user, assistant
	Body      string `json:"body" gorm:"type:text"`
	Source    string `json:"source" gorm:"default:''"` // llm, faq, fallback (assistant messages)
	IsDeleted bool   `gorm:"default:false"`
}

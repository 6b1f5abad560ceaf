package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FAQ is a canned answer used by the chat widget when the AI path is
// unavailable. Keywords is a JSON array of lowercase match terms.
type FAQ struct {
	gorm.Model
	Question  string         `json:"question" gorm:"not null"`
	Answer    string         `json:"answer" gorm:"type:text;not null"`
	Keywords  datatypes.JSON `json:"keywords"`
	IsDeleted bool           `gorm:"default:false"`
}

package models

import "gorm.io/gorm"

// Category groups courses in the catalog
type Category struct {
	gorm.Model
	Name      string `json:"name" gorm:"unique;not null"`
	Slug      string `json:"slug" gorm:"unique;not null"`
	IsDeleted bool   `gorm:"default:false"`
}

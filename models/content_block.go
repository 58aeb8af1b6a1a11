package models

import (
	"gorm.io/gorm"
)

// ContentBlock is one editable section of the public site (hero, about,
// consultation, logo). Body holds the section's JSON payload as edited by
// the admin panel; Image is an optional uploaded asset URL.
type ContentBlock struct {
	gorm.Model
	Key   string `json:"key" gorm:"unique"`
	Body  string `json:"body"`
	Image string `json:"image"`
}

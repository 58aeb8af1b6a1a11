package models

import (
	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"` // Minutes; also the width of every slot offered for this service
	Cost        float64 `json:"cost"`
	Image       string  `json:"image"`
}

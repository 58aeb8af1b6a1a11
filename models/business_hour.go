package models

import (
	"gorm.io/gorm"
)

// BusinessHour is the open/close window for one weekday. A weekday with no
// row is closed: the slot calculator answers 404 for it rather than an
// empty list.
type BusinessHour struct {
	gorm.Model
	Day       string `json:"day" gorm:"unique"` // Weekday name, e.g. "Monday"
	OpenTime  string `json:"open_time"`         // Format "HH:MM" in 24h
	CloseTime string `json:"close_time"`        // Format "HH:MM" in 24h
}

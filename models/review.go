package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	UserID    uint    `json:"user_id"`
	User      User    `json:"user" gorm:"foreignKey:UserID"`
	ServiceID uint    `json:"service_id"`
	Service   Service `json:"service" gorm:"foreignKey:ServiceID"`
	Stars     int     `json:"stars"`
	Content   string  `json:"content"`
	Avatar    string  `json:"avatar"`
	Featured  bool    `json:"featured" gorm:"default:false"`
	Published bool    `json:"published" gorm:"default:true"`
}

// BeforeCreate clamps stars into the 1..5 range
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Stars < 1 {
		r.Stars = 1
	} else if r.Stars > 5 {
		r.Stars = 5
	}
	return nil
}

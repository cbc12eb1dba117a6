package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name string `json:"name" gorm:"uniqueIndex;not null"`
	Icon string `json:"icon"`
}

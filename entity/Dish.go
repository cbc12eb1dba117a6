package entity

import (
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageName   string `json:"imageName"`
	SpicyLevel  int    `json:"spicyLevel"` // 0-5
	Vegetarian  bool   `json:"isVegetarian"`
	Allergens   []string `json:"allergens" gorm:"serializer:json"`
	Category    string `json:"category"`

	Calories       int      `json:"calories"`
	CookingMinutes int      `json:"cookingMinutes"`
	Ingredients    []string `json:"ingredients" gorm:"serializer:json"`

	// nutrition breakdown, display strings as shipped by the app
	Protein string `json:"protein"`
	Fat     string `json:"fat"`
	Carbs   string `json:"carbs"`
	Sodium  string `json:"sodium"`

	OrderItems []OrderItem `json:"-"`
}

package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:100;index" json:"category"`
	Price       float64   `gorm:"not null" json:"price"`
	ImageURL    string    `gorm:"size:512" json:"image_url"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductCategories is the fixed catalog taxonomy. Products created through
// the admin API must use one of these (or none).
var ProductCategories = []string{
	"Electronics",
	"Fashion & Apparel",
	"Books & Media",
	"Home & Living",
	"Sports & Outdoor",
	"Grocery & Food",
}

func IsValidCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}

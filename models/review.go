package models

import "time"

// Review holds one user's review of one product. The pair is kept unique by
// the review handlers at write time. Rating is nullable for legacy rows;
// readers fall back to 1.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	Rating    *int      `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

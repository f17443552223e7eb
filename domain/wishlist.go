package domain

import "time"

// WishlistItem is a saved package. The package fields are a snapshot taken
// when the item was added.
type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"uniqueIndex:idx_wishlist_user_package;not null" json:"-"`
	PackageID int       `gorm:"uniqueIndex:idx_wishlist_user_package;not null" json:"id"`
	Title     string    `gorm:"size:255" json:"title"`
	Location  string    `gorm:"size:255" json:"location"`
	Price     int       `json:"price"`
	Rating    float64   `json:"rating"`
	Image     string    `gorm:"size:512" json:"image"`
	Category  string    `gorm:"size:50" json:"category"`
	CreatedAt time.Time `json:"addedAt"`
}

// TableName sets the MySQL table name
func (WishlistItem) TableName() string {
	return "wishlist_items"
}

// NewWishlistItem snapshots a catalog package for a user's wishlist
func NewWishlistItem(userID uint, p Package) WishlistItem {
	return WishlistItem{
		UserID:    userID,
		PackageID: p.ID,
		Title:     p.Title,
		Location:  p.Location,
		Price:     p.Price,
		Rating:    p.Rating,
		Image:     p.Image,
		Category:  p.Category,
	}
}

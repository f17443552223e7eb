package repositories

import (
	"context"
	"fmt"

	"github.com/vishalpatil-45/Adventour/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WishlistRepository stores saved packages per user
type WishlistRepository interface {
	List(ctx context.Context, userID uint) ([]domain.WishlistItem, error)
	Exists(ctx context.Context, userID uint, packageID int) (bool, error)
	// Add inserts the item unless the user already saved that package
	Add(ctx context.Context, item *domain.WishlistItem) error
	// Remove deletes the item and reports whether it was there
	Remove(ctx context.Context, userID uint, packageID int) (bool, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository creates a MySQL backed WishlistRepository
func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) List(ctx context.Context, userID uint) ([]domain.WishlistItem, error) {
	var items []domain.WishlistItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list wishlist for user %d: %w", userID, err)
	}
	return items, nil
}

func (r *wishlistRepository) Exists(ctx context.Context, userID uint, packageID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.WishlistItem{}).
		Where("user_id = ? AND package_id = ?", userID, packageID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check wishlist: %w", err)
	}
	return count > 0, nil
}

func (r *wishlistRepository) Add(ctx context.Context, item *domain.WishlistItem) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(item).Error
}

func (r *wishlistRepository) Remove(ctx context.Context, userID uint, packageID int) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND package_id = ?", userID, packageID).
		Delete(&domain.WishlistItem{})
	if res.Error != nil {
		return false, fmt.Errorf("remove wishlist item: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

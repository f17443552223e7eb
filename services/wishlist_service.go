package services

import (
	"context"

	"github.com/vishalpatil-45/Adventour/domain"
	"github.com/vishalpatil-45/Adventour/repositories"
)

// WishlistService manages the packages a user saved for later
type WishlistService interface {
	List(ctx context.Context, userID uint) ([]domain.WishlistItem, error)
	Add(ctx context.Context, userID uint, packageID int) ([]domain.WishlistItem, error)
	Remove(ctx context.Context, userID uint, packageID int) ([]domain.WishlistItem, error)
	// Toggle adds the package when missing and removes it otherwise. It
	// returns whether the package is in the wishlist afterwards.
	Toggle(ctx context.Context, userID uint, packageID int) (bool, error)
}

type wishlistService struct {
	repo    repositories.WishlistRepository
	catalog repositories.CatalogRepository
}

// NewWishlistService creates a WishlistService
func NewWishlistService(repo repositories.WishlistRepository, catalog repositories.CatalogRepository) WishlistService {
	return &wishlistService{repo: repo, catalog: catalog}
}

func (s *wishlistService) List(ctx context.Context, userID uint) ([]domain.WishlistItem, error) {
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.WishlistItem{}
	}
	return items, nil
}

// Add is idempotent: adding a saved package again leaves one entry
func (s *wishlistService) Add(ctx context.Context, userID uint, packageID int) ([]domain.WishlistItem, error) {
	pkg, ok := s.catalog.GetByID(packageID)
	if !ok {
		return nil, ErrPackageNotFound
	}
	saved, err := s.repo.Exists(ctx, userID, packageID)
	if err != nil {
		return nil, err
	}
	if !saved {
		item := domain.NewWishlistItem(userID, pkg)
		if err := s.repo.Add(ctx, &item); err != nil {
			return nil, err
		}
	}
	return s.List(ctx, userID)
}

// Remove deletes the package from the wishlist. Removing a package that is
// not there is not an error.
func (s *wishlistService) Remove(ctx context.Context, userID uint, packageID int) ([]domain.WishlistItem, error) {
	if _, err := s.repo.Remove(ctx, userID, packageID); err != nil {
		return nil, err
	}
	return s.List(ctx, userID)
}

func (s *wishlistService) Toggle(ctx context.Context, userID uint, packageID int) (bool, error) {
	removed, err := s.repo.Remove(ctx, userID, packageID)
	if err != nil {
		return false, err
	}
	if removed {
		return false, nil
	}
	if _, err := s.Add(ctx, userID, packageID); err != nil {
		return false, err
	}
	return true, nil
}

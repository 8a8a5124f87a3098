package service

import (
	"fmt"

	"localconnect/internal/repositories"
	"localconnect/models"
	"localconnect/pkg/logger"
)

type FavoritesServiceInterface interface {
	ToggleFavorite(productID, customerName string) (bool, error)
	GetFavorites(customerName string) ([]models.Product, error)
}

// FavoritesService manages per-customer favorite products. Favorites are
// resolved against the live catalog on read, so a deleted product silently
// drops out of the list.
type FavoritesService struct {
	favoritesRepo repositories.FavoritesRepositoryInterface
	productRepo   repositories.ProductRepositoryInterface
	logger        *logger.Logger
}

// NewFavoritesService creates a new FavoritesService
func NewFavoritesService(favoritesRepo repositories.FavoritesRepositoryInterface, productRepo repositories.ProductRepositoryInterface, log *logger.Logger) *FavoritesService {
	return &FavoritesService{
		favoritesRepo: favoritesRepo,
		productRepo:   productRepo,
		logger:        log.WithComponent("favorites_service"),
	}
}

// ToggleFavorite flips the favorite state for a product and reports the new
// state: true when the product is now a favorite.
func (s *FavoritesService) ToggleFavorite(productID, customerName string) (bool, error) {
	if productID == "" {
		return false, fmt.Errorf("product ID is required")
	}
	if customerName == "" {
		return false, fmt.Errorf("customer name is required")
	}

	if _, err := s.productRepo.GetByID(productID); err != nil {
		return false, err
	}

	if s.favoritesRepo.Exists(productID, customerName) {
		s.favoritesRepo.Remove(productID, customerName)
		s.logger.Debug("Favorite removed", "product_id", productID, "customer", customerName)
		return false, nil
	}

	s.favoritesRepo.Add(productID, customerName)
	s.logger.Debug("Favorite added", "product_id", productID, "customer", customerName)
	return true, nil
}

// GetFavorites returns the customer's favorited products, skipping any that
// no longer exist in the catalog
func (s *FavoritesService) GetFavorites(customerName string) ([]models.Product, error) {
	if customerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}

	items := s.favoritesRepo.GetByCustomer(customerName)
	products := make([]models.Product, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			continue
		}
		products = append(products, *product)
	}
	return products, nil
}

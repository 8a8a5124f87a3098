package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"localconnect/internal/repositories"
	"localconnect/models"
	"localconnect/pkg/logger"
)

// ProductRequest carries the vendor-entered fields for a create or update.
type ProductRequest struct {
	Name          string                 `json:"name"`
	Category      models.ProductCategory `json:"category"`
	Price         float64                `json:"price"`
	Unit          models.Unit            `json:"unit"`
	UnitIncrement float64                `json:"unit_increment"`
	Offer         *models.Offer          `json:"offer,omitempty"`
	ExpiryDate    string                 `json:"expiry_date"`
	Stock         float64                `json:"stock"`
	Rating        *models.Rating         `json:"rating,omitempty"`
	Location      models.VendorLocation  `json:"location"`
}

// ProductResult is a saved product plus a coercion notice: an unknown
// category is stored as "vegetables", and the substitution is reported so
// data-entry mistakes stay visible instead of being silently masked.
type ProductResult struct {
	Product         models.Product `json:"product"`
	CategoryCoerced bool           `json:"category_coerced,omitempty"`
}

type CatalogServiceInterface interface {
	ListProducts() ([]models.Product, error)
	ListByLocation(location models.VendorLocation) ([]models.Product, error)
	GetProduct(id string) (*models.Product, error)
	AddProduct(req ProductRequest) (*ProductResult, error)
	UpdateProduct(id string, req ProductRequest) (*ProductResult, error)
	DeleteProduct(id string) error
	ResetProducts() error
}

// CatalogService owns product catalog business logic: validation, category
// coercion, ID assignment and vendor-scoped listing.
type CatalogService struct {
	productRepo repositories.ProductRepositoryInterface
	logger      *logger.Logger
}

// NewCatalogService creates a new CatalogService with the given repository and logger
func NewCatalogService(productRepo repositories.ProductRepositoryInterface, log *logger.Logger) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		logger:      log.WithComponent("catalog_service"),
	}
}

// ListProducts retrieves the full catalog
func (s *CatalogService) ListProducts() ([]models.Product, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		s.logger.Error("Failed to fetch products", "error", err)
		return nil, err
	}
	return products, nil
}

// ListByLocation retrieves one vendor's slice of the catalog. Scoping is
// plain filtering by location equality; the data layer does not enforce it.
func (s *CatalogService) ListByLocation(location models.VendorLocation) ([]models.Product, error) {
	if !models.IsValidVendorLocation(location) {
		return nil, fmt.Errorf("unknown vendor location %q", location)
	}

	products, err := s.productRepo.GetAll()
	if err != nil {
		s.logger.Error("Failed to fetch products", "error", err)
		return nil, err
	}

	filtered := make([]models.Product, 0)
	for _, product := range products {
		if product.Location == location {
			filtered = append(filtered, product)
		}
	}
	return filtered, nil
}

// GetProduct retrieves a single product by ID
func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	if id == "" {
		return nil, fmt.Errorf("product ID is required")
	}
	return s.productRepo.GetByID(id)
}

// AddProduct creates a product with a fresh ID
func (s *CatalogService) AddProduct(req ProductRequest) (*ProductResult, error) {
	s.logger.Info("Creating new product", "name", req.Name, "location", req.Location)

	if err := s.validateProductData(req); err != nil {
		s.logger.Warn("Create failed: invalid data", "error", err)
		return nil, err
	}

	product, coerced := s.buildProduct(req)
	product.ID = uuid.New().String()[:8]

	if err := s.productRepo.Add(product); err != nil {
		s.logger.Error("Failed to add product", "error", err)
		return nil, err
	}

	if coerced {
		s.logger.Warn("Product category coerced to default",
			"product_id", product.ID,
			"requested", req.Category)
	}
	return &ProductResult{Product: product, CategoryCoerced: coerced}, nil
}

// UpdateProduct replaces a product by ID, re-validating the category
func (s *CatalogService) UpdateProduct(id string, req ProductRequest) (*ProductResult, error) {
	s.logger.Info("Updating product", "product_id", id)

	if id == "" {
		return nil, fmt.Errorf("product ID is required")
	}
	if err := s.validateProductData(req); err != nil {
		s.logger.Warn("Update failed: invalid data", "product_id", id, "error", err)
		return nil, err
	}

	product, coerced := s.buildProduct(req)
	product.ID = id

	if err := s.productRepo.Update(id, product); err != nil {
		s.logger.Error("Failed to update product", "product_id", id, "error", err)
		return nil, err
	}

	if coerced {
		s.logger.Warn("Product category coerced to default",
			"product_id", id,
			"requested", req.Category)
	}
	return &ProductResult{Product: product, CategoryCoerced: coerced}, nil
}

// DeleteProduct removes a product by ID
func (s *CatalogService) DeleteProduct(id string) error {
	s.logger.Info("Deleting product", "product_id", id)

	if id == "" {
		return fmt.Errorf("product ID is required")
	}
	return s.productRepo.Delete(id)
}

// ResetProducts restores the fixed seed catalog
func (s *CatalogService) ResetProducts() error {
	s.logger.Info("Resetting catalog to seed products")
	return s.productRepo.Reset()
}

// buildProduct assembles a Product from the request, coercing the category
func (s *CatalogService) buildProduct(req ProductRequest) (models.Product, bool) {
	category := models.EnsureValidCategory(req.Category)
	coerced := category != req.Category

	unitIncrement := req.UnitIncrement
	if unitIncrement <= 0 {
		unitIncrement = 1
	}

	return models.Product{
		Name:          req.Name,
		Category:      category,
		Price:         req.Price,
		Unit:          req.Unit,
		UnitIncrement: unitIncrement,
		Offer:         req.Offer,
		ExpiryDate:    req.ExpiryDate,
		Stock:         req.Stock,
		Rating:        req.Rating,
		Location:      req.Location,
	}, coerced
}

// validateProductData validates vendor-entered product fields
func (s *CatalogService) validateProductData(req ProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("product name is required")
	}
	if req.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if req.Unit != models.UnitKg && req.Unit != models.UnitLitre && req.Unit != models.UnitPieces {
		return fmt.Errorf("invalid unit: %s (allowed: kg, L, pcs)", req.Unit)
	}
	if !models.IsValidVendorLocation(req.Location) {
		return fmt.Errorf("unknown vendor location %q", req.Location)
	}
	return nil
}

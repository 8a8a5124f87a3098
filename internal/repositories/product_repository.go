package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"localconnect/models"
	"localconnect/pkg/kvstore"
	"localconnect/pkg/logger"
)

// ProductsStorageKey is the fixed key the catalog is persisted under.
const ProductsStorageKey = "local-connect-products"

type ProductRepositoryInterface interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Add(product models.Product) error
	Update(id string, product models.Product) error
	Delete(id string) error
	Reset() error
}

// ProductRepository holds the mutable product catalog. Every mutation
// persists the full catalog as one JSON array to the durable store; load
// failures of any kind fall back to the seed catalog without surfacing an
// error.
type ProductRepository struct {
	products []models.Product
	mutex    sync.RWMutex
	store    kvstore.Store
	logger   *logger.Logger
}

// NewProductRepository creates the repository and hydrates it from storage,
// defaulting to the seed catalog when the stored data is missing or corrupt.
func NewProductRepository(store kvstore.Store, log *logger.Logger) *ProductRepository {
	r := &ProductRepository{
		store:  store,
		logger: log.WithComponent("product_repository"),
	}
	r.load()
	return r
}

// load hydrates the catalog from the store. Corruption is recovered
// transparently: the seed catalog replaces anything unreadable.
func (r *ProductRepository) load() {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	data, err := r.store.Get(context.Background(), ProductsStorageKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			r.logger.Warn("Failed to read stored catalog, using seed products", "error", err)
		}
		r.products = SeedProducts()
		return
	}

	var stored []models.Product
	if err := json.Unmarshal(data, &stored); err != nil {
		r.logger.Warn("Stored catalog is unreadable, using seed products", "error", err)
		r.products = SeedProducts()
		return
	}

	for i := range stored {
		stored[i].Category = models.EnsureValidCategory(stored[i].Category)
	}
	r.products = stored
	r.logger.Info("Catalog loaded from storage", "count", len(stored))
}

// persist writes the full catalog under the fixed key. Must be called with
// the write lock held.
func (r *ProductRepository) persist() error {
	data, err := json.Marshal(r.products)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %v", err)
	}
	if err := r.store.Set(context.Background(), ProductsStorageKey, data); err != nil {
		return fmt.Errorf("failed to persist catalog: %v", err)
	}
	return nil
}

// GetAll retrieves the full catalog
func (r *ProductRepository) GetAll() ([]models.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID retrieves a single product by ID
func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, product := range r.products {
		if product.ID == id {
			productCopy := product
			return &productCopy, nil
		}
	}
	return nil, fmt.Errorf("product with id %s not found", id)
}

// Add prepends a new product, newest first
func (r *ProductRepository) Add(product models.Product) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if product.ID == "" {
		return errors.New("product ID cannot be empty")
	}
	for _, existing := range r.products {
		if existing.ID == product.ID {
			r.logger.Warn("Attempted to add duplicate product", "product_id", product.ID)
			return fmt.Errorf("product with id %s already exists", product.ID)
		}
	}

	r.products = append([]models.Product{product}, r.products...)
	if err := r.persist(); err != nil {
		r.logger.Error("Failed to persist catalog after add", "error", err)
		return err
	}
	r.logger.Info("Added product", "product_id", product.ID, "name", product.Name)
	return nil
}

// Update replaces a product by ID
func (r *ProductRepository) Update(id string, product models.Product) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, existing := range r.products {
		if existing.ID == id {
			product.ID = id
			r.products[i] = product
			if err := r.persist(); err != nil {
				r.logger.Error("Failed to persist catalog after update", "error", err, "product_id", id)
				return err
			}
			r.logger.Info("Updated product", "product_id", id, "name", product.Name)
			return nil
		}
	}

	r.logger.Warn("Attempted to update non-existent product", "product_id", id)
	return fmt.Errorf("product with id %s not found", id)
}

// Delete removes a product by ID
func (r *ProductRepository) Delete(id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, existing := range r.products {
		if existing.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			if err := r.persist(); err != nil {
				r.logger.Error("Failed to persist catalog after delete", "error", err, "product_id", id)
				return err
			}
			r.logger.Info("Deleted product", "product_id", id)
			return nil
		}
	}

	r.logger.Warn("Attempted to delete non-existent product", "product_id", id)
	return fmt.Errorf("product with id %s not found", id)
}

// Reset restores the fixed seed catalog
func (r *ProductRepository) Reset() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.products = SeedProducts()
	if err := r.persist(); err != nil {
		r.logger.Error("Failed to persist catalog after reset", "error", err)
		return err
	}
	r.logger.Info("Catalog reset to seed products", "count", len(r.products))
	return nil
}

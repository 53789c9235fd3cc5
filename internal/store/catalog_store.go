package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"storefront-service/internal/models"
)

// CatalogStore holds the in-memory catalog snapshot. The catalog is
// loaded once from products.json at startup; admin edits mutate the
// snapshot in place and are discarded on restart — this is demo state,
// nothing is ever written back.
type CatalogStore struct {
	mu             sync.RWMutex
	products       []models.RawProduct
	whatsappNumber string
	logger         *logrus.Logger
}

// NewCatalogStore creates an empty store with the given default
// WhatsApp order number.
func NewCatalogStore(whatsappNumber string, logger *logrus.Logger) *CatalogStore {
	if logger == nil {
		logger = logrus.New()
	}
	return &CatalogStore{
		whatsappNumber: whatsappNumber,
		logger:         logger,
	}
}

// LoadFromFile replaces the snapshot with the contents of a products.json
// file.
func (s *CatalogStore) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var products []models.RawProduct
	if err := json.Unmarshal(data, &products); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"path":  path,
		"count": len(products),
	}).Info("Catalog loaded")
	return nil
}

// Snapshot returns a copy of the current product list, order-preserving.
// Callers treat the copy as immutable for one normalization pass.
func (s *CatalogStore) Snapshot() []models.RawProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RawProduct, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id, or false when absent.
func (s *CatalogStore) Get(id int) (models.RawProduct, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.RawProduct{}, false
}

// Add appends a product to the snapshot, assigning it the next id:
// max(existing ids) + 1, or 1 for an empty catalog.
func (s *CatalogStore) Add(p models.RawProduct) models.RawProduct {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := 1
	for _, existing := range s.products {
		if existing.ID >= next {
			next = existing.ID + 1
		}
	}
	p.ID = next
	s.products = append(s.products, p)

	s.logger.WithFields(logrus.Fields{
		"id":   p.ID,
		"name": p.Name,
	}).Info("Product added to in-memory catalog")
	return p
}

// Delete removes the product with the given id, reporting whether it
// existed.
func (s *CatalogStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.logger.WithField("id", id).Info("Product removed from in-memory catalog")
			return true
		}
	}
	return false
}

// Count returns the number of products in the snapshot.
func (s *CatalogStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// WhatsAppNumber returns the current order-destination number.
func (s *CatalogStore) WhatsAppNumber() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.whatsappNumber
}

// SetWhatsAppNumber updates the order-destination number for this session.
func (s *CatalogStore) SetWhatsAppNumber(number string) {
	s.mu.Lock()
	s.whatsappNumber = number
	s.mu.Unlock()
}

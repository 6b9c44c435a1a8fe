// internal/store/products.go
package store

import (
	"github.com/soundsmarket/sounds-backend/internal/models"
)

// Products returns the product collection. Records written by older
// versions may lack audioFiles; reads normalize that to an empty list so
// callers never see nil. Counters decode to zero on their own.
func (s *Store) Products() ([]models.Product, error) {
	products, err := readList[models.Product](s, keyProducts)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].AudioFiles == nil {
			products[i].AudioFiles = []models.AudioFile{}
		}
	}
	return products, nil
}

// InsertProduct appends a product with likes forced to zero regardless of
// what the caller passed. A new product can never start pre-liked, even
// when an edit flow re-creates the record.
func (s *Store) InsertProduct(product models.Product) (models.Product, error) {
	products, err := s.Products()
	if err != nil {
		return models.Product{}, err
	}

	product.Likes = 0

	products = append(products, product)
	if err := writeList(s, keyProducts, products); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// UpdateProduct replaces the stored record with the same id; absent ids
// are a silent no-op.
func (s *Store) UpdateProduct(product models.Product) error {
	products, err := s.Products()
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			return writeList(s, keyProducts, products)
		}
	}
	return nil
}

func (s *Store) DeleteProduct(id string) error {
	products, err := s.Products()
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return writeList(s, keyProducts, kept)
}

func (s *Store) ProductByID(id string) (models.Product, bool, error) {
	products, err := s.Products()
	if err != nil {
		return models.Product{}, false, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return models.Product{}, false, nil
}

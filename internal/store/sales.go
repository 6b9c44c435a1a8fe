// internal/store/sales.go
package store

import (
	"github.com/soundsmarket/sounds-backend/internal/models"
)

func (s *Store) Sales() ([]models.Sale, error) {
	return readList[models.Sale](s, keySales)
}

// AppendSale records a receipt. Sales are append-only: nothing in this
// layer ever mutates or removes one.
func (s *Store) AppendSale(sale models.Sale) error {
	sales, err := s.Sales()
	if err != nil {
		return err
	}
	sales = append(sales, sale)
	return writeList(s, keySales, sales)
}

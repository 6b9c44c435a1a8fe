// internal/models/sale.go
package models

// Sale is an immutable receipt. ProductTitle is a snapshot taken at sale
// time so the historical record survives product deletion. Amount is the
// price actually paid, post-discount, stamped by the caller.
type Sale struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"productId"`
	ProductTitle string  `json:"productTitle"`
	Amount       float64 `json:"amount"`
	Date         int64   `json:"date"`
}

package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrProductExists = errors.New("product code already exists")

// DefaultCurrency applies when a product is created without one.
const DefaultCurrency = "USD"

// Product belongs to exactly one company and may be tagged with any
// number of categories.
type Product struct {
	ID              string   `json:"id"`
	Code            string   `json:"code"`
	Name            string   `json:"name"`
	Characteristics string   `json:"characteristics,omitempty"`
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
	CompanyNIT      string   `json:"company_nit"`
	CategoryIDs     []string `json:"category_ids,omitempty"`
}

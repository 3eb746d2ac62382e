package domain

import "errors"

var ErrCompanyNotFound = errors.New("company not found")
var ErrCompanyExists = errors.New("company name already exists")

// Company is identified by its tax number (NIT), which never changes
// after creation. Name is unique across companies.
type Company struct {
	NIT     string `json:"nit"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

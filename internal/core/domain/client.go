package domain

import "errors"

var ErrClientNotFound = errors.New("client not found")

// Client is a purchaser of products; orders reference clients by ID.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

package entity

import "time"

// Package is a fixed-price offering tied to a destination. Packages are
// seeded out of band and read-only for API clients.
type Package struct {
	ID            int64     `json:"id"`
	DestinationID string    `json:"destinationId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Duration      string    `json:"duration"`
	Price         string    `json:"price"`
	Inclusions    string    `json:"inclusions"`
	Exclusions    string    `json:"exclusions"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Destination is an entry of the static destination catalog.
type Destination struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

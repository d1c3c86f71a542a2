package models

import "gorm.io/gorm"

// Company that may be the object of reviews tracked by this system.
// Companies may be registered by any account; reviews may be submitted for
// any registered company. A company cannot be deleted while reviews still
// reference it.
type Company struct {
	gorm.Model
	// Name of the company; e.g. ACME, Inc.
	Name string `gorm:"size:64;not null" json:"name"`
	// Address of the company website; optional. e.g. http://example.com/
	URL string `gorm:"default:''" json:"url"`
}

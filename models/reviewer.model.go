package models

import "gorm.io/gorm"

// Reviewer who may author reviews tracked by this system. Reviewers may be
// registered by any account, and reviews may be submitted on behalf of any
// registered reviewer. Reviewers are identified by e-mail address in the
// API. A reviewer cannot be deleted while reviews still reference it.
type Reviewer struct {
	gorm.Model
	// E-mail address of the reviewer; e.g. john.doe@example.com
	Email string `gorm:"uniqueIndex;size:254;not null" json:"email"`
	// Name of the reviewer; optional. e.g. John Doe
	Name string `gorm:"size:256;default:''" json:"name"`
}

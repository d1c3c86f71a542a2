package models

import (
	"gorm.io/gorm"
)

// Account is a registered user of the review tracking system. Accounts log
// into the system and publish reviews of any company authored by any
// reviewer. Non-admin accounts can only see their own profile and their own
// reviews; administrators see everything.
type Account struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email    string `gorm:"default:''" json:"email"`
	IsAdmin  bool   `gorm:"default:false" json:"isAdmin"`
	Password string `gorm:"not null" json:"-"`
}

package models

import "gorm.io/gorm"

// AuthToken is a persistent API access token, issued automatically when an
// account is created. Clients send it as "Authorization: Token <key>".
type AuthToken struct {
	gorm.Model
	Key       string `gorm:"uniqueIndex;size:64;not null" json:"key"`
	AccountID uint   `gorm:"not null;index" json:"accountId"`

	Account Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// LoginTracking records every successful login for auditing. Old rows are
// pruned by the cleanup scheduler after the configured retention window.
type LoginTracking struct {
	gorm.Model
	AccountID uint      `json:"accountId"`
	IPAddress string    `json:"ipAddress"`
	Device    string    `json:"device"`
	Timestamp time.Time `json:"timestamp"`
}

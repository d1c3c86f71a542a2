package models

import "gorm.io/gorm"

// Review tracked by this system. Each review names the company being
// reviewed and the reviewer who authored it. Any account may submit a
// review for any registered company and reviewer; non-admin accounts can
// only see and interact with reviews they submitted themselves.
//
// SubmitterID and IPAddress are derived from the submission request on
// creation and are never client-editable.
type Review struct {
	gorm.Model
	// Numeric rating between 1 (worst) and 5 (best)
	Rating int `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	// Review title of up to 64 characters; optional
	Title string `gorm:"size:64;default:''" json:"title"`
	// Summary of up to 10000 characters recounting the reviewer's
	// experience with the company under review; optional
	Summary string `gorm:"type:text" json:"summary"`
	// Network address that submitted this review
	IPAddress string `gorm:"not null" json:"ipAddress"`

	SubmitterID uint `gorm:"not null;index" json:"submitterId"`
	CompanyID   uint `gorm:"not null;index" json:"companyId"`
	ReviewerID  uint `gorm:"not null;index" json:"reviewerId"`

	// Associations - pointers so omitempty drops them unless Preloaded
	Submitter *Account  `gorm:"foreignKey:SubmitterID;constraint:OnDelete:CASCADE" json:"submitter,omitempty"`
	Company   *Company  `gorm:"foreignKey:CompanyID;constraint:OnDelete:RESTRICT" json:"company,omitempty"`
	Reviewer  *Reviewer `gorm:"foreignKey:ReviewerID;constraint:OnDelete:RESTRICT" json:"reviewer,omitempty"`
}

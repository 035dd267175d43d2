package domain

import "gorm.io/gorm"

// Project is owned by exactly one user. Rows are only visible or mutable
// through requests whose verified identity matches OwnerID.
type Project struct {
	gorm.Model
	Name        string `gorm:"not null"`
	Description string
	OwnerID     uint   `gorm:"index;not null"`
	Todos       []Todo `gorm:"constraint:OnDelete:CASCADE"`
}

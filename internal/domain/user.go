package domain

import "gorm.io/gorm"

// User is an identity record. The password digest is never serialized.
type User struct {
	gorm.Model
	Username string `gorm:"not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null" json:"-"` // bcrypt digest
}

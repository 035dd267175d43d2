package domain

import "gorm.io/gorm"

// Priority of a todo item.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Valid reports whether p is one of the known priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Todo belongs to a Project and is reachable only through its parent's owner.
type Todo struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Description string
	Completed   bool     `gorm:"not null"`
	Priority    Priority `gorm:"type:varchar(16);not null;default:'Medium'"`
	ProjectID   uint     `gorm:"index;not null"`
}

// Package models contains database model definitions.
package models

// Setting is a named value editable at runtime, for example the message of
// the day shown on the about page.
type Setting struct {
	ID    uint64 `gorm:"primaryKey"`
	Name  string `gorm:"unique;size:100;not null"`
	Value []byte
}

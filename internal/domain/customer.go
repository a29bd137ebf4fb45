package domain

// Customer Model
type Customer struct {
	ID     uint    `gorm:"primaryKey"`           // Primary key
	Name   string  `gorm:"not null"`             // Customer name
	Email  string  `gorm:"uniqueIndex;not null"` // Unique email
	Phone  string  // Optional phone number
	Orders []Order `gorm:"constraint:OnDelete:CASCADE;"` // One-to-many relationship with Order, deleted with the customer
}
